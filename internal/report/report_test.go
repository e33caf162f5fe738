package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestWarning_String(t *testing.T) {
	tests := []struct {
		name    string
		warning Warning
		want    string
	}{
		{
			name:    "missing archive",
			warning: Warning{Kind: MissingArchive, PagePath: "wiki/syntax", Timestamp: 100},
			want:    "missing archive entry for wiki/syntax at 100, committing without content",
		},
		{
			name:    "orphan blob",
			warning: Warning{Kind: OrphanBlob, PagePath: "start", Timestamp: 200},
			want:    "orphan attic blob for start at 200 has no changelog entry, skipping",
		},
		{
			name:    "unrecognized file",
			warning: Warning{Kind: UnrecognizedAtticFile, PagePath: "notes.txt"},
			want:    "unrecognized file in attic: notes.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.warning.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrint(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Print(&buf, Summary{Pages: 2, Records: 5, Commits: 7, Warnings: 1}, []Warning{
		{Kind: MissingArchive, PagePath: "foo", Timestamp: 100},
	})

	out := buf.String()
	for _, want := range []string{
		"warning: missing archive entry for foo at 100",
		"Conversion complete",
		"Changelog records  5",
		"Commits            7",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
