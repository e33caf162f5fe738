package changelog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeChanges writes a changelog file under metaDir, creating namespace
// directories as needed.
func writeChanges(t *testing.T, metaDir, relPath, content string) {
	t.Helper()
	path := filepath.Join(metaDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", relPath, err)
	}
}

func TestLoad_CollectsAllPages(t *testing.T) {
	metaDir := t.TempDir()
	writeChanges(t, metaDir, "start.changes",
		"100\t10.0.0.1\tC\tstart\talice\tcreated\t\n"+
			"200\t10.0.0.1\tE\tstart\talice\treworded\t\n")
	writeChanges(t, metaDir, "wiki/syntax.changes",
		"150\t10.0.0.2\tC\twiki:syntax\tbob\tcreated\t\n")

	records, err := Load(metaDir, LoadOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	// WalkDir is lexical: start.changes before wiki/syntax.changes.
	if records[0].PageID != "start" || records[1].PageID != "start" {
		t.Errorf("expected start records first, got %q, %q", records[0].PageID, records[1].PageID)
	}
	if records[2].PageID != "wiki:syntax" {
		t.Errorf("expected wiki:syntax record last, got %q", records[2].PageID)
	}
}

func TestLoad_SkipsReservedPages(t *testing.T) {
	metaDir := t.TempDir()
	writeChanges(t, metaDir, "_dokuwiki.changes",
		"100\t127.0.0.1\tE\t_dokuwiki\t\tinstalled\t\n")
	writeChanges(t, metaDir, "_comments.changes",
		"100\t127.0.0.1\tE\t_comments\t\t\t\n")
	writeChanges(t, metaDir, "start.changes",
		"200\t10.0.0.1\tC\tstart\talice\tcreated\t\n")

	records, err := Load(metaDir, LoadOptions{Reserved: []string{"_dokuwiki", "_comments"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].PageID != "start" {
		t.Errorf("PageID = %q, want %q", records[0].PageID, "start")
	}
}

func TestLoad_SkipsBlankLines(t *testing.T) {
	metaDir := t.TempDir()
	writeChanges(t, metaDir, "start.changes",
		"100\t10.0.0.1\tC\tstart\talice\tcreated\t\n\n")

	records, err := Load(metaDir, LoadOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestLoad_MalformedLineAborts(t *testing.T) {
	metaDir := t.TempDir()
	writeChanges(t, metaDir, "good.changes",
		"100\t10.0.0.1\tC\tgood\talice\tcreated\t\n")
	writeChanges(t, metaDir, "zbad.changes",
		"100\t10.0.0.1\tC\tzbad\talice\tcreated\n") // six fields

	_, err := Load(metaDir, LoadOptions{})
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestLoad_PageIdentityFromPath(t *testing.T) {
	metaDir := t.TempDir()
	// Record claims page id "start" but lives under wiki/.
	writeChanges(t, metaDir, "wiki/start.changes",
		"100\t10.0.0.1\tC\tstart\talice\tcreated\t\n")

	_, err := Load(metaDir, LoadOptions{})
	if !errors.Is(err, ErrPageIdentityMismatch) {
		t.Fatalf("expected ErrPageIdentityMismatch, got %v", err)
	}
}

func TestLoad_IgnoresNonChangelogFiles(t *testing.T) {
	metaDir := t.TempDir()
	writeChanges(t, metaDir, "start.changes",
		"100\t10.0.0.1\tC\tstart\talice\tcreated\t\n")
	writeChanges(t, metaDir, "start.meta", "serialized metadata, not a changelog")
	writeChanges(t, metaDir, "start.indexed", "1")

	records, err := Load(metaDir, LoadOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestLoad_Filters(t *testing.T) {
	metaDir := t.TempDir()
	writeChanges(t, metaDir, "start.changes",
		"100\t10.0.0.1\tC\tstart\talice\tcreated\t\n")
	writeChanges(t, metaDir, "wiki/syntax.changes",
		"150\t10.0.0.2\tC\twiki:syntax\tbob\tcreated\t\n")
	writeChanges(t, metaDir, "wiki/dokuwiki.changes",
		"160\t10.0.0.2\tC\twiki:dokuwiki\tbob\tcreated\t\n")

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    int
	}{
		{name: "no filters", want: 3},
		{name: "include namespace", include: []string{"wiki/**"}, want: 2},
		{name: "exclude namespace", exclude: []string{"wiki/**"}, want: 1},
		{name: "exclude wins over include", include: []string{"wiki/**"}, exclude: []string{"wiki/dokuwiki"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Load(metaDir, LoadOptions{Include: tt.include, Exclude: tt.exclude})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(records) != tt.want {
				t.Fatalf("got %d records, want %d", len(records), tt.want)
			}
		})
	}
}
