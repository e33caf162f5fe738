// Package report collects integrity warnings and renders the run outcome
// to the console.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
)

// WarningKind classifies an integrity finding. Warnings never stop a run;
// legacy stores accumulate drift and a best-effort history still beats no
// history.
type WarningKind int

const (
	// MissingArchive: a content change has no archived revision blob.
	MissingArchive WarningKind = iota
	// OrphanBlob: an archived revision has no changelog record.
	OrphanBlob
	// UnrecognizedAtticFile: a file in the attic whose name does not
	// follow the <page>.<timestamp>.txt.gz convention.
	UnrecognizedAtticFile
)

// Warning is one integrity finding, with enough context for an operator
// to reconcile the source store by hand.
type Warning struct {
	Kind      WarningKind
	PagePath  string
	Timestamp int64
}

// String renders the warning as a single log line.
func (w Warning) String() string {
	switch w.Kind {
	case MissingArchive:
		return fmt.Sprintf("missing archive entry for %s at %d, committing without content", w.PagePath, w.Timestamp)
	case OrphanBlob:
		return fmt.Sprintf("orphan attic blob for %s at %d has no changelog entry, skipping", w.PagePath, w.Timestamp)
	case UnrecognizedAtticFile:
		return fmt.Sprintf("unrecognized file in attic: %s", w.PagePath)
	default:
		return fmt.Sprintf("unknown warning for %s", w.PagePath)
	}
}

// Summary describes a completed conversion.
type Summary struct {
	Pages    int
	Records  int
	Commits  int
	Warnings int
}

// Print writes warnings and the summary table to w.
func Print(w io.Writer, summary Summary, warnings []Warning) {
	for _, warning := range warnings {
		color.New(color.FgYellow).Fprintf(w, "warning: %s\n", warning)
	}

	color.New(color.FgGreen).Fprintln(w, "Conversion complete")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pages\t%d\n", summary.Pages)
	fmt.Fprintf(tw, "Changelog records\t%d\n", summary.Records)
	fmt.Fprintf(tw, "Commits\t%d\n", summary.Commits)
	fmt.Fprintf(tw, "Warnings\t%d\n", summary.Warnings)
	tw.Flush()
}
