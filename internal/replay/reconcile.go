package replay

import (
	"strings"

	"github.com/dokugit/dokugit/internal/attic"
	"github.com/dokugit/dokugit/internal/changelog"
	"github.com/dokugit/dokugit/internal/report"
)

// PageExt is the extension of page files in the produced repository.
const PageExt = ".txt"

// Reconciler cross-checks the ordered changelog against the attic and
// derives the instruction sequence that replays it.
type Reconciler struct {
	tree *attic.Tree
	// placeholder stands in for edits whose changelog line carries no
	// username (anonymous edits record only the IP).
	placeholder string
}

// NewReconciler returns a Reconciler over the given attic tree.
func NewReconciler(tree *attic.Tree, placeholderAuthor string) *Reconciler {
	return &Reconciler{tree: tree, placeholder: placeholderAuthor}
}

// Reconcile runs the replay pass: for every record, in order, the content
// mutation (when the archived revision exists) followed by its commit.
// Every record yields exactly one Commit instruction, even when the
// archive is missing; an empty commit keeps the one-to-one mapping
// between changelog position and commit position. Records and warnings
// come back in replay order.
func (r *Reconciler) Reconcile(records []changelog.ChangeRecord) ([]Instruction, []report.Warning) {
	var plan []Instruction
	var warnings []report.Warning

	// Pages whose file currently exists in the replayed worktree. A
	// Delete only emits a removal when the file was materialized, so a
	// Delete with no prior surviving Create still commits cleanly.
	live := map[string]bool{}

	for _, record := range records {
		pagePath := record.PagePath()
		filePath := pagePath + PageExt

		switch {
		case record.Type.IsContent():
			if !r.tree.Exists(pagePath, record.Timestamp) {
				warnings = append(warnings, report.Warning{
					Kind:      report.MissingArchive,
					PagePath:  pagePath,
					Timestamp: record.Timestamp,
				})
				break
			}
			if dir := parentDir(filePath); dir != "" {
				plan = append(plan, Instruction{Kind: EnsureDir, Path: dir})
			}
			plan = append(plan,
				Instruction{Kind: WriteFile, Path: filePath, Source: r.tree.BlobPath(pagePath, record.Timestamp)},
				Instruction{Kind: StageFile, Path: filePath},
			)
			live[pagePath] = true
		case record.Type == changelog.ChangeDelete:
			if live[pagePath] {
				plan = append(plan, Instruction{Kind: RemoveFile, Path: filePath})
				live[pagePath] = false
			}
		}

		author := record.Author
		if author == "" {
			author = r.placeholder
		}
		plan = append(plan, Instruction{
			Kind:       Commit,
			Author:     author,
			Email:      author + "@" + record.IP,
			Message:    pagePath + ": " + record.Comment,
			When:       record.When(),
			AllowEmpty: true,
		})
	}

	return plan, warnings
}

// FindOrphans runs the diagnostic pass: attic blobs no changelog record
// accounts for. It never contributes instructions.
func (r *Reconciler) FindOrphans(records []changelog.ChangeRecord) ([]report.Warning, error) {
	seen := make(map[attic.Revision]bool, len(records))
	for _, record := range records {
		seen[attic.Revision{PagePath: record.PagePath(), Timestamp: record.Timestamp}] = true
	}
	return r.tree.Scan(seen)
}

func parentDir(filePath string) string {
	if i := strings.LastIndex(filePath, "/"); i > 0 {
		return filePath[:i]
	}
	return ""
}
