// Package replay turns the ordered edit history into the exact sequence
// of repository mutations and commits that reproduces it.
package replay

import (
	"fmt"
	"time"
)

// Kind discriminates instruction variants.
type Kind int

const (
	// EnsureDir creates a namespace directory inside the target repo.
	EnsureDir Kind = iota
	// WriteFile decompresses the attic blob at Source into Path.
	WriteFile
	// StageFile stages Path for the next commit.
	StageFile
	// RemoveFile deletes Path from worktree and index.
	RemoveFile
	// Commit records a commit with the carried metadata.
	Commit
)

// String returns the instruction verb.
func (k Kind) String() string {
	switch k {
	case EnsureDir:
		return "ensure-dir"
	case WriteFile:
		return "write"
	case StageFile:
		return "stage"
	case RemoveFile:
		return "remove"
	case Commit:
		return "commit"
	default:
		return "unknown"
	}
}

// Instruction is one unit of work against the target repository. The
// sequence is executed strictly in order; commit order is the edit
// history, so no reordering or batching is ever permitted.
type Instruction struct {
	Kind   Kind
	Path   string // repo-relative, slash-separated; empty for Commit
	Source string // absolute attic blob path; WriteFile only

	// Commit metadata; Commit only.
	Author     string
	Email      string
	Message    string
	When       time.Time
	AllowEmpty bool
}

// String renders the instruction for plan listings and error context.
func (in Instruction) String() string {
	switch in.Kind {
	case Commit:
		return fmt.Sprintf("%s %q by %s <%s>", in.Kind, in.Message, in.Author, in.Email)
	case WriteFile:
		return fmt.Sprintf("%s %s from %s", in.Kind, in.Path, in.Source)
	default:
		return fmt.Sprintf("%s %s", in.Kind, in.Path)
	}
}
