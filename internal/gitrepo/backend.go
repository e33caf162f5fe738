// Package gitrepo executes a replay plan against a freshly initialized
// git repository.
package gitrepo

import (
	"errors"
	"time"
)

// Errors for plan execution.
var (
	// ErrBackendCommand wraps the first failing instruction. Execution
	// stops immediately; whatever was already committed stays on disk.
	ErrBackendCommand = errors.New("gitrepo: backend command failed")
)

// Backend is the narrow capability surface the builder drives. Commit
// metadata travels as typed arguments, never through a shell, so author
// names and comments need no escaping.
type Backend interface {
	// Init creates the repository in its target directory.
	Init() error
	// Stage adds the repo-relative path to the index.
	Stage(path string) error
	// Remove deletes the repo-relative path from worktree and index.
	Remove(path string) error
	// Commit records a commit. allowEmpty permits commits that change
	// nothing in the tree.
	Commit(author, email, message string, when time.Time, allowEmpty bool) error
}

// Compile-time interface conformance checks.
var (
	_ Backend = (*GitBackend)(nil)
	_ Backend = (*MockBackend)(nil)
)
