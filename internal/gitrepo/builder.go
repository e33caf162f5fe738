package gitrepo

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dokugit/dokugit/internal/attic"
	"github.com/dokugit/dokugit/internal/replay"
)

// ConverterIdentity signs the bracketing commits the converter itself
// makes (repository initialization and the closing summary commit).
type ConverterIdentity struct {
	Name         string
	Email        string
	FinalMessage string
}

// Builder executes a replay plan in order: init commit, every planned
// instruction, closing commit. The first failure aborts the run with the
// repository left in whatever state it reached.
type Builder struct {
	dir      string
	backend  Backend
	identity ConverterIdentity
}

// NewBuilder returns a Builder writing into dir through backend.
func NewBuilder(dir string, backend Backend, identity ConverterIdentity) *Builder {
	return &Builder{dir: dir, backend: backend, identity: identity}
}

// Run executes the plan. It returns the total number of commits made,
// including the bracketing ones.
func (b *Builder) Run(plan []replay.Instruction) (int, error) {
	commits := 0

	if err := b.backend.Init(); err != nil {
		return commits, fmt.Errorf("%w: init repository: %v", ErrBackendCommand, err)
	}
	if err := b.backend.Commit(b.identity.Name, b.identity.Email, "Initialize repository", time.Now(), true); err != nil {
		return commits, fmt.Errorf("%w: initial commit: %v", ErrBackendCommand, err)
	}
	commits++

	for i, in := range plan {
		if err := b.execute(in); err != nil {
			return commits, fmt.Errorf("%w: instruction %d (%s): %v", ErrBackendCommand, i, in, err)
		}
		if in.Kind == replay.Commit {
			commits++
		}
	}

	if err := b.backend.Commit(b.identity.Name, b.identity.Email, b.identity.FinalMessage, time.Now(), true); err != nil {
		return commits, fmt.Errorf("%w: closing commit: %v", ErrBackendCommand, err)
	}
	commits++

	return commits, nil
}

func (b *Builder) execute(in replay.Instruction) error {
	switch in.Kind {
	case replay.EnsureDir:
		return os.MkdirAll(filepath.Join(b.dir, filepath.FromSlash(in.Path)), 0755)
	case replay.WriteFile:
		return b.writeDecompressed(in.Source, in.Path)
	case replay.StageFile:
		return b.backend.Stage(in.Path)
	case replay.RemoveFile:
		return b.backend.Remove(in.Path)
	case replay.Commit:
		return b.backend.Commit(in.Author, in.Email, in.Message, in.When, in.AllowEmpty)
	default:
		return fmt.Errorf("unknown instruction kind %d", in.Kind)
	}
}

func (b *Builder) writeDecompressed(src, dest string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	content, err := attic.Decompress(f)
	if err != nil {
		return fmt.Errorf("decompress %s: %w", src, err)
	}
	return os.WriteFile(filepath.Join(b.dir, filepath.FromSlash(dest)), content, 0644)
}
