// Package dokuwiki describes the layout of a DokuWiki flat-file data
// directory: the meta tree of per-page changelogs, the attic of archived
// revisions, and the mapping between page ids and on-disk paths.
package dokuwiki

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Errors for source store validation.
var (
	ErrNotWikiData = errors.New("dokuwiki: not a wiki data directory")
)

// IDSeparator joins namespace segments in a page id (e.g. "wiki:syntax").
const IDSeparator = ":"

// ChangesExt is the file extension of per-page changelog files.
const ChangesExt = ".changes"

// sentinel is the file whose presence marks a DokuWiki data directory.
// DokuWiki maintains it for every install, so its absence means the
// operator pointed the tool at the wrong place.
const sentinel = "meta/_dokuwiki.changes"

// Store is a read-only view of a DokuWiki data directory.
type Store struct {
	root string
}

// Open validates dir as a DokuWiki data directory and returns a Store.
func Open(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotWikiData, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNotWikiData, dir)
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(sentinel))); err != nil {
		return nil, fmt.Errorf("%w: %s is missing %s", ErrNotWikiData, dir, sentinel)
	}
	return &Store{root: dir}, nil
}

// Root returns the data directory path.
func (s *Store) Root() string {
	return s.root
}

// MetaDir returns the directory holding per-page changelog files.
func (s *Store) MetaDir() string {
	return filepath.Join(s.root, "meta")
}

// AtticDir returns the directory holding archived revision blobs.
func (s *Store) AtticDir() string {
	return filepath.Join(s.root, "attic")
}

// PathForID maps a page id to its slash-separated page path
// ("wiki:syntax" -> "wiki/syntax"). The page path is both the location
// under meta/ and attic/ and the file stem in the produced repository.
func PathForID(id string) string {
	return strings.ReplaceAll(id, IDSeparator, "/")
}

// IDForPath maps a slash-separated page path back to its page id.
func IDForPath(path string) string {
	return strings.ReplaceAll(path, "/", IDSeparator)
}
