// Package attic locates and reads DokuWiki's archived revision blobs:
// gzip-compressed page snapshots named <pagePath>.<timestamp>.txt.gz.
package attic

import (
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dokugit/dokugit/internal/report"
)

// blobSuffix is the extension of every archived revision file.
const blobSuffix = ".txt.gz"

// Tree is a read-only view of the attic directory.
type Tree struct {
	dir string
}

// NewTree returns a Tree over the given attic directory. The directory
// may be absent (a wiki with no history yet); lookups then miss and the
// orphan scan finds nothing.
func NewTree(dir string) *Tree {
	return &Tree{dir: dir}
}

// BlobPath returns the expected location of the revision blob for a page
// at a given moment.
func (t *Tree) BlobPath(pagePath string, timestamp int64) string {
	name := fmt.Sprintf("%s.%d%s", pagePath, timestamp, blobSuffix)
	return filepath.Join(t.dir, filepath.FromSlash(name))
}

// Exists reports whether the revision blob for (pagePath, timestamp) is
// present on disk.
func (t *Tree) Exists(pagePath string, timestamp int64) bool {
	info, err := os.Stat(t.BlobPath(pagePath, timestamp))
	return err == nil && !info.IsDir()
}

// ParseBlobName splits an attic-relative path into the page path and
// revision timestamp it encodes.
func ParseBlobName(rel string) (pagePath string, timestamp int64, ok bool) {
	if !strings.HasSuffix(rel, blobSuffix) {
		return "", 0, false
	}
	stem := strings.TrimSuffix(rel, blobSuffix)
	dot := strings.LastIndex(stem, ".")
	if dot <= 0 || dot == len(stem)-1 {
		return "", 0, false
	}
	ts, err := strconv.ParseInt(stem[dot+1:], 10, 64)
	if err != nil {
		return "", 0, false
	}
	return stem[:dot], ts, true
}

// Revision identifies one archived page snapshot.
type Revision struct {
	PagePath  string
	Timestamp int64
}

// Scan walks the attic and reports every blob whose (pagePath, timestamp)
// is not in seen, plus any file that does not follow the blob naming
// convention. Purely diagnostic; the replay never reads orphans.
func (t *Tree) Scan(seen map[Revision]bool) ([]report.Warning, error) {
	var warnings []report.Warning

	err := filepath.WalkDir(t.dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == t.dir {
				return filepath.SkipAll
			}
			return err
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(t.dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		pagePath, ts, ok := ParseBlobName(rel)
		if !ok {
			warnings = append(warnings, report.Warning{Kind: report.UnrecognizedAtticFile, PagePath: rel})
			return nil
		}
		if !seen[Revision{PagePath: pagePath, Timestamp: ts}] {
			warnings = append(warnings, report.Warning{Kind: report.OrphanBlob, PagePath: pagePath, Timestamp: ts})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return warnings, nil
}

// Decompress expands one gzip blob.
func Decompress(r io.Reader) ([]byte, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
