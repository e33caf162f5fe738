package changelog

import (
	"bufio"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dokugit/dokugit/internal/dokuwiki"
)

// LoadOptions configures changelog aggregation.
type LoadOptions struct {
	// Reserved lists page ids whose changelogs are internal bookkeeping,
	// not content, and are skipped entirely.
	Reserved []string
	// Include and Exclude are doublestar globs matched against the page
	// path. Empty Include accepts every page.
	Include []string
	Exclude []string
}

// Load walks the meta tree and parses every qualifying changelog file
// into one unsorted collection. Line order within a file is preserved and
// the walk itself is lexical, so the result is deterministic for a given
// tree. Any parse failure aborts the load.
func Load(metaDir string, opts LoadOptions) ([]ChangeRecord, error) {
	var records []ChangeRecord

	err := filepath.WalkDir(metaDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), dokuwiki.ChangesExt) {
			return nil
		}

		rel, err := filepath.Rel(metaDir, path)
		if err != nil {
			return err
		}
		pagePath := strings.TrimSuffix(filepath.ToSlash(rel), dokuwiki.ChangesExt)
		pageID := dokuwiki.IDForPath(pagePath)

		if isReserved(pageID, opts.Reserved) {
			log.Printf("skipping reserved page %s", pageID)
			return nil
		}
		if !matchesFilters(pagePath, opts.Include, opts.Exclude) {
			return nil
		}

		pageRecords, err := loadFile(path, pageID)
		if err != nil {
			return err
		}
		records = append(records, pageRecords...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// loadFile parses one changelog file line by line. Blank lines (such as
// the trailing newline DokuWiki leaves at end of file) are skipped.
func loadFile(path string, pageID string) ([]ChangeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []ChangeRecord
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		record, err := ParseRecord(line, pageID)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

func isReserved(pageID string, reserved []string) bool {
	for _, r := range reserved {
		if pageID == r {
			return true
		}
	}
	return false
}

// matchesFilters decides whether a page takes part in the conversion.
// An exclude glob always wins; with no include globs every page not
// excluded qualifies, otherwise at least one include must match.
func matchesFilters(pagePath string, include, exclude []string) bool {
	for _, pattern := range exclude {
		matched, _ := doublestar.Match(pattern, pagePath)
		if matched {
			return false
		}
	}

	if len(include) == 0 {
		return true
	}

	for _, pattern := range include {
		matched, _ := doublestar.Match(pattern, pagePath)
		if matched {
			return true
		}
	}

	return false
}
