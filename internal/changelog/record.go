// Package changelog parses DokuWiki per-page changelog files and merges
// them into a single chronologically ordered edit history.
package changelog

import (
	"time"

	"github.com/dokugit/dokugit/internal/dokuwiki"
)

// ChangeType classifies one changelog entry.
type ChangeType int

const (
	ChangeCreate ChangeType = iota
	ChangeEdit
	ChangeMinorEdit
	ChangeDelete
)

// String returns the single-letter code DokuWiki writes to changelog files.
func (t ChangeType) String() string {
	switch t {
	case ChangeCreate:
		return "C"
	case ChangeEdit:
		return "E"
	case ChangeMinorEdit:
		return "e"
	case ChangeDelete:
		return "D"
	default:
		return "?"
	}
}

// ParseChangeType maps a changelog type code to a ChangeType.
func ParseChangeType(code string) (ChangeType, bool) {
	switch code {
	case "C":
		return ChangeCreate, true
	case "E":
		return ChangeEdit, true
	case "e":
		return ChangeMinorEdit, true
	case "D":
		return ChangeDelete, true
	default:
		return 0, false
	}
}

// IsContent reports whether the change carries page content, i.e. an
// archived revision blob is expected in the attic.
func (t ChangeType) IsContent() bool {
	return t == ChangeCreate || t == ChangeEdit || t == ChangeMinorEdit
}

// ChangeRecord is one historical edit event, parsed from a single
// changelog line. Records are immutable once parsed.
type ChangeRecord struct {
	Timestamp int64
	IP        string
	Type      ChangeType
	PageID    string
	Author    string
	Sum       string
	Comment   string
}

// When returns the edit time.
func (r ChangeRecord) When() time.Time {
	return time.Unix(r.Timestamp, 0)
}

// PagePath returns the slash-separated path of the page on disk.
func (r ChangeRecord) PagePath() string {
	return dokuwiki.PathForID(r.PageID)
}
