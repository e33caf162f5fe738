package changelog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors for changelog parsing. Any of them aborts a conversion run:
// malformed metadata means the source store is corrupted, and a partial
// import is worse than refusing to import.
var (
	ErrMalformedRecord      = errors.New("changelog: malformed record")
	ErrInvalidChangeType    = errors.New("changelog: invalid change type")
	ErrPageIdentityMismatch = errors.New("changelog: page identity mismatch")
)

// recordFields is the fixed column count of a changelog line:
// timestamp, ip, type, page id, user, sum, comment.
const recordFields = 7

// ParseRecord parses one raw tab-separated changelog line. expectedID is
// the page id implied by the location of the changelog file being read;
// the line's own page id field must match it.
func ParseRecord(line string, expectedID string) (ChangeRecord, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != recordFields {
		return ChangeRecord{}, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedRecord, len(fields), recordFields)
	}

	ts, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return ChangeRecord{}, fmt.Errorf("%w: bad timestamp %q", ErrMalformedRecord, fields[0])
	}

	changeType, ok := ParseChangeType(fields[2])
	if !ok {
		return ChangeRecord{}, fmt.Errorf("%w: %q", ErrInvalidChangeType, fields[2])
	}

	if fields[3] != expectedID {
		return ChangeRecord{}, fmt.Errorf("%w: record names %q, changelog file is for %q", ErrPageIdentityMismatch, fields[3], expectedID)
	}

	return ChangeRecord{
		Timestamp: ts,
		IP:        fields[1],
		Type:      changeType,
		PageID:    fields[3],
		Author:    fields[4],
		Sum:       fields[5],
		Comment:   fields[6],
	}, nil
}
