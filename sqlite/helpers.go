package sqlite

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/homes"
)

// timestampFormat is RFC3339 with fixed-width nanoseconds, so stored
// timestamps sort lexically in time order.
const timestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

// hashContent computes the xxHash of page markup as a hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite requires a LIMIT before OFFSET, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// encodeFields serializes the field groups of a listing.
func encodeFields(l *homes.Listing) (string, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("failed to encode listing fields: %w", err)
	}
	return string(b), nil
}

// decodeFields restores a listing from its serialized field groups.
func decodeFields(url, data string) (*homes.Listing, error) {
	l := homes.NewListing(url)
	if err := json.Unmarshal([]byte(data), l); err != nil {
		return nil, fmt.Errorf("failed to decode listing fields: %w", err)
	}
	l.URL = url
	return l, nil
}
