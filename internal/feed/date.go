// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies which feed dialect an entry came from. The dialects
// differ only in how they format entry timestamps.
type Kind int

const (
	// KindArxiv entries carry an RFC3339-style timestamp; the date is the
	// portion before the 'T' separator.
	KindArxiv Kind = iota

	// KindBiorxiv entries carry a bare YYYY-MM-DD date.
	KindBiorxiv
)

const dateFmt = "2006-01-02"

// dateRules maps each feed dialect to its timestamp handling.
var dateRules = map[Kind]struct {
	// splitAt is the separator that ends the date portion, if any.
	splitAt string
}{
	KindArxiv:   {splitAt: "T"},
	KindBiorxiv: {},
}

// parseEntryDate extracts the calendar date from a raw entry timestamp.
// The result is midnight UTC so that equal dates compare equal regardless
// of the time of day the source published at.
func parseEntryDate(raw string, kind Kind) (time.Time, error) {
	rule := dateRules[kind]

	s := raw
	if rule.splitAt != "" {
		if idx := strings.Index(s, rule.splitAt); idx >= 0 {
			s = s[:idx]
		}
	}

	t, err := time.Parse(dateFmt, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid entry timestamp %q: %w", raw, err)
	}
	return t, nil
}
