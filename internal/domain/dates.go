package domain

import (
	"strings"
	"time"
)

// Portals publish deadlines in a handful of day-first formats; the padded and
// unpadded variants both occur in the wild.
var dateLayouts = []string{
	"2-1-2006",
	"2/1/2006",
	"2 January 2006",
	"2 Jan 2006",
	"2006-1-2",
}

// farFuture is the sort stand-in for "no deadline": records without a
// parseable last date order after every dated record.
var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// ParseDate parses a day-month-year string as published by job portals.
// Returns false for empty or malformed input; never panics.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Deadline returns the posting's application deadline, or farFuture when the
// deadline is missing or unparseable, so deadline sorts are total.
func (j JobRecord) Deadline() time.Time {
	if t, ok := ParseDate(j.LastDate()); ok {
		return t
	}
	return farFuture
}

// HasDeadline reports whether the posting carries a parseable last date.
func (j JobRecord) HasDeadline() bool {
	_, ok := ParseDate(j.LastDate())
	return ok
}
