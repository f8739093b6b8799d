// Package view holds the pure derivation core: search, category filter, sort
// and pagination over an immutable job collection. Nothing here mutates its
// inputs or keeps state between calls.
package view

import (
	"sort"
	"strings"

	"sarkari-engine/internal/domain"
)

type SortKey string

const (
	SortLatest   SortKey = "latest"
	SortDeadline SortKey = "deadline"
	SortCategory SortKey = "category"
	SortNone     SortKey = "none"
)

// ParseSortKey maps user input to a sort key, defaulting to SortNone.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortLatest, SortDeadline, SortCategory:
		return SortKey(s)
	default:
		return SortNone
	}
}

// Derive computes the ordered view for the given session inputs. Search and
// category filter apply conjunctively; the returned slice is freshly
// allocated and never aliases all.
func Derive(all []domain.JobRecord, term, category string, key SortKey) []domain.JobRecord {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]domain.JobRecord, 0, len(all))
	for _, j := range all {
		if category != "" && j.Category != category {
			continue
		}
		if term != "" && !matchesTerm(j, term) {
			continue
		}
		out = append(out, j)
	}

	switch key {
	case SortLatest:
		// Reverse-lexicographic id order as a recency proxy; ties keep
		// input order.
		sort.SliceStable(out, func(a, b int) bool { return out[a].ID > out[b].ID })
	case SortDeadline:
		// Missing or malformed deadlines sort last.
		sort.SliceStable(out, func(a, b int) bool { return out[a].Deadline().Before(out[b].Deadline()) })
	case SortCategory:
		sort.SliceStable(out, func(a, b int) bool { return out[a].Category < out[b].Category })
	}
	return out
}

// matchesTerm reports whether the case-folded term is a substring of the
// record's title, description, source, category, or any skill tag.
func matchesTerm(j domain.JobRecord, term string) bool {
	if strings.Contains(strings.ToLower(j.Title), term) ||
		strings.Contains(strings.ToLower(j.Description), term) ||
		strings.Contains(strings.ToLower(j.Source), term) ||
		strings.Contains(strings.ToLower(j.Category), term) {
		return true
	}
	for _, s := range j.Skills {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}
