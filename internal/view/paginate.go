package view

import "sarkari-engine/internal/domain"

// DefaultPageSize is the fixed number of cards revealed per page.
const DefaultPageSize = 12

// Page is the visible prefix of a view plus the load-more flag.
type Page struct {
	Visible []domain.JobRecord
	HasMore bool
}

// Paginate returns the prefix of view covering pages 1..currentPage. HasMore
// is true iff records remain beyond the prefix.
func Paginate(v []domain.JobRecord, pageSize, currentPage int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if currentPage < 1 {
		currentPage = 1
	}
	n := currentPage * pageSize
	if n > len(v) {
		n = len(v)
	}
	return Page{Visible: v[:n], HasMore: n < len(v)}
}
