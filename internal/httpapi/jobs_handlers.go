package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"sarkari-engine/internal/domain"
	"sarkari-engine/internal/view"
)

// JobsHandler serves the stateless query API: every request derives a fresh
// view from the loaded collection, independent of the live session.
type JobsHandler struct {
	Jobs     func() []domain.JobRecord
	PageSize int
}

type jobsResponse struct {
	Jobs    []domain.JobRecord `json:"jobs"`
	Total   int                `json:"total"`
	Page    int                `json:"page"`
	HasMore bool               `json:"hasMore"`
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := 1
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		page = p
	}

	v := view.Derive(h.Jobs(), q.Get("q"), q.Get("category"), view.ParseSortKey(q.Get("sort")))
	p := view.Paginate(v, h.PageSize, page)

	writeJSON(w, jobsResponse{
		Jobs:    p.Visible,
		Total:   len(v),
		Page:    page,
		HasMore: p.HasMore,
	})
}

func (h JobsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/jobs/")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "missing job id")
		return
	}
	for _, j := range h.Jobs() {
		if j.ID == id {
			writeJSON(w, j)
			return
		}
	}
	WriteError(w, r, http.StatusNotFound, "not_found", "no such job")
}

// CategoriesHandler serves the fixed taxonomy with per-category counts over
// the loaded collection.
type CategoriesHandler struct {
	Jobs func() []domain.JobRecord
}

func (h CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, domain.CountByCategory(h.Jobs()))
}
