package httpapi

import (
	"database/sql"
	"net/http"
	"strconv"

	"sarkari-engine/internal/domain"
	"sarkari-engine/internal/render"
	"sarkari-engine/internal/store"
)

// FragmentsHandler serves the renderer's current HTML fragments. The page
// script pulls these when the SSE stream announces a change; the delta
// endpoint is what keeps page advances append-only in the DOM.
type FragmentsHandler struct {
	Renderer *render.HTMLRenderer
}

func (h FragmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	html, hasMore := h.Renderer.ListHTML()
	writeFragment(w, html, hasMore)
}

func (h FragmentsHandler) Delta(w http.ResponseWriter, r *http.Request) {
	html, hasMore := h.Renderer.Delta()
	writeFragment(w, html, hasMore)
}

func (h FragmentsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(h.Renderer.DetailHTML()))
}

func writeFragment(w http.ResponseWriter, html string, hasMore bool) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Has-More", strconv.FormatBool(hasMore))
	_, _ = w.Write([]byte(html))
}

// PageHandler serves the UI shell with the persisted theme and the category
// taxonomy baked in.
type PageHandler struct {
	DB   *sql.DB
	Jobs func() []domain.JobRecord
}

func (h PageHandler) Serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	theme := store.DefaultTheme
	if h.DB != nil {
		if t, err := store.GetTheme(r.Context(), h.DB); err == nil {
			theme = t
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = render.WritePage(w, render.PageData{
		Theme:      theme,
		Categories: domain.CountByCategory(h.Jobs()),
	})
}
