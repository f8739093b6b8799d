// Package render projects session state into HTML fragments. The engine keeps
// the current fragments in memory; the page pulls them over /fragments/* when
// the SSE stream announces a change, so a page advance only ever appends new
// card nodes.
package render

import (
	"embed"
	"html/template"
	"log"
	"strings"
	"sync"

	"sarkari-engine/internal/domain"
	"sarkari-engine/internal/events"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"truncate": Truncate,
	"lastDate": LastDateLabel,
}

var tmpl = template.Must(template.New("render").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))

// Truncate shortens free text for card display.
func Truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if n <= 3 || len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// LastDateLabel is the card/detail label for the application deadline.
// Missing dates render as defined fallback text, never as an error.
func LastDateLabel(j domain.JobRecord) string {
	if d := j.LastDate(); d != "" {
		return d
	}
	return "Not specified"
}

// HTMLRenderer implements session.Renderer over html/template.
type HTMLRenderer struct {
	mu         sync.Mutex
	hub        *events.Hub
	listHTML   string
	lastDelta  string
	detailHTML string
	hasMore    bool
}

func NewHTMLRenderer(hub *events.Hub) *HTMLRenderer {
	return &HTMLRenderer{hub: hub}
}

func (r *HTMLRenderer) RenderFull(visible []domain.JobRecord, hasMore bool) {
	var html string
	if len(visible) == 0 {
		html = r.execute("empty.tmpl", nil)
	} else {
		html = r.execute("cards.tmpl", map[string]any{"Jobs": visible})
	}

	r.mu.Lock()
	r.listHTML = html
	r.lastDelta = ""
	r.hasMore = hasMore
	r.mu.Unlock()

	r.publish(events.TypeViewRendered, map[string]any{
		"count":    len(visible),
		"has_more": hasMore,
	})
}

func (r *HTMLRenderer) RenderMore(added []domain.JobRecord, hasMore bool) {
	delta := ""
	if len(added) > 0 {
		delta = r.execute("cards.tmpl", map[string]any{"Jobs": added})
	}

	r.mu.Lock()
	r.listHTML += delta
	r.lastDelta = delta
	r.hasMore = hasMore
	r.mu.Unlock()

	r.publish(events.TypePageAppended, map[string]any{
		"added":    len(added),
		"has_more": hasMore,
	})
}

func (r *HTMLRenderer) PresentDetail(j domain.JobRecord) {
	html := r.execute("detail.tmpl", j)

	r.mu.Lock()
	r.detailHTML = html
	r.mu.Unlock()

	r.publish(events.TypeDetailPresented, map[string]any{"id": j.ID})
}

func (r *HTMLRenderer) DismissDetail() {
	r.mu.Lock()
	r.detailHTML = ""
	r.mu.Unlock()

	r.publish(events.TypeDetailDismissed, nil)
}

func (r *HTMLRenderer) ScrollToResults() {
	r.publish(events.TypeScrollResults, nil)
}

// ListHTML returns the current card list (or empty-state) fragment and
// whether the load-more affordance should show.
func (r *HTMLRenderer) ListHTML() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listHTML, r.hasMore
}

// Delta returns the fragment appended by the most recent page advance.
func (r *HTMLRenderer) Delta() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastDelta, r.hasMore
}

// DetailHTML returns the open detail fragment, or "" when dismissed.
func (r *HTMLRenderer) DetailHTML() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.detailHTML
}

func (r *HTMLRenderer) execute(name string, data any) string {
	var sb strings.Builder
	if err := tmpl.ExecuteTemplate(&sb, name, data); err != nil {
		log.Printf("[render] %s: %v", name, err)
		return ""
	}
	return sb.String()
}

func (r *HTMLRenderer) publish(typ string, data any) {
	if r.hub == nil {
		return
	}
	r.hub.Publish(typ, events.MakeEvent("", typ, 1, data))
}
