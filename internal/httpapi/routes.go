package httpapi

import (
	"net/http"
	"time"
)

// Handlers bundles everything the mux needs.
type Handlers struct {
	Page      PageHandler
	Jobs      JobsHandler
	Categories CategoriesHandler
	Session   SessionHandler
	Prefs     PrefsHandler
	Fragments FragmentsHandler
	Events    EventsHandler
}

func Routes(h Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", h.Page.Serve)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"ok": true, "time": time.Now().Format(time.RFC3339)})
	})

	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: h.Jobs.List,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: h.Jobs.GetByPath,
	}))
	mux.HandleFunc("/categories", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: h.Categories.List,
	}))

	mux.HandleFunc("/session", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: h.Session.State,
	}))
	mux.HandleFunc("/session/search", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: h.Session.Search,
	}))
	mux.HandleFunc("/session/category", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: h.Session.Category,
	}))
	mux.HandleFunc("/session/sort", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: h.Session.Sort,
	}))
	mux.HandleFunc("/session/more", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: h.Session.More,
	}))
	mux.HandleFunc("/session/card", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: h.Session.Card,
	}))
	mux.HandleFunc("/session/category-card", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: h.Session.CategoryCard,
	}))
	mux.HandleFunc("/session/detail/dismiss", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: h.Session.DismissDetail,
	}))

	mux.HandleFunc("/prefs/theme", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: h.Prefs.GetTheme,
		http.MethodPut: h.Prefs.PutTheme,
	}))

	mux.HandleFunc("/fragments/list", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: h.Fragments.List,
	}))
	mux.HandleFunc("/fragments/delta", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: h.Fragments.Delta,
	}))
	mux.HandleFunc("/fragments/detail", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: h.Fragments.Detail,
	}))

	mux.HandleFunc("/events", h.Events.Stream)

	return mux
}
