package httpapi

import (
	"database/sql"
	"errors"
	"net/http"

	"sarkari-engine/internal/events"
	"sarkari-engine/internal/store"
)

// PrefsHandler persists the single display preference (theme) across
// sessions.
type PrefsHandler struct {
	DB  *sql.DB
	Hub *events.Hub
}

func (h PrefsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := store.GetTheme(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	writeJSON(w, map[string]string{"theme": theme})
}

func (h PrefsHandler) PutTheme(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}

	err := store.SetTheme(r.Context(), h.DB, body.Theme)
	if errors.Is(err, store.ErrBadTheme) {
		WriteError(w, r, http.StatusBadRequest, "bad_theme", err.Error())
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	if h.Hub != nil {
		reqID := RequestIDFrom(r.Context())
		h.Hub.Publish(events.TypeThemeChanged,
			events.MakeEvent(reqID, events.TypeThemeChanged, 1, map[string]string{"theme": body.Theme}))
	}
	writeJSON(w, map[string]string{"theme": body.Theme})
}
