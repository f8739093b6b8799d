package httpapi

import (
	"net/http"

	"sarkari-engine/internal/session"
	"sarkari-engine/internal/view"
)

// SessionHandler exposes the interaction controller's input events. POSTs
// mirror the UI events one to one; the controller owns all state.
type SessionHandler struct {
	Ctl *session.Controller
}

func (h SessionHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Ctl.Snapshot())
}

func (h SessionHandler) Search(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Term string `json:"term"`
	}
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}
	h.Ctl.OnSearchInput(body.Term)
	writeJSON(w, map[string]any{"ok": true})
}

func (h SessionHandler) Category(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Category string `json:"category"`
	}
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}
	h.Ctl.OnCategoryChange(body.Category)
	writeJSON(w, map[string]any{"ok": true})
}

func (h SessionHandler) Sort(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Sort string `json:"sort"`
	}
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}
	h.Ctl.OnSortChange(view.ParseSortKey(body.Sort))
	writeJSON(w, map[string]any{"ok": true})
}

func (h SessionHandler) More(w http.ResponseWriter, r *http.Request) {
	h.Ctl.OnLoadMore()
	writeJSON(w, map[string]any{"ok": true})
}

func (h SessionHandler) Card(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
	}
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}
	if !h.Ctl.OnCardActivate(body.ID) {
		WriteError(w, r, http.StatusNotFound, "not_found", "no such job")
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}

func (h SessionHandler) CategoryCard(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Category string `json:"category"`
	}
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}
	h.Ctl.OnCategoryCardActivate(body.Category)
	writeJSON(w, map[string]any{"ok": true})
}

func (h SessionHandler) DismissDetail(w http.ResponseWriter, r *http.Request) {
	h.Ctl.OnDetailDismiss()
	writeJSON(w, map[string]any{"ok": true})
}
