package httpapi

import (
	"fmt"
	"net/http"

	"sarkari-engine/internal/events"
)

// EventsHandler streams hub events as Server-Sent Events. New subscribers
// get the last event of each type replayed so a reconnecting page repaints.
type EventsHandler struct {
	Hub *events.Hub
}

func (h EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", 500)
		return
	}

	ch := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(ch)

	fmt.Fprintf(w, "event: ping\ndata: %s\n\n", `{"type":"ping"}`)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-ch:
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
