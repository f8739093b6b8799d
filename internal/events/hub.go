package events

import "sync"

// Hub fans out UI events to SSE subscribers. The last event of each type is
// retained and replayed on subscribe so a reconnecting page can repaint
// without waiting for the next state change.
type Hub struct {
	mu      sync.Mutex
	clients map[chan string]struct{}
	last    map[string]string
	order   []string // types in first-publish order, for stable replay
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[chan string]struct{}),
		last:    make(map[string]string),
	}
}

func (h *Hub) Subscribe() chan string {
	ch := make(chan string, 32)
	h.mu.Lock()
	for _, typ := range h.order {
		select {
		case ch <- h.last[typ]:
		default:
		}
	}
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
	close(ch)
}

// Publish delivers evt to all subscribers and records it as the latest of its
// type. Slow subscribers are skipped rather than blocked on.
func (h *Hub) Publish(typ, evt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.last[typ]; !ok {
		h.order = append(h.order, typ)
	}
	h.last[typ] = evt
	for ch := range h.clients {
		select {
		case ch <- evt:
		default:
			// drop if slow
		}
	}
}
