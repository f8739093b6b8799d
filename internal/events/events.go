package events

import (
	"encoding/json"
	"time"
)

// Event types published on the hub. The UI keys its repaint behavior off
// these, so renames are breaking.
const (
	TypeFeedLoading     = "feed_loading"
	TypeFeedLoaded      = "feed_loaded"
	TypeViewRendered    = "view_rendered"
	TypePageAppended    = "page_appended"
	TypeDetailPresented = "detail_presented"
	TypeDetailDismissed = "detail_dismissed"
	TypeScrollResults   = "scroll_results"
	TypeThemeChanged    = "theme_changed"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
