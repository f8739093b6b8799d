package session

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into one evaluation: each Trigger
// cancels the pending one, so only the last call in a quiet interval fires.
type Debouncer struct {
	mu sync.Mutex
	d  time.Duration
	t  *time.Timer
}

func NewDebouncer(d time.Duration) *Debouncer {
	return &Debouncer{d: d}
}

// Trigger schedules fn after the debounce interval, cancelling any pending
// evaluation. fn runs on a timer goroutine.
func (db *Debouncer) Trigger(fn func()) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.t != nil {
		db.t.Stop()
	}
	db.t = time.AfterFunc(db.d, fn)
}

// Stop cancels any pending evaluation.
func (db *Debouncer) Stop() {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.t != nil {
		db.t.Stop()
		db.t = nil
	}
}
