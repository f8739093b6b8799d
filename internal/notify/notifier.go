package notify

import (
	"context"
	"database/sql"
	"log"
	"time"

	"sarkari-engine/internal/domain"
	"sarkari-engine/internal/store"
)

// Notifier announces postings that haven't been announced yet, using the
// engine database to remember what already went out.
type Notifier struct {
	Client     *Client
	DB         *sql.DB
	BatchPause time.Duration
}

// NotifyNew sends one alert per not-yet-notified posting. Delivery failures
// skip the dedupe mark so the posting is retried on the next run.
func (n *Notifier) NotifyNew(ctx context.Context, jobs []domain.JobRecord) (sent int, err error) {
	for _, j := range jobs {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}

		done, err := store.IsNotified(ctx, n.DB, j.ID)
		if err != nil {
			return sent, err
		}
		if done {
			continue
		}

		if err := n.Client.Send(ctx, FormatJob(j)); err != nil {
			log.Printf("[notify] %s: %v", j.ID, err)
			continue
		}
		if err := store.MarkNotified(ctx, n.DB, j.ID); err != nil {
			return sent, err
		}
		sent++

		if n.BatchPause > 0 {
			select {
			case <-ctx.Done():
				return sent, ctx.Err()
			case <-time.After(n.BatchPause):
			}
		}
	}
	return sent, nil
}
