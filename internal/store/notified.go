package store

import (
	"context"
	"database/sql"
	"time"
)

// IsNotified reports whether an alert was already sent for jobID.
func IsNotified(ctx context.Context, db *sql.DB, jobID string) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx, `SELECT 1 FROM notified WHERE job_id = ? LIMIT 1;`, jobID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MarkNotified records that an alert went out for jobID.
func MarkNotified(ctx context.Context, db *sql.DB, jobID string) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO notified(job_id, notified_at) VALUES(?,?)
ON CONFLICT(job_id) DO NOTHING;`,
		jobID, time.Now().UTC().Format(time.RFC3339))
	return err
}

// PruneNotified drops dedupe rows older than keep, so the table tracks the
// manifest's own expiry horizon instead of growing forever.
func PruneNotified(ctx context.Context, db *sql.DB, keep time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-keep).Format(time.RFC3339)
	res, err := db.ExecContext(ctx, `DELETE FROM notified WHERE notified_at < ?;`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
