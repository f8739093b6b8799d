package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"sarkari-engine/internal/domain"
)

var ErrNoCachedManifest = errors.New("no cached manifest")

// CacheManifest keeps the last successfully fetched manifest so a later
// session can start from real data when the feed is unreachable.
func CacheManifest(ctx context.Context, db *sql.DB, m domain.Manifest) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
INSERT INTO manifest_cache(id, payload, fetched_at) VALUES(1,?,?)
ON CONFLICT(id) DO UPDATE SET payload=excluded.payload, fetched_at=excluded.fetched_at;`,
		string(b), time.Now().UTC().Format(time.RFC3339))
	return err
}

// CachedManifest returns the last cached manifest and when it was fetched.
func CachedManifest(ctx context.Context, db *sql.DB) (domain.Manifest, time.Time, error) {
	var payload, fetchedAt string
	err := db.QueryRowContext(ctx, `SELECT payload, fetched_at FROM manifest_cache WHERE id = 1;`).
		Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Manifest{}, time.Time{}, ErrNoCachedManifest
	}
	if err != nil {
		return domain.Manifest{}, time.Time{}, err
	}

	var m domain.Manifest
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return domain.Manifest{}, time.Time{}, err
	}
	at, _ := time.Parse(time.RFC3339, fetchedAt)
	return m, at, nil
}
