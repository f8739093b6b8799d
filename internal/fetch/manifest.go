package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"sarkari-engine/internal/domain"
)

// ReadManifest loads an existing manifest; a missing file is an empty
// manifest, not an error.
func ReadManifest(path string) (domain.Manifest, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Manifest{}, nil
	}
	if err != nil {
		return domain.Manifest{}, err
	}
	var m domain.Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return domain.Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}

// Merge folds newly scraped postings into the existing collection. Identity
// is the posting URL: a URL already present keeps its existing record.
func Merge(existing, scraped []domain.JobRecord) (merged []domain.JobRecord, added int) {
	seenURL := make(map[string]bool, len(existing))
	for _, j := range existing {
		seenURL[j.URL] = true
	}
	merged = append(merged, existing...)
	for _, j := range scraped {
		if seenURL[j.URL] {
			continue
		}
		seenURL[j.URL] = true
		merged = append(merged, j)
		added++
	}
	return merged, added
}

// PruneExpired drops postings whose deadline has passed, and postings
// scraped more than maxAge ago. Unparseable deadlines never expire a record
// on their own.
func PruneExpired(jobs []domain.JobRecord, now time.Time, maxAge time.Duration) (kept []domain.JobRecord, expired int) {
	for _, j := range jobs {
		if t, ok := domain.ParseDate(j.LastDate()); ok && t.Before(now) {
			expired++
			continue
		}
		if at, err := time.Parse(time.RFC3339, j.ScrapedAt); err == nil && now.Sub(at) > maxAge {
			expired++
			continue
		}
		kept = append(kept, j)
	}
	return kept, expired
}

// WriteManifest writes the manifest atomically under an exclusive file lock,
// so the engine never reads a half-written feed.
func WriteManifest(ctx context.Context, path string, m domain.Manifest) error {
	m.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	m.TotalJobs = len(m.Jobs)
	m.ActiveJobs = len(m.Jobs)

	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	lk := flock.New(path + ".lock")
	lockCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if ok, err := lk.TryLockContext(lockCtx, 100*time.Millisecond); err != nil || !ok {
		return fmt.Errorf("manifest locked: %v", err)
	}
	defer func() { _ = lk.Unlock() }()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
