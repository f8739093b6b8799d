// Package feed loads the job collection exactly once per engine session:
// remote manifest first, then the last cached copy, then the built-in
// samples. The UI is never left empty on first paint.
package feed

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gofrs/flock"

	"sarkari-engine/internal/domain"
	"sarkari-engine/internal/events"
	"sarkari-engine/internal/store"
)

type Loader struct {
	ManifestURL  string
	ManifestPath string
	Timeout      time.Duration
	Client       *http.Client
	DB           *sql.DB      // optional; enables the last-good cache
	Hub          *events.Hub  // optional; loading indicator events
}

// Load fetches the collection, falling back on any failure. Never returns an
// empty collection and never fails; errors are diagnostics only.
func (l *Loader) Load(ctx context.Context) []domain.JobRecord {
	l.publish(events.TypeFeedLoading, map[string]any{"loading": true})
	defer func() {
		l.publish(events.TypeFeedLoaded, map[string]any{"loading": false})
	}()

	m, err := l.fetch(ctx)
	if err == nil {
		jobs := domain.DedupeByID(m.Jobs)
		if len(jobs) < len(m.Jobs) {
			log.Printf("[feed] dropped %d duplicate-id records", len(m.Jobs)-len(jobs))
		}
		if l.DB != nil {
			if cerr := store.CacheManifest(ctx, l.DB, m); cerr != nil {
				log.Printf("[feed] cache write failed: %v", cerr)
			}
		}
		log.Printf("[feed] loaded %d jobs (manifest updated %s)", len(jobs), m.LastUpdated)
		return jobs
	}
	log.Printf("[feed] manifest load failed: %v", err)

	if l.DB != nil {
		if cached, at, cerr := store.CachedManifest(ctx, l.DB); cerr == nil && len(cached.Jobs) > 0 {
			log.Printf("[feed] serving cached manifest from %s (%d jobs)", at.Format(time.RFC3339), len(cached.Jobs))
			return domain.DedupeByID(cached.Jobs)
		}
	}

	log.Printf("[feed] falling back to built-in samples")
	return SampleJobs()
}

func (l *Loader) fetch(ctx context.Context) (domain.Manifest, error) {
	if l.ManifestURL != "" {
		return l.fetchHTTP(ctx)
	}
	if l.ManifestPath != "" {
		return l.readFile(ctx)
	}
	return domain.Manifest{}, errors.New("no manifest source configured")
}

func (l *Loader) fetchHTTP(ctx context.Context) (domain.Manifest, error) {
	timeout := l.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.ManifestURL, nil)
	if err != nil {
		return domain.Manifest{}, err
	}
	req.Header.Set("Accept", "application/json")

	hc := l.Client
	if hc == nil {
		hc = http.DefaultClient
	}
	res, err := hc.Do(req)
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("fetch manifest: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return domain.Manifest{}, fmt.Errorf("manifest status %d", res.StatusCode)
	}
	return decodeManifest(res.Body)
}

// readFile reads the fetcher-maintained manifest under a shared lock so a
// concurrent fetcher run can't hand us a half-written file.
func (l *Loader) readFile(ctx context.Context) (domain.Manifest, error) {
	lk := flock.New(l.ManifestPath + ".lock")
	lockCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if ok, err := lk.TryRLockContext(lockCtx, 100*time.Millisecond); err != nil || !ok {
		return domain.Manifest{}, fmt.Errorf("manifest locked: %v", err)
	}
	defer func() { _ = lk.Unlock() }()

	f, err := os.Open(l.ManifestPath)
	if err != nil {
		return domain.Manifest{}, err
	}
	defer f.Close()
	return decodeManifest(f)
}

func decodeManifest(r io.Reader) (domain.Manifest, error) {
	var m domain.Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return domain.Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	if len(m.Jobs) == 0 {
		return domain.Manifest{}, errors.New("manifest has no jobs")
	}
	return m, nil
}

func (l *Loader) publish(typ string, data any) {
	if l.Hub == nil {
		return
	}
	l.Hub.Publish(typ, events.MakeEvent("", typ, 1, data))
}
