package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"sarkari-engine/internal/config"
	"sarkari-engine/internal/events"
	"sarkari-engine/internal/feed"
	"sarkari-engine/internal/httpapi"
	"sarkari-engine/internal/render"
	"sarkari-engine/internal/session"
	"sarkari-engine/internal/store"
)

func main() {
	// Engine data dir: env wins, else local folder.
	dataDir := os.Getenv("SARKARI_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	cfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}
	loaded, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", cfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(loaded)
	if !vr.OK() {
		log.Fatalf("config invalid (%s): %v", cfgPath, vr.Errors)
	}
	for _, wmsg := range vr.Warnings {
		log.Printf("level=warn msg=%q", wmsg)
	}

	dbPath := filepath.Join(dataDir, "sarkari.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := store.Migrate(db); err != nil {
		log.Fatal(err)
	}

	hub := events.NewHub()

	// The feed is pulled exactly once per session; failures degrade to the
	// cached manifest and then the built-in samples.
	loader := &feed.Loader{
		ManifestURL:  cfg.Feed.ManifestURL,
		ManifestPath: manifestPath(dataDir, cfg),
		Timeout:      time.Duration(cfg.Feed.TimeoutSeconds) * time.Second,
		DB:           db,
		Hub:          hub,
	}
	jobs := loader.Load(context.Background())

	renderer := render.NewHTMLRenderer(hub)
	ctl := session.NewController(
		jobs,
		cfg.Feed.PageSize,
		time.Duration(cfg.Feed.SearchDebounceMS)*time.Millisecond,
		time.Duration(cfg.Feed.LoadMoreDelayMS)*time.Millisecond,
		renderer,
	)
	ctl.Init()

	handler := httpapi.Routes(httpapi.Handlers{
		Page:       httpapi.PageHandler{DB: db, Jobs: ctl.Jobs},
		Jobs:       httpapi.JobsHandler{Jobs: ctl.Jobs, PageSize: cfg.Feed.PageSize},
		Categories: httpapi.CategoriesHandler{Jobs: ctl.Jobs},
		Session:    httpapi.SessionHandler{Ctl: ctl},
		Prefs:      httpapi.PrefsHandler{DB: db, Hub: hub},
		Fragments:  httpapi.FragmentsHandler{Renderer: renderer},
		Events:     httpapi.EventsHandler{Hub: hub},
	})

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (db=%s, jobs=%d)", addr, dbPath, len(jobs))

	srv := &http.Server{
		Handler: httpapi.Chain(handler,
			httpapi.RequestID,
			httpapi.AccessLog,
			httpapi.Recover,
			httpapi.Cors,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}

func manifestPath(dataDir string, cfg config.Config) string {
	p := cfg.Feed.ManifestPath
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dataDir, p)
}
