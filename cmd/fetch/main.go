package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pterm/pterm"

	"sarkari-engine/internal/config"
	"sarkari-engine/internal/domain"
	"sarkari-engine/internal/fetch"
)

func main() {
	dataDir := flag.String("data-dir", envOr("SARKARI_DATA_DIR", "."), "engine data directory")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall crawl timeout")
	flag.Parse()

	cfgPath, err := config.EnsureUserConfig(*dataDir)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}
	loaded, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", cfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(loaded)
	if !vr.OK() {
		log.Fatalf("config invalid: %v", vr.Errors)
	}

	manifestPath := cfg.Feed.ManifestPath
	if manifestPath == "" {
		manifestPath = filepath.Join("jobs", "job_manifest.json")
	}
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(*dataDir, manifestPath)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	portals := make([]fetch.Portal, 0, len(cfg.Fetch.Portals))
	for _, p := range cfg.Fetch.Portals {
		portals = append(portals, fetch.Portal{Name: p.Name, URL: p.URL})
	}

	pterm.DefaultHeader.Println("Sarkari job fetcher")
	progress, _ := pterm.DefaultProgressbar.WithTotal(len(portals)).WithTitle("Crawling portals").Start()

	scraper := fetch.NewScraper(portals, cfg.Fetch.PerSiteLimit,
		fetch.NewHostLimiter(cfg.Fetch.RatePerHost, cfg.Fetch.Burst))
	scraper.Progress = func(portal string, found int, err error) {
		if err != nil {
			pterm.Warning.Printfln("%s: %v", portal, err)
		} else {
			pterm.Success.Printfln("%s: %d postings", portal, found)
		}
		progress.Increment()
	}

	scraped := scraper.Run(ctx)

	existing, err := fetch.ReadManifest(manifestPath)
	if err != nil {
		pterm.Warning.Printfln("existing manifest unreadable, starting fresh: %v", err)
	}

	merged, added := fetch.Merge(existing.Jobs, scraped)
	kept, expired := fetch.PruneExpired(merged, time.Now(),
		time.Duration(cfg.Fetch.ExpireAfterDays)*24*time.Hour)

	m := domain.Manifest{Jobs: kept, ExpiredJobs: expired}
	if err := fetch.WriteManifest(ctx, manifestPath, m); err != nil {
		pterm.Error.Printfln("manifest write failed: %v", err)
		os.Exit(1)
	}

	pterm.DefaultBasicText.Printfln(
		"done: %d scraped, %d new, %d expired, %d active (manifest=%s)",
		len(scraped), added, expired, len(kept), manifestPath,
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
