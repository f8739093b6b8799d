package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"sarkari-engine/internal/config"
	"sarkari-engine/internal/fetch"
	"sarkari-engine/internal/notify"
	"sarkari-engine/internal/scheduler"
	"sarkari-engine/internal/secrets"
	"sarkari-engine/internal/store"
)

func main() {
	dataDir := flag.String("data-dir", envOr("SARKARI_DATA_DIR", "."), "engine data directory")
	setToken := flag.String("set-token", "", "store the bot token in the OS keychain and exit")
	watch := flag.Duration("watch", 0, "re-poll the manifest on this interval (0 = run once)")
	flag.Parse()

	// .env is optional; it only matters on machines without a keychain.
	_ = godotenv.Load(filepath.Join(*dataDir, ".env"))

	if *setToken != "" {
		if err := secrets.SetBotToken(*setToken); err != nil {
			log.Fatalf("keychain store failed: %v", err)
		}
		fmt.Println("bot token stored in keychain")
		return
	}

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
	if cfg.Notify.ChatID == "" {
		log.Fatal("notify.chat_id is not configured")
	}

	token, err := secrets.GetBotToken()
	if err != nil {
		log.Fatal(err)
	}

	db, err := store.Open(filepath.Join(*dataDir, "sarkari.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db); err != nil {
		log.Fatal(err)
	}

	manifestPath := cfg.Feed.ManifestPath
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(*dataDir, manifestPath)
	}

	n := &notify.Notifier{
		Client:     notify.NewClient(token, cfg.Notify.ChatID),
		DB:         db,
		BatchPause: time.Duration(cfg.Notify.BatchPauseSeconds) * time.Second,
	}

	run := func(ctx context.Context) error {
		m, err := fetch.ReadManifest(manifestPath)
		if err != nil {
			return err
		}
		sent, err := n.NotifyNew(ctx, m.Jobs)
		if err != nil {
			return err
		}
		log.Printf("[notify] sent=%d total=%d", sent, len(m.Jobs))

		keep := time.Duration(cfg.Fetch.ExpireAfterDays) * 24 * time.Hour
		if pruned, err := store.PruneNotified(ctx, db, keep); err == nil && pruned > 0 {
			log.Printf("[notify] pruned %d stale dedupe rows", pruned)
		}
		return nil
	}

	ctx := context.Background()
	if *watch > 0 {
		scheduler.Every(ctx, *watch, "notify", run)
		return
	}
	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
