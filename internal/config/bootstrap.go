package config

import (
	"errors"
	"os"
	"path/filepath"
)

// Default returns the shipped configuration: a sane local setup with a small
// portal list the fetcher can start from.
func Default() Config {
	var cfg Config
	cfg.App.Port = 38519
	cfg.App.DataDir = "."
	cfg.Feed.ManifestPath = filepath.Join("jobs", "job_manifest.json")
	cfg.Feed.TimeoutSeconds = 10
	cfg.Feed.PageSize = 12
	cfg.Feed.SearchDebounceMS = 300
	cfg.Feed.LoadMoreDelayMS = 400
	cfg.Fetch.Portals = []Portal{
		{Name: "freejobalert.com", URL: "https://www.freejobalert.com"},
		{Name: "sarkariresult.com", URL: "https://www.sarkariresult.com"},
		{Name: "sarkariexam.com", URL: "https://www.sarkariexam.com"},
		{Name: "freshersworld.com", URL: "https://www.freshersworld.com/government-jobs"},
	}
	cfg.Fetch.RatePerHost = 1.0
	cfg.Fetch.Burst = 2
	cfg.Fetch.PerSiteLimit = 10
	cfg.Fetch.ExpireAfterDays = 30
	cfg.Notify.BatchPauseSeconds = 2
	return cfg
}

// EnsureUserConfig makes sure a config file exists under dataDir, writing the
// defaults on first run, and returns its path.
func EnsureUserConfig(dataDir string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := SaveAtomic(userPath, Default()); err != nil {
		return "", err
	}
	return userPath, nil
}
