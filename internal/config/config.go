package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Portal struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Feed struct {
		// ManifestURL is tried first; when empty the engine reads
		// ManifestPath, which the fetcher maintains.
		ManifestURL      string `yaml:"manifest_url"`
		ManifestPath     string `yaml:"manifest_path"`
		TimeoutSeconds   int    `yaml:"timeout_seconds"`
		PageSize         int    `yaml:"page_size"`
		SearchDebounceMS int    `yaml:"search_debounce_ms"`
		LoadMoreDelayMS  int    `yaml:"load_more_delay_ms"`
	} `yaml:"feed"`

	Fetch struct {
		Portals         []Portal `yaml:"portals"`
		RatePerHost     float64  `yaml:"rate_per_host"`
		Burst           int      `yaml:"burst"`
		PerSiteLimit    int      `yaml:"per_site_limit"`
		ExpireAfterDays int      `yaml:"expire_after_days"`
	} `yaml:"fetch"`

	Notify struct {
		ChatID            string `yaml:"chat_id"`
		BatchPauseSeconds int    `yaml:"batch_pause_seconds"`
	} `yaml:"notify"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
