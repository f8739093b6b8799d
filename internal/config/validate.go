package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills defaulted fields, trims the portal list, and
// returns a normalized copy plus anything worth telling the user.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	// ---- Defaults ----

	if out.Feed.TimeoutSeconds <= 0 {
		out.Feed.TimeoutSeconds = 10
	}
	if out.Feed.PageSize <= 0 {
		out.Feed.PageSize = 12
	}
	if out.Feed.SearchDebounceMS <= 0 {
		out.Feed.SearchDebounceMS = 300
	}
	if out.Feed.LoadMoreDelayMS < 0 {
		out.Feed.LoadMoreDelayMS = 0
	}
	if out.Fetch.RatePerHost <= 0 {
		out.Fetch.RatePerHost = 1.0
	}
	if out.Fetch.Burst <= 0 {
		out.Fetch.Burst = 2
	}
	if out.Fetch.PerSiteLimit <= 0 {
		out.Fetch.PerSiteLimit = 10
	}
	if out.Fetch.ExpireAfterDays <= 0 {
		out.Fetch.ExpireAfterDays = 30
	}

	// ---- Normalize portal list ----

	seen := map[string]bool{}
	var portals []Portal
	for _, p := range out.Fetch.Portals {
		p.Name = strings.TrimSpace(p.Name)
		p.URL = strings.TrimSpace(p.URL)
		if p.URL == "" {
			continue
		}
		key := strings.ToLower(p.URL)
		if seen[key] {
			continue
		}
		seen[key] = true
		portals = append(portals, p)
	}
	out.Fetch.Portals = portals

	// ---- Validation rules ----

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if strings.TrimSpace(out.Feed.ManifestURL) == "" && strings.TrimSpace(out.Feed.ManifestPath) == "" {
		res.addWarn("feed.manifest_url and feed.manifest_path are both empty; the engine will run on sample data.")
	}
	if out.Feed.TimeoutSeconds > 60 {
		res.addWarn("feed.timeout_seconds is very high (%d); startup blocks on the feed fetch.", out.Feed.TimeoutSeconds)
	}
	if out.Fetch.RatePerHost > 5 {
		res.addWarn("fetch.rate_per_host is %v req/s; portals may block aggressive crawling.", out.Fetch.RatePerHost)
	}
	if len(out.Fetch.Portals) == 0 {
		res.addWarn("fetch.portals is empty; the fetcher has nothing to scrape.")
	}
	if strings.TrimSpace(out.Notify.ChatID) == "" {
		res.addWarn("notify.chat_id is empty; the notifier cannot deliver alerts.")
	}

	return out, res
}
