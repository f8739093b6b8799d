package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	got, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK(), "errors: %v", res.Errors)
	assert.Equal(t, 38519, got.App.Port)
	assert.Equal(t, 12, got.Feed.PageSize)
	assert.Equal(t, 300, got.Feed.SearchDebounceMS)
	assert.NotEmpty(t, got.Fetch.Portals)
}

func TestNormalizeFillsDefaults(t *testing.T) {
	var cfg Config
	cfg.App.Port = 8080

	got, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.Equal(t, 10, got.Feed.TimeoutSeconds)
	assert.Equal(t, 12, got.Feed.PageSize)
	assert.Equal(t, 300, got.Feed.SearchDebounceMS)
	assert.Equal(t, 1.0, got.Fetch.RatePerHost)
	assert.Equal(t, 2, got.Fetch.Burst)
	assert.Equal(t, 10, got.Fetch.PerSiteLimit)
	assert.Equal(t, 30, got.Fetch.ExpireAfterDays)
}

func TestNormalizeDedupesPortals(t *testing.T) {
	cfg := Default()
	cfg.Fetch.Portals = []Portal{
		{Name: "a", URL: " https://a.example "},
		{Name: "a again", URL: "HTTPS://A.EXAMPLE"},
		{Name: "no url", URL: "   "},
		{Name: "b", URL: "https://b.example"},
	}

	got, _ := NormalizeAndValidate(cfg)
	require.Len(t, got.Fetch.Portals, 2)
	assert.Equal(t, "https://a.example", got.Fetch.Portals[0].URL)
	assert.Equal(t, "https://b.example", got.Fetch.Portals[1].URL)
}

func TestValidateBadPort(t *testing.T) {
	cfg := Default()
	cfg.App.Port = 0
	_, res := NormalizeAndValidate(cfg)
	assert.False(t, res.OK())

	cfg.App.Port = 70000
	_, res = NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
}

func TestValidateWarnings(t *testing.T) {
	cfg := Default()
	cfg.Feed.ManifestURL = ""
	cfg.Feed.ManifestPath = ""
	cfg.Feed.TimeoutSeconds = 120
	cfg.Fetch.RatePerHost = 50
	cfg.Fetch.Portals = nil
	cfg.Notify.ChatID = ""

	_, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK(), "warnings are not errors")
	assert.Len(t, res.Warnings, 5)
}

func TestEnsureUserConfigFirstRun(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yml"), path)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().App.Port, cfg.App.Port)
	assert.Equal(t, Default().Fetch.Portals, cfg.Fetch.Portals)

	// Second call leaves the existing file alone.
	before, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = EnsureUserConfig(dir)
	require.NoError(t, err)
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	first := Default()
	require.NoError(t, SaveAtomic(path, first))

	second := Default()
	second.App.Port = 9999
	require.NoError(t, SaveAtomic(path, second))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.App.Port)

	bak, err := Load(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, first.App.Port, bak.App.Port)
}

func TestSaveAtomicRefusesInvalid(t *testing.T) {
	var cfg Config // port 0
	err := SaveAtomic(filepath.Join(t.TempDir(), "config.yml"), cfg)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
