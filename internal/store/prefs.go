package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

const (
	ThemeKey     = "theme"
	ThemeLight   = "light"
	ThemeDark    = "dark"
	DefaultTheme = ThemeLight
)

var ErrBadTheme = errors.New("theme must be light or dark")

// GetPref reads one preference, returning fallback when unset.
func GetPref(ctx context.Context, db *sql.DB, key, fallback string) (string, error) {
	var v string
	err := db.QueryRowContext(ctx, `SELECT value FROM prefs WHERE key = ?;`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}
	return v, nil
}

// SetPref upserts one preference.
func SetPref(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO prefs(key, value, updated_at) VALUES(?,?,?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at;`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

// GetTheme reads the persisted display theme, defaulting to light.
func GetTheme(ctx context.Context, db *sql.DB) (string, error) {
	return GetPref(ctx, db, ThemeKey, DefaultTheme)
}

// SetTheme persists the display theme; only light and dark are accepted.
func SetTheme(ctx context.Context, db *sql.DB, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrBadTheme
	}
	return SetPref(ctx, db, ThemeKey, theme)
}
