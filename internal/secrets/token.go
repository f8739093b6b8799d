// Package secrets keeps the Telegram bot token out of config files: OS
// keychain first, environment as a fallback for headless machines.
package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	KeyringService = "sarkari"
	KeyringAccount = "telegram-bot-token"
	TokenEnv       = "SARKARI_BOT_TOKEN"
)

var ErrNoToken = errors.New("bot token not found (set it in the keychain or via " + TokenEnv + ")")

// GetBotToken resolves the bot token: keychain first, then environment.
func GetBotToken() (string, error) {
	if tok, err := keyring.Get(KeyringService, KeyringAccount); err == nil && strings.TrimSpace(tok) != "" {
		return tok, nil
	}
	if tok := strings.TrimSpace(os.Getenv(TokenEnv)); tok != "" {
		return tok, nil
	}
	return "", ErrNoToken
}

// SetBotToken stores the token in the OS keychain.
func SetBotToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, KeyringAccount, token)
}

// DeleteBotToken removes the token from the OS keychain.
func DeleteBotToken() error {
	return keyring.Delete(KeyringService, KeyringAccount)
}
