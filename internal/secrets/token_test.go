package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestTokenKeychainRoundtrip(t *testing.T) {
	keyring.MockInit()
	t.Setenv(TokenEnv, "")

	assert.Error(t, SetBotToken("   "))

	require.NoError(t, SetBotToken("123:abc"))
	tok, err := GetBotToken()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", tok)

	require.NoError(t, DeleteBotToken())
	_, err = GetBotToken()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestTokenEnvFallback(t *testing.T) {
	keyring.MockInit() // empty keychain
	t.Setenv(TokenEnv, "  456:def  ")

	tok, err := GetBotToken()
	require.NoError(t, err)
	assert.Equal(t, "456:def", tok)
}

func TestTokenKeychainWinsOverEnv(t *testing.T) {
	keyring.MockInit()
	t.Setenv(TokenEnv, "env-token")
	require.NoError(t, SetBotToken("chain-token"))

	tok, err := GetBotToken()
	require.NoError(t, err)
	assert.Equal(t, "chain-token", tok)
}
