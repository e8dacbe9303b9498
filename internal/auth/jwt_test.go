package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsterfurz/coinestateV2/internal/auth"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret"
	account := "0x1111111111111111111111111111111111111111"

	token, err := auth.GenerateJWT(secret, account, time.Hour)
	require.NoError(t, err)

	claims, err := auth.ParseJWT(secret, token)
	require.NoError(t, err)
	assert.Equal(t, account, claims.Account)
	assert.Equal(t, "coinestate", claims.Issuer)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := auth.GenerateJWT("secret-a", "0x1111111111111111111111111111111111111111", time.Hour)
	require.NoError(t, err)

	_, err = auth.ParseJWT("secret-b", token)
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	token, err := auth.GenerateJWT("secret", "0x1111111111111111111111111111111111111111", -time.Hour)
	require.NoError(t, err)

	_, err = auth.ParseJWT("secret", token)
	assert.Error(t, err)
}
