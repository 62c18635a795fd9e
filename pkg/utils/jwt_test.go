package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:             "test-secret",
		AccessExpiryHours:  1,
		RefreshExpiryHours: 24,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, err := GenerateToken(cfg, userID, "jane@example.com", "customer", TokenTypeAccess)
	require.NoError(t, err)

	claims, err := ParseToken(cfg, token)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateToken(cfg, uuid.New(), "jane@example.com", "customer", TokenTypeAccess)
	require.NoError(t, err)

	other := cfg
	other.Secret = "another-secret"
	_, err = ParseToken(other, token)
	assert.Error(t, err)
}

func TestRefreshTokenCarriesItsType(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateToken(cfg, uuid.New(), "jane@example.com", "customer", TokenTypeRefresh)
	require.NoError(t, err)

	claims, err := ParseToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}
