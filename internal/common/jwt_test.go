package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogram/internal/config"
)

func testJWTManager(secret string) *JWTManager {
	return NewJWTManager(&config.Config{
		Auth: config.AuthConfig{JWTSecret: secret, TokenTTLHours: 1},
	})
}

func TestJWT_RoundTrip(t *testing.T) {
	m := testJWTManager("test-secret")

	token, err := m.GenerateToken(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "gogram", claims.Issuer)
}

func TestJWT_InvalidToken(t *testing.T) {
	m := testJWTManager("test-secret")

	_, err := m.ValidToken("not.a.token")
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	token, err := testJWTManager("secret-a").GenerateToken(1, "alice")
	require.NoError(t, err)

	_, err = testJWTManager("secret-b").ValidToken(token)
	assert.Error(t, err)
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, CheckPassword("password123", hash))
	assert.Error(t, CheckPassword("wrong", hash))
}
