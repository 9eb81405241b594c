package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo_backend/internals/configs"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
	assert.False(t, CheckPassword("not-a-hash", "anything"))
}

func TestIssueAccessToken(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = prev })

	userID := uuid.New()
	token, expiresAt, err := IssueAccessToken(userID, "admin2026", "admin")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "admin2026", claims["username"])
	assert.Equal(t, "admin", claims["role"])
}

func TestIssueAccessTokenWithoutSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = prev })

	_, _, err := IssueAccessToken(uuid.New(), "admin2026", "admin")
	assert.Error(t, err)
}
