package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	t.Run("expired token", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{
			"sub": "a@b.co",
			"exp": now.Add(-time.Hour).Unix(),
		})
		require.True(t, TokenExpired(tok, now))
	})

	t.Run("valid token", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{
			"sub": "a@b.co",
			"exp": now.Add(time.Hour).Unix(),
		})
		require.False(t, TokenExpired(tok, now))
	})

	t.Run("no exp claim is left to the backend", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"sub": "a@b.co"})
		require.False(t, TokenExpired(tok, now))
	})

	t.Run("opaque token is left to the backend", func(t *testing.T) {
		require.False(t, TokenExpired("not-a-jwt", now))
	})
}
