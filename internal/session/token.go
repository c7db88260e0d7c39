package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired inspects a stored bearer token without verifying its
// signature and reports whether its exp claim is in the past. The backend
// remains the authority — this is only an early local check so the CLI can
// suggest re-login before a request is even attempted.
//
// Tokens that do not parse as JWTs, or carry no exp claim, are treated as
// not expired and left for the backend to judge.
func TokenExpired(token string, now time.Time) bool {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
