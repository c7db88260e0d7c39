// Package session persists the authenticated-user identity (email, display
// name, role, bearer token) in the local client database and answers the
// authenticated/admin questions the rest of the client asks.
package session

import (
	"context"

	"github.com/irisrec/irisctl/internal/models"
)

// Storage keys, one per persisted session attribute.
const (
	keyEmail = "userEmail"
	keyName  = "userName"
	keyRole  = "userRole"
	keyToken = "authToken"
)

// Store is the persistent session storage.
//
// Invariants: a stored non-empty email means "authenticated"; a missing role
// reads back as "user". Save never partially applies — either all attributes
// are written or none.
type Store interface {
	// Save persists the session. A missing role is stored as "user"; the
	// token is written only when present.
	Save(ctx context.Context, s models.Session) error

	// Current returns the stored session. A zero session (empty email)
	// means nobody is logged in.
	Current(ctx context.Context) (models.Session, error)

	// Token returns the stored bearer token, or "" when absent.
	Token(ctx context.Context) (string, error)

	// IsAuthenticated reports whether an email is stored.
	IsAuthenticated(ctx context.Context) bool

	// IsAdmin reports whether the stored role equals "admin".
	IsAdmin(ctx context.Context) bool

	// Clear wipes all stored session state.
	Clear(ctx context.Context) error
}
