package session

import "context"

// Navigator abstracts the view switches the guards trigger. The CLI app
// implements it by changing its active view; tests use a recorder.
type Navigator interface {
	// GotoLogin navigates to the login view.
	GotoLogin()

	// GotoUserHome navigates to the non-admin landing view.
	GotoUserHome()
}

// Confirmer asks the user a yes/no question. Used before destructive actions
// such as logout.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Guard enforces the authentication and role requirements of a view.
type Guard struct {
	store   Store
	nav     Navigator
	confirm Confirmer
}

func NewGuard(store Store, nav Navigator, confirm Confirmer) *Guard {
	return &Guard{store: store, nav: nav, confirm: confirm}
}

// RequireAuth redirects to the login view when nobody is authenticated.
// Returns whether the caller may proceed.
func (g *Guard) RequireAuth(ctx context.Context) bool {
	if !g.store.IsAuthenticated(ctx) {
		g.nav.GotoLogin()
		return false
	}
	return true
}

// RequireAdmin enforces RequireAuth first, then redirects non-admin users to
// their landing view. Returns whether the caller may proceed.
func (g *Guard) RequireAdmin(ctx context.Context) bool {
	if !g.RequireAuth(ctx) {
		return false
	}
	if !g.store.IsAdmin(ctx) {
		g.nav.GotoUserHome()
		return false
	}
	return true
}

// Logout asks for confirmation, clears all stored session state and
// navigates to the login view. A declined confirmation leaves everything
// untouched.
func (g *Guard) Logout(ctx context.Context) error {
	if !g.confirm.Confirm("Êtes-vous sûr de vouloir vous déconnecter ?") {
		return nil
	}
	if err := g.store.Clear(ctx); err != nil {
		return err
	}
	g.nav.GotoLogin()
	return nil
}
