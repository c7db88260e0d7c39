package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/irisrec/irisctl/internal/session"
)

// getStatus renders the prompt status: the logged-in user's email, with the
// role appended for administrators and a warning when the stored token has
// already expired.
func (a *App) getStatus() string {
	sess, err := a.store.Current(context.Background())
	if err != nil || sess.Email == "" {
		return "(non connecté)"
	}
	s := sess.Email
	if sess.Role != "" && sess.Role != "user" {
		s = s + " " + sess.Role
	}
	if sess.Token != "" && session.TokenExpired(sess.Token, time.Now()) {
		s = s + ", session expirée"
	}
	return fmt.Sprintf("(%s)", s)
}

// Root starts the interactive loop on stdin and blocks until exit.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "IrisAuth CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
