package cli

import (
	"context"
	"fmt"

	"github.com/irisrec/irisctl/internal/common"
	"github.com/irisrec/irisctl/internal/events"
	"github.com/irisrec/irisctl/internal/ui"
)

// getSimpleText, getPassword and getImageFile are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getImageFile = GetImageFile

// Login prompts for an email and password and authenticates against the
// backend. On success the session is persisted by the auth service and a
// welcome notification is shown. The password byte slice is securely wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Adresse email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.loader.Show("Connexion en cours...")
	resp, err := a.auth.Login(ctx, email, string(password))
	a.loader.Hide()

	if err != nil {
		a.Error(err.Error())
		return err
	}

	a.Success("Connexion réussie !")
	if resp.User != nil {
		fmt.Fprintf(a.out, "Bienvenue, %s %s (%s)\n", resp.User.Name, resp.User.Surname, resp.User.Role)
	}
	return nil
}

// IrisLogin authenticates with an iris image instead of a password. The
// image is validated locally, the analysis pipeline is played for the user,
// then the image goes to the backend for matching.
func (a *App) IrisLogin(ctx context.Context) error {
	name, content, err := getImageFile(a.reader, "Chemin de l'image de l'iris", a.out)
	if err != nil {
		a.Error(err.Error())
		return err
	}
	if !ui.IsValidImageFile(content, a) {
		return common.ErrInvalidImageType
	}

	if err := a.pipeline.Start(ctx, content); err != nil {
		return err
	}

	a.loader.Show("Authentification en cours...")
	resp, err := a.auth.AuthenticateByIris(ctx, name, content)
	a.loader.Hide()

	if err != nil {
		a.Error(err.Error())
		return err
	}

	a.Success("Authentification réussie !")
	if resp.User != nil {
		fmt.Fprintf(a.out, "Bienvenue, %s %s (%s)\n", resp.User.Name, resp.User.Surname, resp.User.Role)
	}
	return nil
}

// WhoAmI prints the active session.
func (a *App) WhoAmI(ctx context.Context) error {
	sess, err := a.store.Current(ctx)
	if err != nil {
		return err
	}
	if sess.Email == "" {
		fmt.Fprintln(a.out, "Aucune session active.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> rôle %s\n", sess.DisplayName, sess.Email, sess.Role)
	return nil
}

// Logout asks for confirmation, clears the stored session and returns to the
// login prompt. Declining keeps the session untouched.
func (a *App) Logout(ctx context.Context) error {
	if err := a.guard.Logout(ctx); err != nil {
		return err
	}
	if !a.store.IsAuthenticated(ctx) {
		a.bus.Publish(events.TopicSessionEnded, nil)
	}
	return nil
}
