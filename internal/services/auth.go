// Package services contains the domain operations of the irisctl client:
// thin compositions over the API client with session persistence and
// diagnostic logging. Errors are propagated unchanged to the caller — no
// operation retries or recovers locally.
package services

import (
	"context"
	"errors"

	"github.com/irisrec/irisctl/internal/api"
	"github.com/irisrec/irisctl/internal/logging"
	"github.com/irisrec/irisctl/internal/models"
	"github.com/irisrec/irisctl/internal/session"
)

// AuthService groups the two ways of opening a session: credentials and
// iris recognition. Both persist the session on success.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	AuthenticateByIris(ctx context.Context, imageName string, image []byte) (*models.LoginResponse, error)
}

type authService struct {
	client *api.Client
	store  session.Store
	log    logging.Logger
}

func NewAuthService(client *api.Client, store session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

// Login posts the credentials and, on a success flag, persists the session.
// A success=false payload becomes an error carrying the server message.
func (a *authService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var resp models.LoginResponse
	if err := a.client.Post(ctx, "/auth/login", body, &resp); err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		return nil, err
	}

	if !resp.Success {
		err := rejectionError(resp.Message, "Erreur de connexion")
		a.log.Error(ctx, "login rejected", "error", err)
		return nil, err
	}

	if err := a.saveSession(ctx, resp.User); err != nil {
		a.log.Error(ctx, "session save failed", "error", err)
		return nil, err
	}
	return &resp, nil
}

// AuthenticateByIris uploads the iris image and, on a success flag, persists
// the session exactly like Login.
func (a *authService) AuthenticateByIris(ctx context.Context, imageName string, image []byte) (*models.LoginResponse, error) {
	files := []api.FilePart{{Field: "irisImage", Name: imageName, Content: image}}

	var resp models.LoginResponse
	if err := a.client.PostForm(ctx, "/iris/authenticate", nil, files, &resp); err != nil {
		a.log.Error(ctx, "iris authentication failed", "error", err)
		return nil, err
	}

	if !resp.Success {
		err := rejectionError(resp.Message, "Iris non reconnu")
		a.log.Error(ctx, "iris authentication rejected", "error", err)
		return nil, err
	}

	if err := a.saveSession(ctx, resp.User); err != nil {
		a.log.Error(ctx, "session save failed", "error", err)
		return nil, err
	}
	return &resp, nil
}

func (a *authService) saveSession(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("réponse sans utilisateur")
	}
	return a.store.Save(ctx, models.Session{
		Email:       user.Email,
		DisplayName: user.Surname,
		Role:        user.Role,
		Token:       user.Token,
	})
}

// rejectionError turns a domain rejection (success=false payload) into an
// error carrying the server message, or the fallback when none was sent.
func rejectionError(serverMsg, fallback string) error {
	if serverMsg != "" {
		return errors.New(serverMsg)
	}
	return errors.New(fallback)
}
