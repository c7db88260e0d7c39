package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/irisrec/irisctl/internal/api"
	"github.com/irisrec/irisctl/internal/common"
	"github.com/irisrec/irisctl/internal/logging"
	"github.com/irisrec/irisctl/internal/models"
)

// UserService wraps the user administration endpoints.
type UserService interface {
	All(ctx context.Context) (*models.UsersResponse, error)
	ByID(ctx context.Context, id int64) (*models.UserResponse, error)
	CheckEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id int64, user models.User) (*models.UserResponse, error)
	Delete(ctx context.Context, id int64) (*models.StatusResponse, error)
	Enroll(ctx context.Context, draft models.EnrollmentDraft, imageName string, image []byte) (*models.EnrollResponse, error)
}

type userService struct {
	client *api.Client
	log    logging.Logger
}

func NewUserService(client *api.Client, log logging.Logger) UserService {
	return &userService{client: client, log: log}
}

func (u *userService) All(ctx context.Context) (*models.UsersResponse, error) {
	var resp models.UsersResponse
	if err := u.client.Get(ctx, "/users", &resp); err != nil {
		u.log.Error(ctx, "list users failed", "error", err)
		return nil, err
	}
	return &resp, nil
}

func (u *userService) ByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	var resp models.UserResponse
	if err := u.client.Get(ctx, fmt.Sprintf("/users/%d", id), &resp); err != nil {
		u.log.Error(ctx, "get user failed", "id", id, "error", err)
		return nil, err
	}
	return &resp, nil
}

// CheckEmail asks the backend whether the email is already registered.
func (u *userService) CheckEmail(ctx context.Context, email string) (bool, error) {
	endpoint := "/users/check-email?email=" + url.QueryEscape(email)

	var resp models.EmailCheckResponse
	if err := u.client.Get(ctx, endpoint, &resp); err != nil {
		u.log.Error(ctx, "email check failed", "error", err)
		return false, err
	}
	return resp.Exists, nil
}

func (u *userService) Update(ctx context.Context, id int64, user models.User) (*models.UserResponse, error) {
	var resp models.UserResponse
	if err := u.client.Put(ctx, fmt.Sprintf("/users/%d", id), user, &resp); err != nil {
		u.log.Error(ctx, "update user failed", "id", id, "error", err)
		return nil, err
	}
	return &resp, nil
}

func (u *userService) Delete(ctx context.Context, id int64) (*models.StatusResponse, error) {
	var resp models.StatusResponse
	if err := u.client.Delete(ctx, fmt.Sprintf("/users/%d", id), &resp); err != nil {
		u.log.Error(ctx, "delete user failed", "id", id, "error", err)
		return nil, err
	}
	return &resp, nil
}

// Enroll registers a new user together with an iris image. The payload is
// returned as-is: callers inspect the status field themselves (the wizard
// treats anything but "success" as a failure at its capture step).
func (u *userService) Enroll(ctx context.Context, draft models.EnrollmentDraft, imageName string, image []byte) (*models.EnrollResponse, error) {
	role := draft.Role
	if role == "" {
		role = common.RoleUser
	}

	fields := map[string]string{
		"nom":    draft.Surname,
		"prenom": draft.Name,
		"email":  draft.Email,
		"role":   role,
	}
	if draft.Password != "" {
		fields["motDePasse"] = draft.Password
	}

	files := []api.FilePart{{Field: "irisImage", Name: imageName, Content: image}}

	var resp models.EnrollResponse
	if err := u.client.PostForm(ctx, "/iris/enroll", fields, files, &resp); err != nil {
		u.log.Error(ctx, "enrollment failed", "email", draft.Email, "error", err)
		return nil, err
	}
	return &resp, nil
}
