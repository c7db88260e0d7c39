package services

import (
	"context"

	"github.com/irisrec/irisctl/internal/api"
	"github.com/irisrec/irisctl/internal/logging"
	"github.com/irisrec/irisctl/internal/models"
)

// AdminService wraps the administrator profile endpoints.
type AdminService interface {
	Profile(ctx context.Context) (*models.AdminProfile, error)
	UpdateProfile(ctx context.Context, surname, name string) (*models.AdminProfileUpdate, error)
}

type adminService struct {
	client *api.Client
	log    logging.Logger
}

func NewAdminService(client *api.Client, log logging.Logger) AdminService {
	return &adminService{client: client, log: log}
}

func (a *adminService) Profile(ctx context.Context) (*models.AdminProfile, error) {
	var resp models.AdminProfile
	if err := a.client.Get(ctx, "/admin/profile", &resp); err != nil {
		a.log.Error(ctx, "admin profile failed", "error", err)
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile changes the administrator's display identity. The backend
// answers with a success flag instead of the usual status envelope.
func (a *adminService) UpdateProfile(ctx context.Context, surname, name string) (*models.AdminProfileUpdate, error) {
	body := map[string]string{"nom": surname, "prenom": name}

	var resp models.AdminProfileUpdate
	if err := a.client.Put(ctx, "/admin/profile", body, &resp); err != nil {
		a.log.Error(ctx, "admin profile update failed", "error", err)
		return nil, err
	}
	return &resp, nil
}
