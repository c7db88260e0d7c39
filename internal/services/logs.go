package services

import (
	"context"
	"fmt"

	"github.com/irisrec/irisctl/internal/api"
	"github.com/irisrec/irisctl/internal/logging"
	"github.com/irisrec/irisctl/internal/models"
)

// LogService wraps the authentication log endpoints.
type LogService interface {
	All(ctx context.Context) (*models.AuthLogsResponse, error)
	ByUser(ctx context.Context, userID int64) (*models.AuthLogsResponse, error)
}

type logService struct {
	client *api.Client
	log    logging.Logger
}

func NewLogService(client *api.Client, log logging.Logger) LogService {
	return &logService{client: client, log: log}
}

func (l *logService) All(ctx context.Context) (*models.AuthLogsResponse, error) {
	var resp models.AuthLogsResponse
	if err := l.client.Get(ctx, "/auth/logs", &resp); err != nil {
		l.log.Error(ctx, "list auth logs failed", "error", err)
		return nil, err
	}
	return &resp, nil
}

func (l *logService) ByUser(ctx context.Context, userID int64) (*models.AuthLogsResponse, error) {
	var resp models.AuthLogsResponse
	if err := l.client.Get(ctx, fmt.Sprintf("/auth/logs/user/%d", userID), &resp); err != nil {
		l.log.Error(ctx, "list user auth logs failed", "user_id", userID, "error", err)
		return nil, err
	}
	return &resp, nil
}
