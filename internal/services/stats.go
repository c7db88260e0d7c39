package services

import (
	"context"
	"fmt"

	"github.com/irisrec/irisctl/internal/api"
	"github.com/irisrec/irisctl/internal/logging"
	"github.com/irisrec/irisctl/internal/models"
)

// StatsService wraps the dashboard statistics endpoints.
type StatsService interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
	ForUser(ctx context.Context, userID int64) (*models.UserStats, error)
}

type statsService struct {
	client *api.Client
	log    logging.Logger
}

func NewStatsService(client *api.Client, log logging.Logger) StatsService {
	return &statsService{client: client, log: log}
}

func (s *statsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	var resp models.DashboardStats
	if err := s.client.Get(ctx, "/stats/dashboard", &resp); err != nil {
		s.log.Error(ctx, "dashboard stats failed", "error", err)
		return nil, err
	}
	return &resp, nil
}

func (s *statsService) ForUser(ctx context.Context, userID int64) (*models.UserStats, error) {
	var resp models.UserStats
	if err := s.client.Get(ctx, fmt.Sprintf("/stats/user/%d", userID), &resp); err != nil {
		s.log.Error(ctx, "user stats failed", "user_id", userID, "error", err)
		return nil, err
	}
	return &resp, nil
}
