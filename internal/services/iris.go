package services

import (
	"context"
	"fmt"

	"github.com/irisrec/irisctl/internal/api"
	"github.com/irisrec/irisctl/internal/logging"
	"github.com/irisrec/irisctl/internal/models"
)

// IrisService wraps the iris record endpoints.
type IrisService interface {
	Records(ctx context.Context) (*models.IrisRecordsResponse, error)
	ByUser(ctx context.Context, userID int64) (*models.IrisRecordsResponse, error)
	Compare(ctx context.Context, name1 string, image1 []byte, name2 string, image2 []byte) (*models.CompareResponse, error)
}

type irisService struct {
	client *api.Client
	log    logging.Logger
}

func NewIrisService(client *api.Client, log logging.Logger) IrisService {
	return &irisService{client: client, log: log}
}

func (i *irisService) Records(ctx context.Context) (*models.IrisRecordsResponse, error) {
	var resp models.IrisRecordsResponse
	if err := i.client.Get(ctx, "/iris/records", &resp); err != nil {
		i.log.Error(ctx, "list iris records failed", "error", err)
		return nil, err
	}
	return &resp, nil
}

func (i *irisService) ByUser(ctx context.Context, userID int64) (*models.IrisRecordsResponse, error) {
	var resp models.IrisRecordsResponse
	if err := i.client.Get(ctx, fmt.Sprintf("/iris/user/%d", userID), &resp); err != nil {
		i.log.Error(ctx, "list user iris records failed", "user_id", userID, "error", err)
		return nil, err
	}
	return &resp, nil
}

// Compare uploads two iris images and returns the backend's comparison
// verdict.
func (i *irisService) Compare(ctx context.Context, name1 string, image1 []byte, name2 string, image2 []byte) (*models.CompareResponse, error) {
	files := []api.FilePart{
		{Field: "irisImage1", Name: name1, Content: image1},
		{Field: "irisImage2", Name: name2, Content: image2},
	}

	var resp models.CompareResponse
	if err := i.client.PostForm(ctx, "/iris/compare", nil, files, &resp); err != nil {
		i.log.Error(ctx, "iris comparison failed", "error", err)
		return nil, err
	}
	return &resp, nil
}
