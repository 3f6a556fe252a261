// audit/service.go
package audit

import (
	"context"
	"time"
)

type Service interface {
	LogAction(ctx context.Context, entry Entry) error
	QueryLogs(ctx context.Context, from, to time.Time, userID string, assetID int64) ([]Entry, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAction(ctx context.Context, entry Entry) error {
	return s.repo.LogAction(ctx, entry)
}

func (s *service) QueryLogs(ctx context.Context, from, to time.Time, userID string, assetID int64) ([]Entry, error) {
	return s.repo.QueryLogs(ctx, from, to, userID, assetID)
}
