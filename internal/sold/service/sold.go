package service

import (
	"context"

	"github.com/Vinaypenke01/Elite-Cars/internal/sold/repository"
	"github.com/Vinaypenke01/Elite-Cars/pkg/config"
	apperrors "github.com/Vinaypenke01/Elite-Cars/pkg/errors"
	"github.com/Vinaypenke01/Elite-Cars/pkg/model"
)

type SoldService interface {
	GetRecent(ctx context.Context, limit int) ([]*model.SoldRecord, error)
}

type soldService struct {
	repo repository.SoldRepository
	cfg  *config.Config
}

func NewSoldService(repo repository.SoldRepository, cfg *config.Config) SoldService {
	return &soldService{
		repo: repo,
		cfg:  cfg,
	}
}

// GetRecent lists recently sold vehicles, newest sale first. A
// non-positive limit falls back to the configured display limit.
func (s *soldService) GetRecent(ctx context.Context, limit int) ([]*model.SoldRecord, error) {
	if limit <= 0 {
		limit = s.cfg.SoldDisplayLimit
	}

	records, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		s.cfg.Log.Error("Failed to list sold records", "limit", limit, "error", err)
		return nil, apperrors.Internal("Failed to retrieve sold records", err)
	}

	return records, nil
}
