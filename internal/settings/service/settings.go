package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/Vinaypenke01/Elite-Cars/internal/settings/repository"
	"github.com/Vinaypenke01/Elite-Cars/pkg/config"
	apperrors "github.com/Vinaypenke01/Elite-Cars/pkg/errors"
	"github.com/Vinaypenke01/Elite-Cars/pkg/model"
	"github.com/Vinaypenke01/Elite-Cars/pkg/sanitizer"
)

type SettingsService interface {
	Get(ctx context.Context) (*model.DealershipSettings, error)
	Update(ctx context.Context, updates *model.SettingsUpdate) (*model.DealershipSettings, error)
}

type settingsService struct {
	repo     repository.SettingsRepository
	validate *validator.Validate
	cfg      *config.Config
}

func NewSettingsService(repo repository.SettingsRepository, cfg *config.Config) SettingsService {
	return &settingsService{
		repo:     repo,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// Get returns the dealership contact settings. Before the first admin
// write the singleton does not exist; callers get an empty document
// rather than an error.
func (s *settingsService) Get(ctx context.Context) (*model.DealershipSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &model.DealershipSettings{ID: model.SettingsKey}, nil
		}
		s.cfg.Log.Error("Failed to retrieve settings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve settings", err)
	}

	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, updates *model.SettingsUpdate) (*model.DealershipSettings, error) {
	updates.Address = sanitizer.TrimAndNormalize(updates.Address)
	updates.Phone = sanitizer.TrimAndNormalize(updates.Phone)
	updates.Email = sanitizer.TrimAndNormalize(updates.Email)

	if err := s.validate.Struct(updates); err != nil {
		s.cfg.Log.Warn("Settings update validation failed", "error", err)
		return nil, apperrors.Validation("Settings validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Upsert(ctx, updates); err != nil {
		s.cfg.Log.Error("Failed to update settings", "error", err)
		return nil, apperrors.Internal("Failed to update settings", err)
	}

	s.cfg.Log.Info("Settings updated")
	return s.Get(ctx)
}
