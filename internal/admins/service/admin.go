package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	adminserrors "github.com/Vinaypenke01/Elite-Cars/internal/admins/errors"
	"github.com/Vinaypenke01/Elite-Cars/internal/admins/repository"
	"github.com/Vinaypenke01/Elite-Cars/pkg/config"
	apperrors "github.com/Vinaypenke01/Elite-Cars/pkg/errors"
	"github.com/Vinaypenke01/Elite-Cars/pkg/model"
	"github.com/Vinaypenke01/Elite-Cars/pkg/sanitizer"
)

type AdminService interface {
	Upsert(ctx context.Context, profile *model.AdminProfile) error
	GetByUID(ctx context.Context, uid string) (*model.AdminProfile, error)
	// IsAdmin reports whether a uid holds an admin profile. It fails
	// closed: lookup errors read as "not an admin", never as an error
	// the caller might mistake for authorization.
	IsAdmin(ctx context.Context, uid string) bool
}

type adminService struct {
	repo     repository.AdminRepository
	validate *validator.Validate
	cfg      *config.Config
}

func NewAdminService(repo repository.AdminRepository, cfg *config.Config) AdminService {
	return &adminService{
		repo:     repo,
		validate: validator.New(),
		cfg:      cfg,
	}
}

func (s *adminService) Upsert(ctx context.Context, profile *model.AdminProfile) error {
	profile.Email = sanitizer.TrimAndNormalize(profile.Email)
	profile.DisplayName = sanitizer.NormalizeName(profile.DisplayName)
	if profile.Role == "" {
		profile.Role = model.RoleAdmin
	}

	if err := s.validate.Struct(profile); err != nil {
		s.cfg.Log.Warn("Admin profile validation failed", "uid", profile.UID, "error", err)
		return apperrors.Validation("Admin profile validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		s.cfg.Log.Error("Failed to upsert admin profile", "uid", profile.UID, "error", err)
		return apperrors.Internal("Failed to save admin profile", err)
	}

	s.cfg.Log.Info("Admin profile saved", "uid", profile.UID, "role", profile.Role)
	return nil
}

func (s *adminService) GetByUID(ctx context.Context, uid string) (*model.AdminProfile, error) {
	if uid == "" {
		return nil, apperrors.InvalidInput("Admin UID cannot be empty")
	}

	profile, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, adminserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Admin profile", uid)
		}
		return nil, apperrors.Internal("Failed to retrieve admin profile", err)
	}

	return profile, nil
}

func (s *adminService) IsAdmin(ctx context.Context, uid string) bool {
	if uid == "" {
		return false
	}

	_, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		if !errors.Is(err, adminserrors.ErrNotFound) {
			s.cfg.Log.Warn("Admin lookup failed, treating as non-admin", "uid", uid, "error", err)
		}
		return false
	}
	return true
}
