package service

import (
	"context"
	"errors"
	"sync"

	vehicleserrors "github.com/Vinaypenke01/Elite-Cars/internal/vehicles/errors"
	"github.com/Vinaypenke01/Elite-Cars/internal/vehicles/repository"
	"github.com/Vinaypenke01/Elite-Cars/internal/vehicles/validator"
	"github.com/Vinaypenke01/Elite-Cars/pkg/config"
	apperrors "github.com/Vinaypenke01/Elite-Cars/pkg/errors"
	"github.com/Vinaypenke01/Elite-Cars/pkg/model"
	"github.com/Vinaypenke01/Elite-Cars/pkg/sanitizer"
)

type VehicleService interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	GetByID(ctx context.Context, id string) (*model.Vehicle, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Vehicle, int64, error)
	GetFeatured(ctx context.Context) ([]*model.Vehicle, error)
	Update(ctx context.Context, id string, updates *model.VehicleUpdate) (*model.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type vehicleService struct {
	repo      repository.VehicleRepository
	validator *validator.VehicleValidator
	cfg       *config.Config
}

func NewVehicleService(
	repo repository.VehicleRepository,
	validator *validator.VehicleValidator,
	cfg *config.Config,
) VehicleService {
	return &vehicleService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *vehicleService) Create(ctx context.Context, vehicle *model.Vehicle) error {
	s.sanitize(vehicle)
	if err := s.validate(vehicle); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, vehicle); err != nil {
		s.cfg.Log.Error("Failed to create vehicle", "name", vehicle.Name, "error", err)
		return apperrors.Internal("Failed to create vehicle", err)
	}

	s.cfg.Log.Info("Vehicle created successfully",
		"id", vehicle.ID,
		"name", vehicle.Name,
		"featured", vehicle.Featured,
	)
	return nil
}

func (s *vehicleService) GetByID(ctx context.Context, id string) (*model.Vehicle, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Vehicle ID cannot be empty")
	}

	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Vehicle", id)
		}
		if errors.Is(err, vehicleserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid vehicle ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve vehicle", err)
	}

	return vehicle, nil
}

func (s *vehicleService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Vehicle, int64, error) {
	var count int64
	var vehicles []*model.Vehicle
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count vehicles", "error", errCount)
			errCount = apperrors.Internal("Failed to count vehicles", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		vehicles, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list vehicles", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve vehicles", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return vehicles, count, nil
}

func (s *vehicleService) GetFeatured(ctx context.Context) ([]*model.Vehicle, error) {
	vehicles, err := s.repo.FindFeatured(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list featured vehicles", "error", err)
		return nil, apperrors.Internal("Failed to retrieve featured vehicles", err)
	}
	return vehicles, nil
}

func (s *vehicleService) Update(ctx context.Context, id string, updates *model.VehicleUpdate) (*model.Vehicle, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Vehicle ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Vehicle", id)
		}
		if errors.Is(err, vehicleserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid vehicle ID format")
		}
		return nil, apperrors.Internal("Failed to check vehicle existence", err)
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Vehicle update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeVehicleUpdates(existing, updates)
	s.sanitize(merged)
	if err := s.validate(merged); err != nil {
		return nil, err
	}

	if _, err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, vehicleserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Vehicle", id)
		}
		s.cfg.Log.Error("Failed to update vehicle", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update vehicle", err)
	}

	s.cfg.Log.Info("Vehicle updated successfully", "id", id)
	return merged, nil
}

func (s *vehicleService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Vehicle ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, vehicleserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Vehicle", id)
		}
		if errors.Is(err, vehicleserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid vehicle ID format")
		}
		s.cfg.Log.Error("Failed to delete vehicle", "id", id, "error", err)
		return apperrors.Internal("Failed to delete vehicle", err)
	}

	s.cfg.Log.Info("Vehicle deleted successfully", "id", id)
	return nil
}

// --- Helpers ---

func (s *vehicleService) sanitize(v *model.Vehicle) {
	v.Name = sanitizer.NormalizeName(v.Name)
	v.Price = sanitizer.TrimAndNormalize(v.Price)
	v.Type = sanitizer.TrimAndNormalize(v.Type)
	v.Description = sanitizer.TrimAndNormalize(v.Description)

	// Feature lists arrive either exploded or as one comma-delimited
	// entry from the admin form.
	if len(v.Features) == 1 {
		v.Features = sanitizer.ExplodeFeatures(v.Features[0])
	} else {
		cleaned := make([]string, 0, len(v.Features))
		for _, f := range v.Features {
			if trimmed := sanitizer.TrimAndNormalize(f); trimmed != "" {
				cleaned = append(cleaned, trimmed)
			}
		}
		v.Features = cleaned
	}
}

func (s *vehicleService) mergeVehicleUpdates(existing *model.Vehicle, updates *model.VehicleUpdate) *model.Vehicle {
	merged := *existing

	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.Price != "" {
		merged.Price = updates.Price
	}
	if updates.Images != nil {
		merged.Images = updates.Images
	}
	if updates.Type != "" {
		merged.Type = updates.Type
	}
	if updates.Description != "" {
		merged.Description = updates.Description
	}
	if updates.Specs != nil {
		merged.Specs = *updates.Specs
	}
	if updates.Features != nil {
		merged.Features = updates.Features
	}
	if updates.Featured != nil {
		merged.Featured = *updates.Featured
	}

	return &merged
}

func (s *vehicleService) validate(vehicle *model.Vehicle) error {
	if err := s.validator.Validate(vehicle); err != nil {
		s.cfg.Log.Warn("Vehicle validation failed", "error", err)
		return apperrors.Validation("Vehicle validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}
