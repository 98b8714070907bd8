package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	bookingserrors "github.com/Vinaypenke01/Elite-Cars/internal/bookings/errors"
	"github.com/Vinaypenke01/Elite-Cars/internal/bookings/repository"
	"github.com/Vinaypenke01/Elite-Cars/internal/bookings/validator"
	"github.com/Vinaypenke01/Elite-Cars/pkg/config"
	apperrors "github.com/Vinaypenke01/Elite-Cars/pkg/errors"
	"github.com/Vinaypenke01/Elite-Cars/pkg/kafka"
	"github.com/Vinaypenke01/Elite-Cars/pkg/model"
	"github.com/Vinaypenke01/Elite-Cars/pkg/sanitizer"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	UpdateStatus(ctx context.Context, id string, status string, force bool) (*model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	events    kafka.Publisher // nil when the event bus is disabled
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	events kafka.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		events:    events,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	// Client-supplied status and created_at are discarded, not rejected.
	booking.Status = ""
	s.sanitize(booking)
	if err := s.validate(booking); err != nil {
		return err
	}

	if booking.Phone == "" {
		return apperrors.Validation("Booking validation failed", map[string]any{
			"error": "Phone: must be a valid phone number",
		})
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "car_id", booking.CarID, "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}

	s.publish(ctx, kafka.EventBookingCreated, booking.ID, booking)

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"car_id", booking.CarID,
		"package_type", booking.PackageType,
	)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

// UpdateStatus moves a booking along its lifecycle. Transitions run
// one-directional (pending -> confirmed -> completed, non-terminal ->
// cancelled); force lets an admin override that check.
func (s *bookingService) UpdateStatus(ctx context.Context, id string, status string, force bool) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}
	if !isKnownStatus(status) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Unknown booking status: %s", status))
	}

	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status == status {
		return booking, nil
	}

	if !force && !model.AllowedStatusTransition(booking.Status, status) {
		return nil, apperrors.Conflict(fmt.Sprintf(
			"Booking status cannot move from %s to %s", booking.Status, status,
		))
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to update booking status", "id", id, "status", status, "error", err)
		return nil, apperrors.Internal("Failed to update booking status", err)
	}

	previous := booking.Status
	booking.Status = status

	s.publish(ctx, kafka.EventBookingStatusChanged, booking.ID, map[string]any{
		"booking_id": booking.ID,
		"from":       previous,
		"to":         status,
		"forced":     force,
	})

	s.cfg.Log.Info("Booking status updated", "id", id, "from", previous, "to", status, "forced", force)
	return booking, nil
}

// --- Helpers ---

func (s *bookingService) sanitize(b *model.Booking) {
	b.CarName = sanitizer.NormalizeName(b.CarName)
	b.CustomerName = sanitizer.NormalizeName(b.CustomerName)
	b.Email = sanitizer.TrimAndNormalize(b.Email)
	b.Phone = sanitizer.SanitizePhone(b.Phone)
	b.Message = sanitizer.TrimAndNormalize(b.Message)
}

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

// publish emits a domain event best-effort; a bus failure never fails
// the write that already happened.
func (s *bookingService) publish(ctx context.Context, eventType, key string, payload any) {
	if s.events == nil {
		return
	}

	msg, err := kafka.NewEvent(eventType, key, payload)
	if err != nil {
		s.cfg.Log.Warn("Failed to encode booking event", "event_type", eventType, "key", key, "error", err)
		return
	}
	if err := s.events.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event", "event_type", eventType, "key", key, "error", err)
	}
}

func isKnownStatus(status string) bool {
	switch status {
	case model.StatusPending, model.StatusConfirmed, model.StatusCompleted, model.StatusCancelled:
		return true
	}
	return false
}
