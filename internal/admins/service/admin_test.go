package service

import (
	"context"
	"errors"
	"testing"

	adminserrors "github.com/Vinaypenke01/Elite-Cars/internal/admins/errors"
	"github.com/Vinaypenke01/Elite-Cars/pkg/config"
	apperrors "github.com/Vinaypenke01/Elite-Cars/pkg/errors"
	"github.com/Vinaypenke01/Elite-Cars/pkg/logger"
	"github.com/Vinaypenke01/Elite-Cars/pkg/model"
)

type mockAdminRepository struct {
	profiles map[string]*model.AdminProfile
	failWith error
}

func newMockAdminRepository() *mockAdminRepository {
	return &mockAdminRepository{profiles: make(map[string]*model.AdminProfile)}
}

func (m *mockAdminRepository) Upsert(ctx context.Context, profile *model.AdminProfile) error {
	if m.failWith != nil {
		return m.failWith
	}
	copied := *profile
	m.profiles[profile.UID] = &copied
	return nil
}

func (m *mockAdminRepository) FindByUID(ctx context.Context, uid string) (*model.AdminProfile, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	profile, ok := m.profiles[uid]
	if !ok {
		return nil, adminserrors.ErrNotFound
	}
	copied := *profile
	return &copied, nil
}

func newTestService(repo *mockAdminRepository) AdminService {
	return NewAdminService(repo, &config.Config{
		Log: logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT}),
	})
}

func TestUpsert_DefaultsRole(t *testing.T) {
	repo := newMockAdminRepository()
	svc := newTestService(repo)

	err := svc.Upsert(context.Background(), &model.AdminProfile{
		UID:   "uid-1",
		Email: "admin@elitecars.test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err := svc.GetByUID(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Role != model.RoleAdmin {
		t.Errorf("expected default role %q, got %q", model.RoleAdmin, profile.Role)
	}
}

func TestUpsert_RejectsBadEmail(t *testing.T) {
	svc := newTestService(newMockAdminRepository())

	err := svc.Upsert(context.Background(), &model.AdminProfile{
		UID:   "uid-1",
		Email: "not-an-email",
	})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeValidation {
		t.Errorf("expected VALIDATION_ERROR, got %s", apperrors.AsAppError(err).Code)
	}
}

func TestIsAdmin(t *testing.T) {
	repo := newMockAdminRepository()
	svc := newTestService(repo)

	if err := svc.Upsert(context.Background(), &model.AdminProfile{
		UID:   "uid-1",
		Email: "admin@elitecars.test",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !svc.IsAdmin(context.Background(), "uid-1") {
		t.Error("expected uid with a profile to be admin")
	}
	if svc.IsAdmin(context.Background(), "uid-2") {
		t.Error("expected uid without a profile to be non-admin")
	}
	if svc.IsAdmin(context.Background(), "") {
		t.Error("expected empty uid to be non-admin")
	}
}

func TestIsAdmin_FailsClosedOnLookupError(t *testing.T) {
	repo := newMockAdminRepository()
	svc := newTestService(repo)

	if err := svc.Upsert(context.Background(), &model.AdminProfile{
		UID:   "uid-1",
		Email: "admin@elitecars.test",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.failWith = errors.New("connection reset")
	if svc.IsAdmin(context.Background(), "uid-1") {
		t.Error("expected lookup failure to read as non-admin")
	}
}

func TestGetByUID_NotFound(t *testing.T) {
	svc := newTestService(newMockAdminRepository())

	_, err := svc.GetByUID(context.Background(), "missing")
	if apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}
