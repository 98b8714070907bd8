package service

import (
	"context"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	vehicleserrors "github.com/Vinaypenke01/Elite-Cars/internal/vehicles/errors"
	"github.com/Vinaypenke01/Elite-Cars/internal/vehicles/validator"
	"github.com/Vinaypenke01/Elite-Cars/pkg/config"
	apperrors "github.com/Vinaypenke01/Elite-Cars/pkg/errors"
	"github.com/Vinaypenke01/Elite-Cars/pkg/logger"
	"github.com/Vinaypenke01/Elite-Cars/pkg/model"
)

type mockVehicleRepository struct {
	vehicles map[string]*model.Vehicle
	nextID   string
	failWith error
}

func newMockVehicleRepository() *mockVehicleRepository {
	return &mockVehicleRepository{
		vehicles: map[string]*model.Vehicle{},
		nextID:   "65a000000000000000000001",
	}
}

func (m *mockVehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	if m.failWith != nil {
		return m.failWith
	}
	vehicle.ID = m.nextID
	copied := *vehicle
	m.vehicles[vehicle.ID] = &copied
	return nil
}

func (m *mockVehicleRepository) FindByID(ctx context.Context, id string) (*model.Vehicle, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if len(id) != 24 {
		return nil, vehicleserrors.ErrInvalidID
	}
	v, ok := m.vehicles[id]
	if !ok {
		return nil, vehicleserrors.ErrNotFound
	}
	copied := *v
	return &copied, nil
}

func (m *mockVehicleRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Vehicle, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []*model.Vehicle
	for _, v := range m.vehicles {
		copied := *v
		out = append(out, &copied)
	}
	return out, nil
}

func (m *mockVehicleRepository) FindFeatured(ctx context.Context) ([]*model.Vehicle, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []*model.Vehicle
	for _, v := range m.vehicles {
		if v.Featured {
			copied := *v
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockVehicleRepository) Update(ctx context.Context, id string, vehicle *model.Vehicle) (*mongo.UpdateResult, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if _, ok := m.vehicles[id]; !ok {
		return nil, vehicleserrors.ErrNotFound
	}
	copied := *vehicle
	copied.ID = id
	m.vehicles[id] = &copied
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockVehicleRepository) Delete(ctx context.Context, id string) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.vehicles[id]; !ok {
		return vehicleserrors.ErrNotFound
	}
	delete(m.vehicles, id)
	return nil
}

func (m *mockVehicleRepository) Count(ctx context.Context) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	return int64(len(m.vehicles)), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT}),
	}
}

func newTestService(repo *mockVehicleRepository) VehicleService {
	cfg := testConfig()
	return NewVehicleService(repo, validator.NewVehicleValidator(cfg.Log), cfg)
}

func validVehicle() *model.Vehicle {
	return &model.Vehicle{
		Name:        "Ferrari 488 GTB",
		Price:       "$280,000",
		Images:      []string{"https://img.test/1.jpg", "https://img.test/2.jpg", "https://img.test/3.jpg", "https://img.test/4.jpg", "https://img.test/5.jpg"},
		Type:        "Coupe",
		Description: "Twin-turbo V8 mid-engine coupe in showroom condition.",
		Specs: model.VehicleSpecs{
			Power:        "661 HP",
			Speed:        "205 mph",
			Acceleration: "3.0s 0-60",
			Range:        "400 mi",
		},
		Features: []string{"Carbon ceramic brakes", "Premium audio"},
	}
}

func TestCreateThenGetByID(t *testing.T) {
	repo := newMockVehicleRepository()
	svc := newTestService(repo)

	vehicle := validVehicle()
	if err := svc.Create(context.Background(), vehicle); err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	if vehicle.ID == "" {
		t.Fatal("expected store-assigned ID after create")
	}

	got, err := svc.GetByID(context.Background(), vehicle.ID)
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if got.Name != vehicle.Name {
		t.Errorf("expected name %q, got %q", vehicle.Name, got.Name)
	}
}

func TestCreate_ImageCountValidation(t *testing.T) {
	tests := []struct {
		name       string
		imageCount int
		wantSubstr string
	}{
		{"too few images", 4, "at least 5"},
		{"too many images", 11, "at most 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicle := validVehicle()
			vehicle.Images = make([]string, tt.imageCount)
			for i := range vehicle.Images {
				vehicle.Images[i] = "https://img.test/x.jpg"
			}

			err := newTestService(newMockVehicleRepository()).Create(context.Background(), vehicle)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			appErr := apperrors.AsAppError(err)
			if appErr.Code != apperrors.CodeValidation {
				t.Errorf("expected code %s, got %s", apperrors.CodeValidation, appErr.Code)
			}
			detail, _ := appErr.Details["error"].(string)
			if !strings.Contains(detail, tt.wantSubstr) {
				t.Errorf("expected detail to contain %q, got %q", tt.wantSubstr, detail)
			}
		})
	}
}

func TestCreate_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Vehicle)
	}{
		{"name too short", func(v *model.Vehicle) { v.Name = "F" }},
		{"missing price", func(v *model.Vehicle) { v.Price = "" }},
		{"description too short", func(v *model.Vehicle) { v.Description = "Short" }},
		{"missing spec field", func(v *model.Vehicle) { v.Specs.Range = "" }},
		{"non-url image", func(v *model.Vehicle) { v.Images[2] = "not-a-url" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockVehicleRepository()
			vehicle := validVehicle()
			tt.mutate(vehicle)

			err := newTestService(repo).Create(context.Background(), vehicle)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if len(repo.vehicles) != 0 {
				t.Error("invalid vehicle must not reach the repository")
			}
		})
	}
}

func TestCreate_ExplodesSingleFeatureString(t *testing.T) {
	repo := newMockVehicleRepository()
	vehicle := validVehicle()
	vehicle.Features = []string{"Sunroof, Heated seats,  Lane assist"}

	if err := newTestService(repo).Create(context.Background(), vehicle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Sunroof", "Heated seats", "Lane assist"}
	if len(vehicle.Features) != len(want) {
		t.Fatalf("expected %d features, got %v", len(want), vehicle.Features)
	}
	for i, f := range want {
		if vehicle.Features[i] != f {
			t.Errorf("feature %d: expected %q, got %q", i, f, vehicle.Features[i])
		}
	}
}

func TestUpdate_MergesPartialFields(t *testing.T) {
	repo := newMockVehicleRepository()
	svc := newTestService(repo)

	vehicle := validVehicle()
	if err := svc.Create(context.Background(), vehicle); err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	featured := true
	updated, err := svc.Update(context.Background(), vehicle.ID, &model.VehicleUpdate{
		Price:    "$250,000",
		Featured: &featured,
	})
	if err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}

	if updated.Price != "$250,000" {
		t.Errorf("expected updated price, got %q", updated.Price)
	}
	if !updated.Featured {
		t.Error("expected featured flag set")
	}
	if updated.Name != vehicle.Name {
		t.Errorf("untouched field changed: %q", updated.Name)
	}
}

func TestUpdate_MissingVehicle(t *testing.T) {
	svc := newTestService(newMockVehicleRepository())

	_, err := svc.Update(context.Background(), "65a000000000000000000099", &model.VehicleUpdate{Price: "$1"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", apperrors.AsAppError(err).Code)
	}
}

func TestDelete(t *testing.T) {
	repo := newMockVehicleRepository()
	svc := newTestService(repo)

	vehicle := validVehicle()
	if err := svc.Create(context.Background(), vehicle); err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	if err := svc.Delete(context.Background(), vehicle.ID); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), vehicle.ID); err == nil {
		t.Error("expected vehicle to be gone after delete")
	}

	err := svc.Delete(context.Background(), vehicle.ID)
	if apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
		t.Errorf("expected NOT_FOUND on second delete, got %v", err)
	}
}

func TestGetFeatured_FiltersUnfeatured(t *testing.T) {
	repo := newMockVehicleRepository()
	svc := newTestService(repo)

	plain := validVehicle()
	if err := svc.Create(context.Background(), plain); err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	repo.nextID = "65a000000000000000000002"
	featured := validVehicle()
	featured.Name = "Lamborghini Huracan"
	featured.Featured = true
	if err := svc.Create(context.Background(), featured); err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	got, err := svc.GetFeatured(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Lamborghini Huracan" {
		t.Errorf("expected only the featured vehicle, got %+v", got)
	}
}
