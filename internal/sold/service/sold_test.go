package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/Vinaypenke01/Elite-Cars/pkg/config"
	apperrors "github.com/Vinaypenke01/Elite-Cars/pkg/errors"
	"github.com/Vinaypenke01/Elite-Cars/pkg/logger"
	"github.com/Vinaypenke01/Elite-Cars/pkg/model"
)

type mockSoldRepository struct {
	records  []*model.SoldRecord
	failWith error
}

func (m *mockSoldRepository) FindRecent(ctx context.Context, limit int) ([]*model.SoldRecord, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	sorted := make([]*model.SoldRecord, len(m.records))
	copy(sorted, m.records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].SoldDate.After(sorted[j].SoldDate) })
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func soldRecords() []*model.SoldRecord {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	return []*model.SoldRecord{
		{ID: "1", CarName: "BMW M4", Price: "$92,000", SoldDate: base},
		{ID: "2", CarName: "Audi R8", Price: "$160,000", SoldDate: base.AddDate(0, 0, 3)},
		{ID: "3", CarName: "Porsche 911", Price: "$135,000", SoldDate: base.AddDate(0, 0, 1)},
		{ID: "4", CarName: "Tesla Model S", Price: "$88,000", SoldDate: base.AddDate(0, 0, 2)},
	}
}

func newTestService(repo *mockSoldRepository) SoldService {
	return NewSoldService(repo, &config.Config{
		SoldDisplayLimit: 10,
		Log:              logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT}),
	})
}

func TestGetRecent_LimitAndOrder(t *testing.T) {
	svc := newTestService(&mockSoldRepository{records: soldRecords()})

	records, err := svc.GetRecent(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].CarName != "Audi R8" || records[1].CarName != "Tesla Model S" {
		t.Errorf("expected newest sales first, got %q then %q", records[0].CarName, records[1].CarName)
	}
}

func TestGetRecent_DefaultLimit(t *testing.T) {
	svc := newTestService(&mockSoldRepository{records: soldRecords()})

	records, err := svc.GetRecent(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 4 {
		t.Errorf("expected all 4 records under the default limit, got %d", len(records))
	}
}

func TestGetRecent_RepositoryFailure(t *testing.T) {
	svc := newTestService(&mockSoldRepository{failWith: errors.New("cursor timeout")})

	_, err := svc.GetRecent(context.Background(), 5)
	if apperrors.AsAppError(err).Code != apperrors.CodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %v", err)
	}
}
