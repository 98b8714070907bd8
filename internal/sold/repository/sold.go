package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Vinaypenke01/Elite-Cars/pkg/config"
	"github.com/Vinaypenke01/Elite-Cars/pkg/model"
)

const (
	CollectionName = "RecentlySold"
)

type mongoSoldRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

// SoldRepository is read-only; the collection is populated out-of-band
// by the dealership.
type SoldRepository interface {
	FindRecent(ctx context.Context, limit int) ([]*model.SoldRecord, error)
}

func NewMongoSoldRepository(cfg *config.Config) SoldRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSoldRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoSoldRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithTimeout(ctx, time.Until(deadline))
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoSoldRepository) FindRecent(ctx context.Context, limit int) ([]*model.SoldRecord, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "sold_date", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find sold records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*model.SoldRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode sold records: %w", err)
	}

	return records, nil
}
