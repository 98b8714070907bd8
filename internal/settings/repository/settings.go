package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Vinaypenke01/Elite-Cars/pkg/config"
	"github.com/Vinaypenke01/Elite-Cars/pkg/model"
)

const (
	CollectionName = "Settings"
)

// ErrNotFound is returned before the singleton has ever been written.
var ErrNotFound = errors.New("settings not found")

type mongoSettingsRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

type SettingsRepository interface {
	Get(ctx context.Context) (*model.DealershipSettings, error)
	Upsert(ctx context.Context, updates *model.SettingsUpdate) error
}

func NewMongoSettingsRepository(cfg *config.Config) SettingsRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSettingsRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoSettingsRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithTimeout(ctx, time.Until(deadline))
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoSettingsRepository) Get(ctx context.Context) (*model.DealershipSettings, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var settings model.DealershipSettings
	err := r.collection.FindOne(ctx, bson.M{"_id": model.SettingsKey}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}

	return &settings, nil
}

// Upsert merge-writes into the singleton document. Only the fields
// present in the update touch the stored document; absent fields keep
// their stored values.
func (r *mongoSettingsRepository) Upsert(ctx context.Context, updates *model.SettingsUpdate) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	set := bson.M{}
	if updates.Address != "" {
		set["address"] = updates.Address
	}
	if updates.Phone != "" {
		set["phone"] = updates.Phone
	}
	if updates.Email != "" {
		set["email"] = updates.Email
	}
	if updates.BusinessHours != nil {
		set["business_hours"] = updates.BusinessHours
	}
	if len(set) == 0 {
		return nil
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": model.SettingsKey}, bson.M{"$set": set}, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	return nil
}
