package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	adminserrors "github.com/Vinaypenke01/Elite-Cars/internal/admins/errors"
	"github.com/Vinaypenke01/Elite-Cars/pkg/config"
	"github.com/Vinaypenke01/Elite-Cars/pkg/model"
)

const (
	CollectionName = "Admins"
)

type mongoAdminRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

type AdminRepository interface {
	Upsert(ctx context.Context, profile *model.AdminProfile) error
	FindByUID(ctx context.Context, uid string) (*model.AdminProfile, error)
}

func NewMongoAdminRepository(cfg *config.Config) AdminRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoAdminRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoAdminRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithTimeout(ctx, time.Until(deadline))
	}
	return context.WithTimeout(ctx, timeout)
}

// Upsert merge-writes a profile keyed by uid. Fields absent from the
// write are left as stored; created_at is only set on first insert.
func (r *mongoAdminRepository) Upsert(ctx context.Context, profile *model.AdminProfile) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	set := bson.M{
		"email": profile.Email,
		"role":  profile.Role,
	}
	if profile.DisplayName != "" {
		set["display_name"] = profile.DisplayName
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": time.Now().UTC().Truncate(time.Millisecond)},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": profile.UID}, update, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert admin profile: %w", err)
	}

	return nil
}

func (r *mongoAdminRepository) FindByUID(ctx context.Context, uid string) (*model.AdminProfile, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var profile model.AdminProfile
	err := r.collection.FindOne(ctx, bson.M{"_id": uid}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, adminserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin profile: %w", err)
	}

	return &profile, nil
}
