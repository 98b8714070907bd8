package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	autherrors "github.com/Vinaypenke01/Elite-Cars/internal/auth/errors"
	"github.com/Vinaypenke01/Elite-Cars/pkg/config"
	"github.com/Vinaypenke01/Elite-Cars/pkg/model"
)

const (
	CollectionName = "AdminUsers"
)

type mongoCredentialRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

type CredentialRepository interface {
	Create(ctx context.Context, user *model.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	FindByUID(ctx context.Context, uid string) (*model.AdminUser, error)
	MarkVerified(ctx context.Context, uid string) error
}

func NewMongoCredentialRepository(cfg *config.Config) CredentialRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoCredentialRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoCredentialRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithTimeout(ctx, time.Until(deadline))
	}
	return context.WithTimeout(ctx, timeout)
}

// Create inserts a credential record. Email uniqueness is enforced by
// the unique index; a duplicate surfaces as ErrEmailTaken.
func (r *mongoCredentialRepository) Create(ctx context.Context, user *model.AdminUser) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return autherrors.ErrEmailTaken
		}
		return fmt.Errorf("failed to create credential: %w", err)
	}

	return nil
}

func (r *mongoCredentialRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	email = strings.ToLower(strings.TrimSpace(email))

	var user model.AdminUser
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, autherrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find credential by email: %w", err)
	}

	return &user, nil
}

func (r *mongoCredentialRepository) FindByUID(ctx context.Context, uid string) (*model.AdminUser, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var user model.AdminUser
	err := r.collection.FindOne(ctx, bson.M{"_id": uid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, autherrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find credential by uid: %w", err)
	}

	return &user, nil
}

func (r *mongoCredentialRepository) MarkVerified(ctx context.Context, uid string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": uid},
		bson.M{"$set": bson.M{"verified": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark credential verified: %w", err)
	}

	if result.MatchedCount == 0 {
		return autherrors.ErrNotFound
	}

	return nil
}
