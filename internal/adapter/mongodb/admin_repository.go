package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/jobpulse/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminRepo struct {
	coll  *mongo.Collection
	clock clockwork.Clock
}

func NewAdminRepo(db *mongo.Database, clock clockwork.Clock) *AdminRepo {
	return &AdminRepo{coll: db.Collection(adminsCollection), clock: clock}
}

func (r *AdminRepo) Insert(ctx context.Context, admin *domain.Admin) error {
	now := r.clock.Now().UTC()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, admin)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}

	admin.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *AdminRepo) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var admin domain.Admin
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}
	return &admin, nil
}

func (r *AdminRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Admin, error) {
	var admin domain.Admin
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin by ID: %w", err)
	}
	return &admin, nil
}
