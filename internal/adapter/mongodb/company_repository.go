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

type CompanyRepo struct {
	coll  *mongo.Collection
	clock clockwork.Clock
}

func NewCompanyRepo(db *mongo.Database, clock clockwork.Clock) *CompanyRepo {
	return &CompanyRepo{coll: db.Collection(companiesCollection), clock: clock}
}

func (r *CompanyRepo) Insert(ctx context.Context, company *domain.Company) error {
	now := r.clock.Now().UTC()
	company.CreatedAt = now
	company.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, company)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("failed to insert company: %w", err)
	}

	company.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *CompanyRepo) FindByEmail(ctx context.Context, email string) (*domain.Company, error) {
	var company domain.Company
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&company)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find company by email: %w", err)
	}
	return &company, nil
}

func (r *CompanyRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Company, error) {
	var company domain.Company
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find company by ID: %w", err)
	}
	return &company, nil
}

func (r *CompanyRepo) FindAll(ctx context.Context) ([]domain.Company, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	companies := []domain.Company{}
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, fmt.Errorf("failed to decode companies: %w", err)
	}
	return companies, nil
}

func (r *CompanyRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}
