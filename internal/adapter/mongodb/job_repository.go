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

type JobRepo struct {
	coll  *mongo.Collection
	clock clockwork.Clock
}

func NewJobRepo(db *mongo.Database, clock clockwork.Clock) *JobRepo {
	return &JobRepo{coll: db.Collection(jobsCollection), clock: clock}
}

func (r *JobRepo) Insert(ctx context.Context, job *domain.Job) error {
	now := r.clock.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, job)
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}

	job.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *JobRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Job, error) {
	var job domain.Job
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find job by ID: %w", err)
	}
	return &job, nil
}

func (r *JobRepo) FindAll(ctx context.Context) ([]domain.Job, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	jobs := []domain.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode jobs: %w", err)
	}
	return jobs, nil
}

func (r *JobRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// DeleteByCompany removes every job owned by the given company and returns
// how many were removed. Used by the best-effort cascade on company deletion.
func (r *JobRepo) DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"companyId": companyID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete company jobs: %w", err)
	}
	return res.DeletedCount, nil
}
