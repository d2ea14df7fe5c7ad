package mongodb

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/jobpulse/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ApplicationRepo struct {
	coll  *mongo.Collection
	clock clockwork.Clock
}

func NewApplicationRepo(db *mongo.Database, clock clockwork.Clock) *ApplicationRepo {
	return &ApplicationRepo{coll: db.Collection(applicationsCollection), clock: clock}
}

func (r *ApplicationRepo) Insert(ctx context.Context, application *domain.AppliedJob) error {
	now := r.clock.Now().UTC()
	application.CreatedAt = now
	application.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, application)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrAlreadyApplied
	}
	if err != nil {
		return fmt.Errorf("failed to insert application: %w", err)
	}

	application.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ApplicationRepo) FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]domain.AppliedJob, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"studentId": studentID})
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	applications := []domain.AppliedJob{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, fmt.Errorf("failed to decode applications: %w", err)
	}
	return applications, nil
}

// ExistsByStudentAndJob checks for an application matching both the student
// and the job. The match is on the requested job ID itself, so a repeated
// application is detected regardless of the student's other applications.
func (r *ApplicationRepo) ExistsByStudentAndJob(ctx context.Context, studentID, jobID primitive.ObjectID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"studentId": studentID, "jobId": jobID})
	if err != nil {
		return false, fmt.Errorf("failed to count applications: %w", err)
	}
	return count > 0, nil
}
