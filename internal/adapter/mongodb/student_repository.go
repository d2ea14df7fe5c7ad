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

type StudentRepo struct {
	coll  *mongo.Collection
	clock clockwork.Clock
}

func NewStudentRepo(db *mongo.Database, clock clockwork.Clock) *StudentRepo {
	return &StudentRepo{coll: db.Collection(studentsCollection), clock: clock}
}

func (r *StudentRepo) Insert(ctx context.Context, student *domain.Student) error {
	now := r.clock.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, student)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}

	student.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *StudentRepo) FindByEmail(ctx context.Context, email string) (*domain.Student, error) {
	var student domain.Student
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find student by email: %w", err)
	}
	return &student, nil
}

func (r *StudentRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Student, error) {
	var student domain.Student
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find student by ID: %w", err)
	}
	return &student, nil
}

func (r *StudentRepo) FindAll(ctx context.Context) ([]domain.Student, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	students := []domain.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("failed to decode students: %w", err)
	}
	return students, nil
}
