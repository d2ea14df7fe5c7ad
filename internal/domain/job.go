package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobTitle    string             `bson:"jobTitle" json:"jobTitle"`
	Description string             `bson:"description" json:"description"`
	CompanyID   primitive.ObjectID `bson:"companyId" json:"companyId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AppliedJob is the durable record of one student applying to one job. It
// references all three participants; the (StudentID, JobID) pair is unique.
type AppliedJob struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Experience string             `bson:"experience" json:"experience"`
	Skills     string             `bson:"skills" json:"skills"`
	JobID      primitive.ObjectID `bson:"jobId" json:"jobId"`
	CompanyID  primitive.ObjectID `bson:"companyId" json:"companyId"`
	StudentID  primitive.ObjectID `bson:"studentId" json:"studentId"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// JobWithCompany is a job with its owning company reference expanded to the
// company's public fields.
type JobWithCompany struct {
	Job
	Company *Company `json:"company"`
}

// ApplicationDetail is an application with all three references expanded.
type ApplicationDetail struct {
	AppliedJob
	Job     *Job     `json:"job"`
	Company *Company `json:"company"`
	Student *Student `json:"student"`
}

type JobRepository interface {
	Insert(ctx context.Context, job *Job) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Job, error)
	FindAll(ctx context.Context) ([]Job, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error)
}

type ApplicationRepository interface {
	Insert(ctx context.Context, application *AppliedJob) error
	FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]AppliedJob, error)
	ExistsByStudentAndJob(ctx context.Context, studentID, jobID primitive.ObjectID) (bool, error)
}
