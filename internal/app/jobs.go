package app

import (
	"context"
	"errors"

	"github.com/pscheid92/jobpulse/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateJob persists a job for the authenticated company and returns it with
// the company reference expanded to its public fields.
func (s *Service) CreateJob(ctx context.Context, companyID primitive.ObjectID, jobTitle, description string) (*domain.JobWithCompany, error) {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	job := &domain.Job{
		JobTitle:    jobTitle,
		Description: description,
		CompanyID:   company.ID,
	}
	if err := s.jobs.Insert(ctx, job); err != nil {
		return nil, err
	}

	return &domain.JobWithCompany{Job: *job, Company: company}, nil
}

func (s *Service) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return s.jobs.FindAll(ctx)
}

// DeleteJob removes a job. Only the owning company may delete it.
func (s *Service) DeleteJob(ctx context.Context, companyID, jobID primitive.ObjectID) error {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.CompanyID != companyID {
		return domain.ErrNotJobOwner
	}
	return s.jobs.Delete(ctx, jobID)
}

// ApplyToJob records one student's application to an existing job. Applying
// twice to the same job fails with ErrAlreadyApplied; the duplicate check
// matches on the requested job ID.
func (s *Service) ApplyToJob(ctx context.Context, studentID, jobID primitive.ObjectID, experience, skills string) (*domain.ApplicationDetail, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	exists, err := s.applications.ExistsByStudentAndJob(ctx, studentID, jobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyApplied
	}

	application := &domain.AppliedJob{
		Experience: experience,
		Skills:     skills,
		JobID:      job.ID,
		CompanyID:  job.CompanyID,
		StudentID:  studentID,
	}
	if err := s.applications.Insert(ctx, application); err != nil {
		return nil, err
	}

	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	company, err := s.companies.FindByID(ctx, job.CompanyID)
	if err != nil && !errors.Is(err, domain.ErrCompanyNotFound) {
		return nil, err
	}

	return &domain.ApplicationDetail{
		AppliedJob: *application,
		Job:        job,
		Company:    company,
		Student:    student,
	}, nil
}

// StudentData is everything a logged-in student sees: the full job board,
// their own applications (references expanded), and all companies.
type StudentData struct {
	AllJobs     []domain.Job               `json:"allJobs"`
	AppliedJobs []domain.ApplicationDetail `json:"appliedJobs"`
	Companies   []domain.Company           `json:"companies"`
}

func (s *Service) StudentData(ctx context.Context, studentID primitive.ObjectID) (*StudentData, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	allJobs, err := s.jobs.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := s.companies.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	applications, err := s.applications.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	jobsByID := make(map[primitive.ObjectID]*domain.Job, len(allJobs))
	for i := range allJobs {
		jobsByID[allJobs[i].ID] = &allJobs[i]
	}
	companiesByID := make(map[primitive.ObjectID]*domain.Company, len(companies))
	for i := range companies {
		companiesByID[companies[i].ID] = &companies[i]
	}

	expanded := make([]domain.ApplicationDetail, 0, len(applications))
	for _, application := range applications {
		// Orphaned references (deleted job or company) stay nil.
		expanded = append(expanded, domain.ApplicationDetail{
			AppliedJob: application,
			Job:        jobsByID[application.JobID],
			Company:    companiesByID[application.CompanyID],
			Student:    student,
		})
	}

	return &StudentData{
		AllJobs:     allJobs,
		AppliedJobs: expanded,
		Companies:   companies,
	}, nil
}
