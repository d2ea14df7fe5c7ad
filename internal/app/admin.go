package app

import (
	"context"
	"log/slog"

	"github.com/pscheid92/jobpulse/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminData is the full dataset the admin dashboard works on. No pagination;
// the board is small by design.
type AdminData struct {
	Students  []domain.Student        `json:"students"`
	Companies []domain.Company        `json:"companies"`
	Jobs      []domain.JobWithCompany `json:"jobs"`
}

func (s *Service) AdminData(ctx context.Context) (*AdminData, error) {
	students, err := s.students.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := s.companies.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	companiesByID := make(map[primitive.ObjectID]*domain.Company, len(companies))
	for i := range companies {
		companiesByID[companies[i].ID] = &companies[i]
	}

	expanded := make([]domain.JobWithCompany, 0, len(jobs))
	for _, job := range jobs {
		expanded = append(expanded, domain.JobWithCompany{
			Job:     job,
			Company: companiesByID[job.CompanyID],
		})
	}

	return &AdminData{Students: students, Companies: companies, Jobs: expanded}, nil
}

// DeleteCompany removes a company and cascades to its jobs. The cascade is
// two sequential deletes with no transaction; applications referencing the
// removed jobs are left in place.
func (s *Service) DeleteCompany(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if err := s.companies.Delete(ctx, id); err != nil {
		return 0, err
	}

	deleted, err := s.jobs.DeleteByCompany(ctx, id)
	if err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "Company deleted", "company_id", id.Hex(), "jobs_deleted", deleted)
	return deleted, nil
}
