package app

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/jobpulse/internal/auth"
	"github.com/pscheid92/jobpulse/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// In-memory fakes backing the application-layer tests. They mirror the
// repository contracts including the duplicate-email and not-found behavior.

type memUserRepo struct {
	users []domain.User
}

func (m *memUserRepo) Insert(_ context.Context, user *domain.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	m.users = append(m.users, *user)
	return nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type memStudentRepo struct {
	students []domain.Student
}

func (m *memStudentRepo) Insert(_ context.Context, student *domain.Student) error {
	for _, s := range m.students {
		if s.Email == student.Email {
			return domain.ErrDuplicateEmail
		}
	}
	student.ID = primitive.NewObjectID()
	m.students = append(m.students, *student)
	return nil
}

func (m *memStudentRepo) FindByEmail(_ context.Context, email string) (*domain.Student, error) {
	for i := range m.students {
		if m.students[i].Email == email {
			s := m.students[i]
			return &s, nil
		}
	}
	return nil, domain.ErrStudentNotFound
}

func (m *memStudentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Student, error) {
	for i := range m.students {
		if m.students[i].ID == id {
			s := m.students[i]
			return &s, nil
		}
	}
	return nil, domain.ErrStudentNotFound
}

func (m *memStudentRepo) FindAll(_ context.Context) ([]domain.Student, error) {
	return append([]domain.Student{}, m.students...), nil
}

type memCompanyRepo struct {
	companies []domain.Company
}

func (m *memCompanyRepo) Insert(_ context.Context, company *domain.Company) error {
	for _, c := range m.companies {
		if c.Email == company.Email {
			return domain.ErrDuplicateEmail
		}
	}
	company.ID = primitive.NewObjectID()
	m.companies = append(m.companies, *company)
	return nil
}

func (m *memCompanyRepo) FindByEmail(_ context.Context, email string) (*domain.Company, error) {
	for i := range m.companies {
		if m.companies[i].Email == email {
			c := m.companies[i]
			return &c, nil
		}
	}
	return nil, domain.ErrCompanyNotFound
}

func (m *memCompanyRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Company, error) {
	for i := range m.companies {
		if m.companies[i].ID == id {
			c := m.companies[i]
			return &c, nil
		}
	}
	return nil, domain.ErrCompanyNotFound
}

func (m *memCompanyRepo) FindAll(_ context.Context) ([]domain.Company, error) {
	return append([]domain.Company{}, m.companies...), nil
}

func (m *memCompanyRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range m.companies {
		if m.companies[i].ID == id {
			m.companies = append(m.companies[:i], m.companies[i+1:]...)
			return nil
		}
	}
	return domain.ErrCompanyNotFound
}

type memAdminRepo struct {
	admins []domain.Admin
}

func (m *memAdminRepo) Insert(_ context.Context, admin *domain.Admin) error {
	admin.ID = primitive.NewObjectID()
	m.admins = append(m.admins, *admin)
	return nil
}

func (m *memAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for i := range m.admins {
		if m.admins[i].Email == email {
			a := m.admins[i]
			return &a, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (m *memAdminRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Admin, error) {
	for i := range m.admins {
		if m.admins[i].ID == id {
			a := m.admins[i]
			return &a, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

type memJobRepo struct {
	jobs []domain.Job
}

func (m *memJobRepo) Insert(_ context.Context, job *domain.Job) error {
	job.ID = primitive.NewObjectID()
	m.jobs = append(m.jobs, *job)
	return nil
}

func (m *memJobRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Job, error) {
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			j := m.jobs[i]
			return &j, nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (m *memJobRepo) FindAll(_ context.Context) ([]domain.Job, error) {
	return append([]domain.Job{}, m.jobs...), nil
}

func (m *memJobRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			return nil
		}
	}
	return domain.ErrJobNotFound
}

func (m *memJobRepo) DeleteByCompany(_ context.Context, companyID primitive.ObjectID) (int64, error) {
	var kept []domain.Job
	var deleted int64
	for _, job := range m.jobs {
		if job.CompanyID == companyID {
			deleted++
			continue
		}
		kept = append(kept, job)
	}
	m.jobs = kept
	return deleted, nil
}

type memApplicationRepo struct {
	applications []domain.AppliedJob
}

func (m *memApplicationRepo) Insert(_ context.Context, application *domain.AppliedJob) error {
	for _, a := range m.applications {
		if a.StudentID == application.StudentID && a.JobID == application.JobID {
			return domain.ErrAlreadyApplied
		}
	}
	application.ID = primitive.NewObjectID()
	m.applications = append(m.applications, *application)
	return nil
}

func (m *memApplicationRepo) FindByStudent(_ context.Context, studentID primitive.ObjectID) ([]domain.AppliedJob, error) {
	var result []domain.AppliedJob
	for _, a := range m.applications {
		if a.StudentID == studentID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *memApplicationRepo) ExistsByStudentAndJob(_ context.Context, studentID, jobID primitive.ObjectID) (bool, error) {
	for _, a := range m.applications {
		if a.StudentID == studentID && a.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

// --- Test fixture ---

type fixture struct {
	svc          *Service
	users        *memUserRepo
	students     *memStudentRepo
	companies    *memCompanyRepo
	admins       *memAdminRepo
	jobs         *memJobRepo
	applications *memApplicationRepo
	tokens       *auth.TokenService
	clock        *clockwork.FakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := clockwork.NewFakeClock()
	tokens := auth.NewTokenService("test-secret-at-least-16-chars", 365*24*time.Hour, clock)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)

	f := &fixture{
		users:        &memUserRepo{},
		students:     &memStudentRepo{},
		companies:    &memCompanyRepo{},
		admins:       &memAdminRepo{},
		jobs:         &memJobRepo{},
		applications: &memApplicationRepo{},
		tokens:       tokens,
		clock:        clock,
	}
	f.svc = NewService(f.users, f.students, f.companies, f.admins, f.jobs, f.applications, tokens, hasher)
	return f
}

func (f *fixture) registerStudent(t *testing.T, email string) (*domain.Student, string) {
	t.Helper()
	token, student, err := f.svc.RegisterStudent(context.Background(), RegisterStudentRequest{
		StudentName:   "Alice",
		Email:         email,
		Password:      "pass1",
		Qualification: "BSc",
		CGPA:          3.5,
	})
	if err != nil {
		t.Fatalf("failed to register student: %v", err)
	}
	return student, token
}

func (f *fixture) registerCompany(t *testing.T, email string) (*domain.Company, string) {
	t.Helper()
	token, company, err := f.svc.RegisterCompany(context.Background(), RegisterCompanyRequest{
		CompanyName: "Acme",
		Email:       email,
		Password:    "pass1",
		Description: "widgets",
		Website:     "https://acme.test",
		ContactNo:   "12345678",
	})
	if err != nil {
		t.Fatalf("failed to register company: %v", err)
	}
	return company, token
}
