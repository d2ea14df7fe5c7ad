package httpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/jobpulse/internal/app"
	"github.com/pscheid92/jobpulse/internal/domain"
	"github.com/pscheid92/jobpulse/internal/platform/config"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Mock implementations ---

type mockAppService struct {
	registerUserFn     func(ctx context.Context, email, password, userType string) (string, *domain.User, error)
	loginUserFn        func(ctx context.Context, email, password string) (string, *domain.User, error)
	registerStudentFn  func(ctx context.Context, req app.RegisterStudentRequest) (string, *domain.Student, error)
	loginStudentFn     func(ctx context.Context, email, password string) (string, *domain.Student, error)
	studentProfileFn   func(ctx context.Context, id primitive.ObjectID) (*domain.Student, error)
	studentDataFn      func(ctx context.Context, studentID primitive.ObjectID) (*app.StudentData, error)
	registerCompanyFn  func(ctx context.Context, req app.RegisterCompanyRequest) (string, *domain.Company, error)
	loginCompanyFn     func(ctx context.Context, email, password string) (string, *domain.Company, error)
	companyProfileFn   func(ctx context.Context, id primitive.ObjectID) (*domain.Company, error)
	createJobFn        func(ctx context.Context, companyID primitive.ObjectID, jobTitle, description string) (*domain.JobWithCompany, error)
	listJobsFn         func(ctx context.Context) ([]domain.Job, error)
	deleteJobFn        func(ctx context.Context, companyID, jobID primitive.ObjectID) error
	applyToJobFn       func(ctx context.Context, studentID, jobID primitive.ObjectID, experience, skills string) (*domain.ApplicationDetail, error)
	loginAdminFn       func(ctx context.Context, email, password string) (string, *domain.Admin, error)
	adminProfileFn     func(ctx context.Context, id primitive.ObjectID) (*domain.Admin, error)
	adminDataFn        func(ctx context.Context) (*app.AdminData, error)
	deleteCompanyFn    func(ctx context.Context, id primitive.ObjectID) (int64, error)
	resolvePrincipalFn func(ctx context.Context, kind domain.PrincipalKind, id primitive.ObjectID) (domain.Identity, error)
}

var errNotImplemented = errors.New("not implemented")

func (m *mockAppService) RegisterUser(ctx context.Context, email, password, userType string) (string, *domain.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, email, password, userType)
	}
	return "", nil, errNotImplemented
}

func (m *mockAppService) LoginUser(ctx context.Context, email, password string) (string, *domain.User, error) {
	if m.loginUserFn != nil {
		return m.loginUserFn(ctx, email, password)
	}
	return "", nil, errNotImplemented
}

func (m *mockAppService) RegisterStudent(ctx context.Context, req app.RegisterStudentRequest) (string, *domain.Student, error) {
	if m.registerStudentFn != nil {
		return m.registerStudentFn(ctx, req)
	}
	return "", nil, errNotImplemented
}

func (m *mockAppService) LoginStudent(ctx context.Context, email, password string) (string, *domain.Student, error) {
	if m.loginStudentFn != nil {
		return m.loginStudentFn(ctx, email, password)
	}
	return "", nil, errNotImplemented
}

func (m *mockAppService) StudentProfile(ctx context.Context, id primitive.ObjectID) (*domain.Student, error) {
	if m.studentProfileFn != nil {
		return m.studentProfileFn(ctx, id)
	}
	return nil, domain.ErrStudentNotFound
}

func (m *mockAppService) StudentData(ctx context.Context, studentID primitive.ObjectID) (*app.StudentData, error) {
	if m.studentDataFn != nil {
		return m.studentDataFn(ctx, studentID)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) RegisterCompany(ctx context.Context, req app.RegisterCompanyRequest) (string, *domain.Company, error) {
	if m.registerCompanyFn != nil {
		return m.registerCompanyFn(ctx, req)
	}
	return "", nil, errNotImplemented
}

func (m *mockAppService) LoginCompany(ctx context.Context, email, password string) (string, *domain.Company, error) {
	if m.loginCompanyFn != nil {
		return m.loginCompanyFn(ctx, email, password)
	}
	return "", nil, errNotImplemented
}

func (m *mockAppService) CompanyProfile(ctx context.Context, id primitive.ObjectID) (*domain.Company, error) {
	if m.companyProfileFn != nil {
		return m.companyProfileFn(ctx, id)
	}
	return nil, domain.ErrCompanyNotFound
}

func (m *mockAppService) CreateJob(ctx context.Context, companyID primitive.ObjectID, jobTitle, description string) (*domain.JobWithCompany, error) {
	if m.createJobFn != nil {
		return m.createJobFn(ctx, companyID, jobTitle, description)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) ListJobs(ctx context.Context) ([]domain.Job, error) {
	if m.listJobsFn != nil {
		return m.listJobsFn(ctx)
	}
	return nil, nil
}

func (m *mockAppService) DeleteJob(ctx context.Context, companyID, jobID primitive.ObjectID) error {
	if m.deleteJobFn != nil {
		return m.deleteJobFn(ctx, companyID, jobID)
	}
	return errNotImplemented
}

func (m *mockAppService) ApplyToJob(ctx context.Context, studentID, jobID primitive.ObjectID, experience, skills string) (*domain.ApplicationDetail, error) {
	if m.applyToJobFn != nil {
		return m.applyToJobFn(ctx, studentID, jobID, experience, skills)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) LoginAdmin(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	if m.loginAdminFn != nil {
		return m.loginAdminFn(ctx, email, password)
	}
	return "", nil, errNotImplemented
}

func (m *mockAppService) AdminProfile(ctx context.Context, id primitive.ObjectID) (*domain.Admin, error) {
	if m.adminProfileFn != nil {
		return m.adminProfileFn(ctx, id)
	}
	return nil, domain.ErrAdminNotFound
}

func (m *mockAppService) AdminData(ctx context.Context) (*app.AdminData, error) {
	if m.adminDataFn != nil {
		return m.adminDataFn(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) DeleteCompany(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if m.deleteCompanyFn != nil {
		return m.deleteCompanyFn(ctx, id)
	}
	return 0, errNotImplemented
}

func (m *mockAppService) ResolvePrincipal(ctx context.Context, kind domain.PrincipalKind, id primitive.ObjectID) (domain.Identity, error) {
	if m.resolvePrincipalFn != nil {
		return m.resolvePrincipalFn(ctx, kind, id)
	}
	return domain.Identity{Kind: kind, ID: id}, nil
}

type mockTokenVerifier struct {
	verifyFn func(token string) (domain.Identity, error)
}

func (m *mockTokenVerifier) Verify(token string) (domain.Identity, error) {
	if m.verifyFn != nil {
		return m.verifyFn(token)
	}
	return domain.Identity{}, errors.New("invalid token")
}

// --- Test helpers ---

func newTestServer(t *testing.T, app appService, opts ...func(*Server)) *Server {
	t.Helper()

	e := echo.New()
	e.Validator = newRequestValidator()

	srv := &Server{
		echo: e,
		config: &config.Config{
			AuthHeader:         "x-auth-token",
			LoginRatePerSecond: 100,
			LoginRateBurst:     100,
		},
		app:    app,
		tokens: &mockTokenVerifier{},
	}

	for _, opt := range opts {
		opt(srv)
	}

	srv.registerRoutes()

	return srv
}

func withTokenVerifier(tokens tokenVerifier) func(*Server) {
	return func(s *Server) {
		s.tokens = tokens
	}
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = checks
	}
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return ErrorHandlingMiddleware()(handler)(c)
}
