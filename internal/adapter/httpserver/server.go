package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/jobpulse/internal/adapter/metrics"
	"github.com/pscheid92/jobpulse/internal/app"
	"github.com/pscheid92/jobpulse/internal/domain"
	"github.com/pscheid92/jobpulse/internal/platform/config"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type appService interface {
	RegisterUser(ctx context.Context, email, password, userType string) (string, *domain.User, error)
	LoginUser(ctx context.Context, email, password string) (string, *domain.User, error)

	RegisterStudent(ctx context.Context, req app.RegisterStudentRequest) (string, *domain.Student, error)
	LoginStudent(ctx context.Context, email, password string) (string, *domain.Student, error)
	StudentProfile(ctx context.Context, id primitive.ObjectID) (*domain.Student, error)
	StudentData(ctx context.Context, studentID primitive.ObjectID) (*app.StudentData, error)

	RegisterCompany(ctx context.Context, req app.RegisterCompanyRequest) (string, *domain.Company, error)
	LoginCompany(ctx context.Context, email, password string) (string, *domain.Company, error)
	CompanyProfile(ctx context.Context, id primitive.ObjectID) (*domain.Company, error)

	CreateJob(ctx context.Context, companyID primitive.ObjectID, jobTitle, description string) (*domain.JobWithCompany, error)
	ListJobs(ctx context.Context) ([]domain.Job, error)
	DeleteJob(ctx context.Context, companyID, jobID primitive.ObjectID) error
	ApplyToJob(ctx context.Context, studentID, jobID primitive.ObjectID, experience, skills string) (*domain.ApplicationDetail, error)

	LoginAdmin(ctx context.Context, email, password string) (string, *domain.Admin, error)
	AdminProfile(ctx context.Context, id primitive.ObjectID) (*domain.Admin, error)
	AdminData(ctx context.Context) (*app.AdminData, error)
	DeleteCompany(ctx context.Context, id primitive.ObjectID) (int64, error)

	ResolvePrincipal(ctx context.Context, kind domain.PrincipalKind, id primitive.ObjectID) (domain.Identity, error)
}

// tokenVerifier validates a session token without touching the store.
type tokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	app    appService
	tokens tokenVerifier

	registry     *prometheus.Registry
	httpMetrics  *metrics.HTTPMetrics
	healthChecks []HealthCheck
	startTime    time.Time
}

func NewServer(cfg *config.Config, app appService, tokens tokenVerifier, registry *prometheus.Registry, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          app,
		tokens:       tokens,
		registry:     registry,
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
