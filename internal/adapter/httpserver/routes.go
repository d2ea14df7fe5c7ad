package httpserver

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pscheid92/jobpulse/internal/adapter/metrics"
	"github.com/pscheid92/jobpulse/internal/domain"
)

func (s *Server) registerRoutes() {
	s.echo.Use(correlationMiddleware)
	s.echo.Use(s.setupRequestLoggerMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(ErrorHandlingMiddleware())

	if s.registry != nil {
		s.httpMetrics = metrics.NewHTTPMetrics(s.registry)
		s.echo.Use(s.httpMetrics.Middleware())
		s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler(s.registry)))
	}

	s.registerHealthRoutes()

	authLimiter := newRateLimiter(s.config.LoginRatePerSecond, s.config.LoginRateBurst)
	api := s.echo.Group("/api/v1")

	user := api.Group("/user")
	user.POST("/register", s.handleUserRegister, authLimiter)
	user.POST("/login", s.handleUserLogin, authLimiter)

	student := api.Group("/student")
	student.POST("/register", s.handleStudentRegister, authLimiter)
	student.POST("/login", s.handleStudentLogin, authLimiter)
	student.GET("/get-profile", s.handleStudentProfile, s.requirePrincipal(domain.KindStudent))
	student.GET("/get-data", s.handleStudentData, s.requirePrincipal(domain.KindStudent))

	company := api.Group("/company")
	company.POST("/register", s.handleCompanyRegister, authLimiter)
	company.POST("/login", s.handleCompanyLogin, authLimiter)
	company.GET("/get-profile", s.handleCompanyProfile, s.requirePrincipal(domain.KindCompany))

	job := api.Group("/job")
	job.POST("/create-job", s.handleCreateJob, s.requirePrincipal(domain.KindCompany))
	job.GET("/get-jobs", s.handleListJobs, s.requirePrincipal(domain.KindCompany))
	job.POST("/apply/:id", s.handleApplyToJob, s.requirePrincipal(domain.KindStudent))
	job.DELETE("/delete-job/:id", s.handleDeleteJob, s.requirePrincipal(domain.KindCompany))

	admin := api.Group("/admin")
	admin.POST("/login", s.handleAdminLogin, authLimiter)
	admin.GET("/auth", s.handleAdminAuth, s.requirePrincipal(domain.KindAdmin))
	admin.GET("/get-data", s.handleAdminData, s.requirePrincipal(domain.KindAdmin))
	admin.DELETE("/delete-company/:id", s.handleAdminDeleteCompany, s.requirePrincipal(domain.KindAdmin))
}

func (s *Server) setupRequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			slog.InfoContext(c.Request().Context(), "Request", attrs...)
			return nil
		},
	})
}
