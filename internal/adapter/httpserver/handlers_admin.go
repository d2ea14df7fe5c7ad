package httpserver

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/jobpulse/internal/domain"
	apperrors "github.com/pscheid92/jobpulse/internal/platform/errors"
)

func (s *Server) handleAdminLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, admin, err := s.app.LoginAdmin(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return apperrors.ValidationError("invalid email or password")
	}
	if err != nil {
		return apperrors.InternalError("failed to log in admin", err)
	}

	return writeOK(c, envelope{
		"message": "logged in successfully",
		"token":   token,
		"email":   admin.Email,
		"id":      admin.ID.Hex(),
	})
}

func (s *Server) handleAdminAuth(c echo.Context) error {
	identity, err := principalFrom(c)
	if err != nil {
		return err
	}

	admin, err := s.app.AdminProfile(c.Request().Context(), identity.ID)
	if errors.Is(err, domain.ErrAdminNotFound) {
		return apperrors.NotFoundError("admin not found")
	}
	if err != nil {
		return apperrors.InternalError("failed to load admin profile", err)
	}

	return writeOK(c, envelope{"admin": admin})
}

func (s *Server) handleAdminData(c echo.Context) error {
	data, err := s.app.AdminData(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to load admin data", err)
	}

	return writeOK(c, envelope{
		"message":   "admin data fetched successfully",
		"students":  data.Students,
		"companies": data.Companies,
		"jobs":      data.Jobs,
	})
}

func (s *Server) handleAdminDeleteCompany(c echo.Context) error {
	companyID, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}

	deletedJobs, err := s.app.DeleteCompany(c.Request().Context(), companyID)
	if errors.Is(err, domain.ErrCompanyNotFound) {
		return apperrors.NotFoundError("company not found").WithField("company_id", companyID.Hex())
	}
	if err != nil {
		return apperrors.InternalError("failed to delete company", err)
	}

	return writeOK(c, envelope{
		"message":     "company and its jobs deleted successfully",
		"deletedJobs": deletedJobs,
	})
}
