package httpserver

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/jobpulse/internal/app"
	"github.com/pscheid92/jobpulse/internal/domain"
	apperrors "github.com/pscheid92/jobpulse/internal/platform/errors"
)

type companyRegisterRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=4"`
	Description string `json:"description" validate:"required"`
	Website     string `json:"website" validate:"omitempty,url"`
	ContactNo   string `json:"contactNo" validate:"required"`
}

func (s *Server) handleCompanyRegister(c echo.Context) error {
	var req companyRegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, company, err := s.app.RegisterCompany(c.Request().Context(), app.RegisterCompanyRequest{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Password:    req.Password,
		Description: req.Description,
		Website:     req.Website,
		ContactNo:   req.ContactNo,
	})
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return apperrors.ConflictError("company already exists with this email")
	}
	if err != nil {
		return apperrors.InternalError("failed to register company", err)
	}

	return writeOK(c, envelope{
		"message": "company registered successfully",
		"token":   token,
		"company": company,
	})
}

func (s *Server) handleCompanyLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, company, err := s.app.LoginCompany(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return apperrors.ValidationError("invalid email or password")
	}
	if err != nil {
		return apperrors.InternalError("failed to log in company", err)
	}

	return writeOK(c, envelope{
		"message": "logged in successfully",
		"token":   token,
		"email":   company.Email,
		"id":      company.ID.Hex(),
	})
}

func (s *Server) handleCompanyProfile(c echo.Context) error {
	identity, err := principalFrom(c)
	if err != nil {
		return err
	}

	company, err := s.app.CompanyProfile(c.Request().Context(), identity.ID)
	if errors.Is(err, domain.ErrCompanyNotFound) {
		return apperrors.NotFoundError("company not found")
	}
	if err != nil {
		return apperrors.InternalError("failed to load company profile", err)
	}

	return writeOK(c, envelope{"company": company})
}
