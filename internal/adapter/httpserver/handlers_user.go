package httpserver

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/jobpulse/internal/domain"
	apperrors "github.com/pscheid92/jobpulse/internal/platform/errors"
)

type userRegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Type     string `json:"type" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) handleUserRegister(c echo.Context) error {
	var req userRegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, _, err := s.app.RegisterUser(c.Request().Context(), req.Email, req.Password, req.Type)
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return apperrors.ConflictError("user already exists with this email")
	}
	if err != nil {
		return apperrors.InternalError("failed to register user", err)
	}

	return writeOK(c, envelope{
		"message": "user registered successfully",
		"token":   token,
	})
}

func (s *Server) handleUserLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := s.app.LoginUser(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return apperrors.ValidationError("invalid email or password")
	}
	if err != nil {
		return apperrors.InternalError("failed to log in user", err)
	}

	return writeOK(c, envelope{
		"message": "logged in successfully",
		"token":   token,
		"email":   user.Email,
		"id":      user.ID.Hex(),
	})
}
