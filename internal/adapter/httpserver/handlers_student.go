package httpserver

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/jobpulse/internal/app"
	"github.com/pscheid92/jobpulse/internal/domain"
	apperrors "github.com/pscheid92/jobpulse/internal/platform/errors"
)

type studentRegisterRequest struct {
	StudentName   string  `json:"studentName" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=4"`
	Qualification string  `json:"qualification" validate:"required"`
	CGPA          float64 `json:"cgpa" validate:"gte=0,lte=10"`
}

func (s *Server) handleStudentRegister(c echo.Context) error {
	var req studentRegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, student, err := s.app.RegisterStudent(c.Request().Context(), app.RegisterStudentRequest{
		StudentName:   req.StudentName,
		Email:         req.Email,
		Password:      req.Password,
		Qualification: req.Qualification,
		CGPA:          req.CGPA,
	})
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return apperrors.ConflictError("student already exists with this email")
	}
	if err != nil {
		return apperrors.InternalError("failed to register student", err)
	}

	return writeOK(c, envelope{
		"message": "student registered successfully",
		"token":   token,
		"student": student,
	})
}

func (s *Server) handleStudentLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, student, err := s.app.LoginStudent(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return apperrors.ValidationError("invalid email or password")
	}
	if err != nil {
		return apperrors.InternalError("failed to log in student", err)
	}

	return writeOK(c, envelope{
		"message": "logged in successfully",
		"token":   token,
		"email":   student.Email,
		"id":      student.ID.Hex(),
	})
}

func (s *Server) handleStudentProfile(c echo.Context) error {
	identity, err := principalFrom(c)
	if err != nil {
		return err
	}

	student, err := s.app.StudentProfile(c.Request().Context(), identity.ID)
	if errors.Is(err, domain.ErrStudentNotFound) {
		return apperrors.NotFoundError("student not found")
	}
	if err != nil {
		return apperrors.InternalError("failed to load student profile", err)
	}

	return writeOK(c, envelope{"student": student})
}

func (s *Server) handleStudentData(c echo.Context) error {
	identity, err := principalFrom(c)
	if err != nil {
		return err
	}

	data, err := s.app.StudentData(c.Request().Context(), identity.ID)
	if errors.Is(err, domain.ErrStudentNotFound) {
		return apperrors.NotFoundError("student not found")
	}
	if err != nil {
		return apperrors.InternalError("failed to load student data", err)
	}

	return writeOK(c, envelope{
		"message":     "student data fetched successfully",
		"allJobs":     data.AllJobs,
		"appliedJobs": data.AppliedJobs,
		"companies":   data.Companies,
	})
}
