package httpserver

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/jobpulse/internal/domain"
	apperrors "github.com/pscheid92/jobpulse/internal/platform/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createJobRequest struct {
	JobTitle    string `json:"jobTitle" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type applyJobRequest struct {
	Experience string `json:"experience" validate:"required"`
	Skills     string `json:"skills" validate:"required"`
}

func objectIDParam(c echo.Context, name string) (primitive.ObjectID, error) {
	raw := c.Param(name)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperrors.ValidationError("invalid object ID").WithField(name, raw)
	}
	return id, nil
}

func (s *Server) handleCreateJob(c echo.Context) error {
	identity, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := s.app.CreateJob(c.Request().Context(), identity.ID, req.JobTitle, req.Description)
	if errors.Is(err, domain.ErrCompanyNotFound) {
		return apperrors.NotFoundError("company not found")
	}
	if err != nil {
		return apperrors.InternalError("failed to create job", err)
	}

	return writeOK(c, envelope{
		"message": "job created successfully",
		"job":     job,
	})
}

func (s *Server) handleListJobs(c echo.Context) error {
	jobs, err := s.app.ListJobs(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to list jobs", err)
	}

	return writeOK(c, envelope{"jobs": jobs})
}

func (s *Server) handleApplyToJob(c echo.Context) error {
	identity, err := principalFrom(c)
	if err != nil {
		return err
	}

	jobID, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}

	var req applyJobRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	application, err := s.app.ApplyToJob(c.Request().Context(), identity.ID, jobID, req.Experience, req.Skills)
	switch {
	case errors.Is(err, domain.ErrJobNotFound):
		return apperrors.NotFoundError("job not found").WithField("job_id", jobID.Hex())
	case errors.Is(err, domain.ErrAlreadyApplied):
		return apperrors.ConflictError("you have already applied to this job").WithField("job_id", jobID.Hex())
	case err != nil:
		return apperrors.InternalError("failed to apply to job", err)
	}

	return writeOK(c, envelope{
		"message":     "applied to job successfully",
		"application": application,
	})
}

func (s *Server) handleDeleteJob(c echo.Context) error {
	identity, err := principalFrom(c)
	if err != nil {
		return err
	}

	jobID, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}

	err = s.app.DeleteJob(c.Request().Context(), identity.ID, jobID)
	switch {
	case errors.Is(err, domain.ErrJobNotFound):
		return apperrors.NotFoundError("job not found").WithField("job_id", jobID.Hex())
	case errors.Is(err, domain.ErrNotJobOwner):
		return apperrors.ValidationError("job belongs to another company").WithField("job_id", jobID.Hex())
	case err != nil:
		return apperrors.InternalError("failed to delete job", err)
	}

	return writeOK(c, envelope{"message": "job deleted successfully"})
}
