package httpserver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/jobpulse/internal/domain"
	"github.com/pscheid92/jobpulse/internal/platform/correlation"
	apperrors "github.com/pscheid92/jobpulse/internal/platform/errors"
)

// principalKey is the echo.Context key the auth gate stores the resolved
// identity under.
const principalKey = "principal"

func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := correlation.WithID(c.Request().Context(), correlation.NewID())
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func ErrorHandlingMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				return err
			}

			structuredErr := apperrors.AsStructuredError(err)
			logError(c, structuredErr)

			if err := c.JSON(structuredErr.HTTPStatus(), structuredErr.ToResponse()); err != nil {
				return fmt.Errorf("failed to write error response: %w", err)
			}
			return nil
		}
	}
}

func logError(c echo.Context, err *apperrors.Error) {
	attrs := []any{
		"error_type", err.Type,
		"message", err.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"status", err.HTTPStatus(),
	}

	for k, v := range err.Context {
		attrs = append(attrs, k, v)
	}

	if identity, ok := c.Get(principalKey).(domain.Identity); ok {
		attrs = append(attrs, "principal_kind", identity.Kind, "principal_id", identity.ID.Hex())
	}

	ctx := c.Request().Context()
	switch err.Type {
	case apperrors.TypeValidation:
		slog.InfoContext(ctx, "Validation error", attrs...)
	case apperrors.TypeNotFound:
		slog.InfoContext(ctx, "Not found", attrs...)
	case apperrors.TypeConflict:
		slog.WarnContext(ctx, "Conflict", attrs...)
	case apperrors.TypeUnauthenticated:
		slog.InfoContext(ctx, "Unauthenticated", attrs...)
	case apperrors.TypeInternal:
		if err.Cause != nil {
			attrs = append(attrs, "cause", err.Cause)
		}
		slog.ErrorContext(ctx, "Internal error", attrs...)
	default:
		slog.ErrorContext(ctx, "Unknown error type", attrs...)
	}
}

// requirePrincipal gates a route behind token authentication for one
// principal kind. The token is read from the configured header, verified,
// matched against the required kind, and the principal is looked up in the
// store so that deleted accounts cannot keep using old tokens.
func (s *Server) requirePrincipal(kind domain.PrincipalKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(s.config.AuthHeader)
			if token == "" {
				s.observeAuthFailure(c, "missing_token")
				return apperrors.UnauthenticatedError("No token, authorization denied")
			}

			identity, err := s.tokens.Verify(token)
			if err != nil {
				s.observeAuthFailure(c, "invalid_token")
				return apperrors.UnauthenticatedError("Token is not valid")
			}

			if identity.Kind != kind {
				s.observeAuthFailure(c, "kind_mismatch")
				return apperrors.UnauthenticatedError("Token is not valid").
					WithField("required_kind", string(kind)).
					WithField("token_kind", string(identity.Kind))
			}

			resolved, err := s.app.ResolvePrincipal(c.Request().Context(), kind, identity.ID)
			if isPrincipalNotFound(err) {
				s.observeAuthFailure(c, "unknown_principal")
				return apperrors.UnauthenticatedError("Token is not valid").
					WithField("principal_id", identity.ID.Hex())
			}
			if err != nil {
				return apperrors.InternalError("failed to resolve principal", err).
					WithField("principal_id", identity.ID.Hex())
			}

			c.Set(principalKey, resolved)
			return next(c)
		}
	}
}

func (s *Server) observeAuthFailure(c echo.Context, reason string) {
	if s.httpMetrics != nil {
		s.httpMetrics.ObserveAuthFailure(c.Path(), reason)
	}
}

func isPrincipalNotFound(err error) bool {
	return errors.Is(err, domain.ErrUserNotFound) ||
		errors.Is(err, domain.ErrStudentNotFound) ||
		errors.Is(err, domain.ErrCompanyNotFound) ||
		errors.Is(err, domain.ErrAdminNotFound)
}

func principalFrom(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(principalKey).(domain.Identity)
	if !ok {
		return domain.Identity{}, apperrors.InternalError("missing principal in context", nil)
	}
	return identity, nil
}
