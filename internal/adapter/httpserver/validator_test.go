package httpserver

import (
	"testing"

	apperrors "github.com/pscheid92/jobpulse/internal/platform/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidator_UsesJSONFieldNames(t *testing.T) {
	v := newRequestValidator()

	err := v.Validate(&userRegisterRequest{Password: "pass1", Type: "student"})
	require.Error(t, err)

	structured := apperrors.AsStructuredError(err)
	assert.Equal(t, apperrors.TypeValidation, structured.Type)
	assert.Equal(t, "email is required", structured.Message)
}

func TestRequestValidator_EmailFormat(t *testing.T) {
	v := newRequestValidator()

	err := v.Validate(&userRegisterRequest{Email: "not-an-email", Password: "pass1", Type: "student"})
	require.Error(t, err)

	structured := apperrors.AsStructuredError(err)
	assert.Equal(t, "email must be a valid email address", structured.Message)
}

func TestRequestValidator_MinLength(t *testing.T) {
	v := newRequestValidator()

	err := v.Validate(&userRegisterRequest{Email: "a@x.com", Password: "abc", Type: "student"})
	require.Error(t, err)

	structured := apperrors.AsStructuredError(err)
	assert.Equal(t, "password must be at least 4 characters", structured.Message)
}

func TestRequestValidator_Valid(t *testing.T) {
	v := newRequestValidator()

	err := v.Validate(&userRegisterRequest{Email: "a@x.com", Password: "pass1", Type: "student"})
	assert.NoError(t, err)
}
