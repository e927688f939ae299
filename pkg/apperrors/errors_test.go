package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeDatabaseError, "database operation failed", http.StatusInternalServerError)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DATABASE_ERROR")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAs(t *testing.T) {
	appErr := NotFound("profile")
	wrapped := fmt.Errorf("handler: %w", appErr)

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, got.Code)
	assert.Equal(t, http.StatusNotFound, got.HTTPCode)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err      *AppError
		code     ErrorCode
		httpCode int
	}{
		{NotFound("profile"), CodeNotFound, http.StatusNotFound},
		{AlreadyExists("account"), CodeAlreadyExists, http.StatusConflict},
		{Conflict("already following"), CodeConflict, http.StatusConflict},
		{Validation("bad input"), CodeValidationFailed, http.StatusBadRequest},
		{Unauthorized("no token"), CodeUnauthorized, http.StatusUnauthorized},
		{InvalidCredentials(), CodeInvalidCredentials, http.StatusUnauthorized},
		{Database(errors.New("x")), CodeDatabaseError, http.StatusInternalServerError},
		{Storage(errors.New("x")), CodeStorageError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.err.Code)
		assert.Equal(t, tt.httpCode, tt.err.HTTPCode)
	}
}
