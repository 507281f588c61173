package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("dup"), ErrorTypeConflict, http.StatusConflict},
		{"unauthorized", NewUnauthorizedError("who"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"unavailable", NewUnavailableError("off"), ErrorTypeUnavailable, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("create order: %w", NewValidationError("items required", "items"))

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, "items", appErr.Details)
	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
	assert.Equal(t, "validation_error: items required (items)", appErr.Error())

	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
}
