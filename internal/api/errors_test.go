package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/domain/session"
	"github.com/phrazzld/vocab-drill/internal/service"
	"github.com/phrazzld/vocab-drill/internal/store"
)

func TestErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"session not found", service.ErrSessionNotFound, http.StatusNotFound, "Session not found"},
		{"store not found", fmt.Errorf("get: %w", store.ErrSessionNotFound), http.StatusNotFound, "Session not found"},
		{
			"disabled transition",
			&service.SessionServiceError{Operation: "switch_mode", Err: session.ErrTransitionDisabled},
			http.StatusConflict,
			"Mode switch is not available",
		},
		{"invalid mode", fmt.Errorf("switch: %w", domain.ErrInvalidMode), http.StatusBadRequest, "Invalid mode"},
		{"invalid response", domain.ErrInvalidResponse, http.StatusBadRequest, "Invalid response"},
		{"validation", domain.ErrValidation, http.StatusBadRequest, "Invalid request data"},
		{"unknown", errors.New("open /etc/secret: denied"), http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantStatus, MapErrorToStatusCode(tc.err))
			assert.Equal(t, tc.wantMessage, GetSafeErrorMessage(tc.err))
		})
	}

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	v := validator.New()

	err := v.Struct(&SwitchModeRequest{Mode: "shuffle"})
	require.Error(t, err)
	assert.Equal(t, "Invalid Mode: invalid value", SanitizeValidationError(err))

	err = v.Struct(&AnswerRequest{})
	require.Error(t, err)
	assert.Equal(t, "Invalid Response: required field", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
}
