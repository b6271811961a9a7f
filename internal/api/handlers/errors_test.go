package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "strategic-planning-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}
	validationErr := validator.New().Struct(payload{})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validator", fmt.Errorf("validation failed: %w", validationErr), http.StatusBadRequest},
		{"validation error", apperrors.NewValidationError("name", "required"), http.StatusBadRequest},
		{"not found", fmt.Errorf("wrapped: %w", apperrors.ErrPlanNotFound), http.StatusNotFound},
		{"exists", apperrors.ErrOrganizationExists, http.StatusConflict},
		{"transition", fmt.Errorf("%w: plan is submitted", apperrors.ErrInvalidStatusTransition), http.StatusConflict},
		{"cycle", apperrors.ErrOrganizationCycle, http.StatusBadRequest},
		{"filter", fmt.Errorf("%w: bad", apperrors.ErrInvalidFilter), http.StatusBadRequest},
		{"auth", apperrors.ErrMissingToken, http.StatusUnauthorized},
		{"staff", apperrors.ErrNotStaff, http.StatusForbidden},
		{"unknown", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, errorStatus(tt.err))
		})
	}
}
