package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plenumhq/plenum/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", services.NewValidationError("task", "is required"), http.StatusBadRequest},
		{"wrapped validation error", fmt.Errorf("create: %w", services.NewValidationError("roles", "too few")), http.StatusBadRequest},
		{"invalid input", services.ErrInvalidInput, http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", services.ErrNotFound), http.StatusNotFound},
		{"not cancellable", services.ErrNotCancellable, http.StatusConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, message)
		})
	}
}

func TestMapServiceError_HidesInternalDetail(t *testing.T) {
	_, message := mapServiceError(errors.New("pq: connection refused"))
	assert.Equal(t, "internal server error", message)
}
