package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "beltstock/internal/errors"
)

func TestMapToHTTPStatus_TypedErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		category string
	}{
		{"validation", apperror.NewValidationError("no valid sizes"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", apperror.NewNotFoundError("stock"), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", apperror.NewConflictError("version"), http.StatusConflict, "CONFLICT"},
		{"internal", apperror.NewDBError("select", fmt.Errorf("boom")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"wrapped", fmt.Errorf("service: %w", apperror.NewNotFoundError("x")), http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, category, _ := apperror.MapToHTTPStatus(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.category, category)
		})
	}
}

func TestMapToHTTPStatus_UntypedError(t *testing.T) {
	status, category, message := apperror.MapToHTTPStatus(fmt.Errorf("raw"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "UNKNOWN_ERROR", category)
	assert.Equal(t, "Ocorreu um erro inesperado.", message)
}

func TestNewListValidationError_EnumeratesAll(t *testing.T) {
	err := apperror.NewListValidationError("sizes not found", []string{"99", "RU1"})

	var vErr *apperror.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "sizes not found: 99, RU1", vErr.Msg)
	assert.Equal(t, []string{"99", "RU1"}, vErr.Offending)
	assert.Contains(t, err.Error(), "Erro de Validação")
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, apperror.IsNotFound(fmt.Errorf("wrap: %w", apperror.NewNotFoundError("x"))))
	assert.False(t, apperror.IsNotFound(apperror.NewConflictError("x")))
}
