package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestToDomainError(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"domain error kept", NewValidationError("bad", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{"wrapped domain error", fmt.Errorf("handler: %w", NewUnauthorized("no")), "UNAUTHORIZED", http.StatusUnauthorized},
		{"fiber error", fiber.NewError(http.StatusNotFound, "Cannot GET /x"), "NOT_FOUND", http.StatusNotFound},
		{"no rows", fmt.Errorf("profile: %w", pgx.ErrNoRows), "NOT_FOUND", http.StatusNotFound},
		{"unknown", cause, "INTERNAL_ERROR", http.StatusInternalServerError},
		{"forbidden default code", NewForbidden("", "nope", nil), "FORBIDDEN", http.StatusForbidden},
		{"unavailable", NewServiceUnavailable("down", cause), "SERVICE_UNAVAILABLE", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			de := ToDomainError(tt.err)
			assert.Equal(t, tt.code, de.Code)
			assert.Equal(t, tt.status, de.HTTPStatus)
		})
	}

	assert.Nil(t, ToDomainError(nil))
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("redis down")
	err := NewServiceUnavailable("roles unavailable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "roles unavailable: redis down", err.Error())
}
