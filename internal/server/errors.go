package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/cv-matcher/internal/embedding"
	"github.com/jonathan/cv-matcher/internal/fetch"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Embedding provider and fetch failures map to 502 so callers can tell a
// broken collaborator apart from a poor match result.
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var providerErr *embedding.ProviderError
	if errors.As(err, &providerErr) {
		return http.StatusBadGateway
	}

	var fetchErr *fetch.Error
	if errors.As(err, &fetchErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
