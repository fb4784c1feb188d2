package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/courseforge-api/internal/domain"
	"github.com/phrazzld/courseforge-api/internal/export"
	"github.com/phrazzld/courseforge-api/internal/formatter"
	"github.com/phrazzld/courseforge-api/internal/generation"
	"github.com/phrazzld/courseforge-api/internal/topic"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This keeps internal error types and messages from
// leaking to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, topic.ErrTopicNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidContentType),
		errors.Is(err, generation.ErrInvalidTemperature),
		errors.Is(err, generation.ErrEmptyCredential),
		errors.Is(err, export.ErrEmptyContent):
		return http.StatusBadRequest

	// Credential rejected upstream
	case errors.Is(err, generation.ErrInvalidCredential):
		return http.StatusUnauthorized

	// Rate limiting signaled by the generation service
	case errors.Is(err, generation.ErrRateLimited):
		return http.StatusTooManyRequests

	// Upstream failures
	case errors.Is(err, generation.ErrServiceUnavailable),
		errors.Is(err, generation.ErrEmptyResponse):
		return http.StatusBadGateway

	// Generated text that cannot be parsed
	case errors.Is(err, formatter.ErrMalformedContent):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-displayable message for the
// error. Each error kind in the taxonomy maps to a distinct condition.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, topic.ErrTopicNotFound):
		return "Topic not found"

	case errors.Is(err, domain.ErrInvalidContentType):
		return "Unrecognized content type"

	case errors.Is(err, generation.ErrInvalidTemperature):
		return "Temperature must be between 0 and 1"

	case errors.Is(err, generation.ErrEmptyCredential):
		return "An API key is required"

	case errors.Is(err, generation.ErrInvalidCredential):
		return "The generation service rejected the API key"

	case errors.Is(err, generation.ErrRateLimited):
		return "The generation service is rate limiting this API key; try again later"

	case errors.Is(err, generation.ErrServiceUnavailable):
		return "The generation service is unavailable"

	case errors.Is(err, generation.ErrEmptyResponse):
		return "The generation service returned no text"

	case errors.Is(err, formatter.ErrMalformedContent):
		return "The generated text could not be parsed into the requested format"

	case errors.Is(err, export.ErrEmptyContent):
		return "There is no content to export"

	default:
		return "An unexpected error occurred"
	}
}
