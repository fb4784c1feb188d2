package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/courseforge-api/internal/domain"
	"github.com/phrazzld/courseforge-api/internal/export"
	"github.com/phrazzld/courseforge-api/internal/formatter"
	"github.com/phrazzld/courseforge-api/internal/generation"
	"github.com/phrazzld/courseforge-api/internal/topic"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{topic.ErrTopicNotFound, http.StatusNotFound},
		{domain.ErrInvalidContentType, http.StatusBadRequest},
		{generation.ErrInvalidTemperature, http.StatusBadRequest},
		{generation.ErrEmptyCredential, http.StatusBadRequest},
		{export.ErrEmptyContent, http.StatusBadRequest},
		{generation.ErrInvalidCredential, http.StatusUnauthorized},
		{generation.ErrRateLimited, http.StatusTooManyRequests},
		{generation.ErrServiceUnavailable, http.StatusBadGateway},
		{generation.ErrEmptyResponse, http.StatusBadGateway},
		{formatter.ErrMalformedContent, http.StatusUnprocessableEntity},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err), "error: %v", tt.err)

		// Wrapping must not change the mapping.
		wrapped := fmt.Errorf("context: %w", tt.err)
		assert.Equal(t, tt.want, MapErrorToStatusCode(wrapped), "wrapped error: %v", wrapped)
	}
}

func TestGetSafeErrorMessage_DistinctPerErrorKind(t *testing.T) {
	t.Parallel()

	kinds := []error{
		topic.ErrTopicNotFound,
		domain.ErrInvalidContentType,
		generation.ErrInvalidTemperature,
		generation.ErrInvalidCredential,
		generation.ErrRateLimited,
		generation.ErrServiceUnavailable,
		generation.ErrEmptyResponse,
		formatter.ErrMalformedContent,
		export.ErrEmptyContent,
	}

	seen := make(map[string]error, len(kinds))
	for _, err := range kinds {
		msg := GetSafeErrorMessage(err)
		assert.NotEqual(t, "An unexpected error occurred", msg, "error %v has no dedicated message", err)

		if prior, dup := seen[msg]; dup {
			t.Errorf("errors %v and %v share the message %q", prior, err, msg)
		}
		seen[msg] = err
	}
}

func TestGetSafeErrorMessage_NeverEchoesInternals(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: POST https://generativelanguage.googleapis.com?key=secret123456 returned 401",
		generation.ErrInvalidCredential)

	msg := GetSafeErrorMessage(err)
	assert.NotContains(t, msg, "secret123456")
	assert.NotContains(t, msg, "googleapis")

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}
