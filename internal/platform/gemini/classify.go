package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/courseforge-api/internal/generation"
	"google.golang.org/genai"
)

// classify maps a raw error from the genai SDK onto the generation package's
// error taxonomy. The original error text is carried along for logging; the
// sentinel is what callers match on with errors.Is.
func classify(err error) error {
	if err == nil {
		return nil
	}

	// A timed-out or abandoned call counts as the service being unavailable.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", generation.ErrServiceUnavailable, err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %s", classifyStatusCode(apiErr.Code, apiErr.Message), apiErr.Message)
	}

	// Anything else (DNS failure, connection reset, TLS errors) is a network
	// problem between us and the service.
	return fmt.Errorf("%w: %v", generation.ErrServiceUnavailable, err)
}

// classifyStatusCode picks the taxonomy sentinel for an HTTP status code
// returned by the Gemini API.
func classifyStatusCode(code int, message string) error {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return generation.ErrInvalidCredential

	// Gemini reports a malformed or revoked API key as 400 API_KEY_INVALID
	// rather than 401.
	case code == http.StatusBadRequest && strings.Contains(strings.ToUpper(message), "API KEY"):
		return generation.ErrInvalidCredential

	case code == http.StatusTooManyRequests:
		return generation.ErrRateLimited

	case code >= http.StatusInternalServerError:
		return generation.ErrServiceUnavailable

	default:
		return generation.ErrServiceUnavailable
	}
}
