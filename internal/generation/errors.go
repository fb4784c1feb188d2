package generation

import "errors"

// Common errors returned by the generation package. Each is terminal for the
// current request: the client never retries internally, so the caller decides
// whether a retry makes sense.
var (
	// ErrInvalidCredential is returned when the external service rejects the
	// caller-supplied credential.
	ErrInvalidCredential = errors.New("generation credential rejected")

	// ErrRateLimited is returned when the external service signals that the
	// credential's rate-limit budget is exhausted.
	ErrRateLimited = errors.New("generation rate limited")

	// ErrServiceUnavailable is returned for network failures, timeouts, and
	// 5xx responses from the external service.
	ErrServiceUnavailable = errors.New("generation service unavailable")

	// ErrEmptyResponse is returned when the service responds successfully but
	// produces no text.
	ErrEmptyResponse = errors.New("empty response from generation service")

	// ErrInvalidTemperature is returned when a temperature override is
	// outside [0,1]. Overrides are rejected, never clamped.
	ErrInvalidTemperature = errors.New("temperature must be between 0 and 1")

	// ErrEmptyCredential is returned when a request is built without a
	// credential.
	ErrEmptyCredential = errors.New("credential cannot be empty")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
