package generation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/courseforge-api/internal/domain"
)

// Credential is the caller-supplied secret authorizing calls to the external
// generation service. It lives only for the duration of one request and must
// never be stored, cached, or logged. String and LogValue render a
// placeholder so the raw value cannot leak through formatted output.
type Credential string

// redactedCredential is what a Credential renders as in any formatted output.
const redactedCredential = "[REDACTED_CREDENTIAL]"

// String implements fmt.Stringer. It never returns the raw secret.
func (c Credential) String() string {
	return redactedCredential
}

// LogValue implements slog.LogValuer. It never returns the raw secret.
func (c Credential) LogValue() slog.Value {
	return slog.StringValue(redactedCredential)
}

// Empty reports whether the credential is unset.
func (c Credential) Empty() bool {
	return len(c) == 0
}

// Request is a single outbound generation request. It is created per user
// action, never persisted, and discarded after response handling.
type Request struct {
	// ID correlates log lines for one generation round-trip.
	ID uuid.UUID

	// TopicID references the registry topic the prompt was built from.
	TopicID string

	// ContentType selects the structural category of the requested material.
	ContentType domain.ContentType

	// Prompt is the fully composed prompt text: topic template plus
	// content-type instructions plus any extra caller instructions.
	Prompt string

	// Temperature is the effective sampling temperature in [0,1].
	Temperature float64

	// Credential authorizes the outbound call. Pass-through only.
	Credential Credential
}

// Result is the transient outcome of a successful generation call.
type Result struct {
	// RawText is the unparsed text returned by the service.
	RawText string

	// ContentType echoes the request's content type so the formatter knows
	// which grammar to apply.
	ContentType domain.ContentType

	// Model is the model name that produced the text.
	Model string
}

// Generator defines the boundary between the application core and the
// external text-generation service. Implementations send exactly one request
// per call and classify failures into the package's error taxonomy; retry
// policy is deliberately left to the caller.
type Generator interface {
	// Generate sends the request to the external service and returns the raw
	// generated text. The context carries the caller's timeout; on deadline
	// the implementation returns ErrServiceUnavailable.
	Generate(ctx context.Context, req *Request) (*Result, error)
}
