package generation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/courseforge-api/internal/domain"
	"github.com/phrazzld/courseforge-api/internal/topic"
)

// BuildParams carries the user-chosen parameters for one generation request.
type BuildParams struct {
	// TopicID selects the registry topic whose prompt template to use.
	TopicID string

	// ContentType selects the structural category of the generated material.
	ContentType domain.ContentType

	// Temperature, when non-nil, overrides the topic's default sampling
	// temperature. Out-of-range overrides are rejected, not clamped.
	Temperature *float64

	// ExtraInstructions are optional caller instructions appended to the prompt.
	ExtraInstructions string

	// Credential authorizes the outbound call.
	Credential Credential
}

// Builder composes outbound generation requests from registry topics and
// fixed content-type instructions.
type Builder struct {
	registry *topic.Registry
}

// NewBuilder creates a Builder backed by the given registry.
func NewBuilder(registry *topic.Registry) *Builder {
	return &Builder{registry: registry}
}

// Build resolves the topic, validates the content type and temperature, and
// composes the final prompt. It never partially constructs a request: any
// validation failure returns a nil request and the classifying error.
func (b *Builder) Build(params BuildParams) (*Request, error) {
	def, err := b.registry.Get(params.TopicID)
	if err != nil {
		return nil, err
	}

	if !params.ContentType.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidContentType, params.ContentType)
	}

	if params.Credential.Empty() {
		return nil, ErrEmptyCredential
	}

	temperature := def.Temperature
	if params.Temperature != nil {
		override := *params.Temperature
		if override < 0 || override > 1 {
			return nil, fmt.Errorf("%w: got %v", ErrInvalidTemperature, override)
		}
		temperature = override
	}

	return &Request{
		ID:          uuid.New(),
		TopicID:     def.ID,
		ContentType: params.ContentType,
		Prompt:      composePrompt(def.PromptTemplate, params.ContentType, params.ExtraInstructions),
		Temperature: temperature,
		Credential:  params.Credential,
	}, nil
}

// composePrompt concatenates the topic template, the content-type output
// instructions, and any extra caller instructions.
func composePrompt(template string, ct domain.ContentType, extra string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(template))
	sb.WriteString("\n\n")
	sb.WriteString(InstructionsFor(ct))

	if extra = strings.TrimSpace(extra); extra != "" {
		sb.WriteString("\n\nAdditional instructions: ")
		sb.WriteString(extra)
	}

	return sb.String()
}
