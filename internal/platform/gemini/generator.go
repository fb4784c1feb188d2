package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/courseforge-api/internal/generation"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when no model name is configured.
const DefaultModel = "gemini-2.5-pro"

// Generator implements generation.Generator against the Gemini API.
type Generator struct {
	logger *slog.Logger
	model  string
}

// NewGenerator creates a Gemini-backed generator. The model name comes from
// configuration; the credential does not — it arrives with every request.
func NewGenerator(logger *slog.Logger, model string) (*Generator, error) {
	if logger == nil {
		return nil, fmt.Errorf("%w: logger cannot be nil", generation.ErrInvalidConfig)
	}

	if model == "" {
		model = DefaultModel
	}

	return &Generator{
		logger: logger,
		model:  model,
	}, nil
}

// Generate sends one prompt to the Gemini API and returns the raw generated
// text. It is single-shot: failures are classified and surfaced, never
// retried here. The caller's context carries the timeout; hitting it maps to
// generation.ErrServiceUnavailable.
func (g *Generator) Generate(ctx context.Context, req *generation.Request) (*generation.Result, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if req.Credential.Empty() {
		return nil, generation.ErrEmptyCredential
	}

	log := g.logger.With(
		"request_id", req.ID.String(),
		"topic_id", req.TopicID,
		"content_type", req.ContentType,
		"model", g.model,
	)

	// The client is built per request from the caller's credential so that no
	// credential ever outlives the request it arrived with.
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  string(req.Credential),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to create Gemini client", "error", classify(err))
		return nil, classify(err)
	}

	log.InfoContext(ctx, "calling Gemini API",
		"prompt_length", len(req.Prompt),
		"temperature", req.Temperature)

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(req.Temperature)),
		})
	if err != nil {
		classified := classify(err)
		log.ErrorContext(ctx, "Gemini API call failed", "error", classified)
		return nil, classified
	}

	text, err := extractText(resp)
	if err != nil {
		log.WarnContext(ctx, "Gemini API returned no usable text", "error", err)
		return nil, err
	}

	log.InfoContext(ctx, "Gemini API call succeeded", "response_length", len(text))

	return &generation.Result{
		RawText:     text,
		ContentType: req.ContentType,
		Model:       g.model,
	}, nil
}

// extractText concatenates the text parts of the first candidate.
// Returns generation.ErrEmptyResponse when no text came back.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", generation.ErrEmptyResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: candidate has no content", generation.ErrEmptyResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		sb.WriteString(part.Text)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: candidate text is empty", generation.ErrEmptyResponse)
	}

	return text, nil
}
