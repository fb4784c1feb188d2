package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/courseforge-api/internal/api/shared"
	"github.com/phrazzld/courseforge-api/internal/domain"
	"github.com/phrazzld/courseforge-api/internal/formatter"
	"github.com/phrazzld/courseforge-api/internal/generation"
)

// GenerateContentRequest represents the request body for generating content.
// The API key arrives with every request and is never stored server-side.
type GenerateContentRequest struct {
	TopicID           string   `json:"topic_id"           validate:"required"`
	ContentType       string   `json:"content_type"       validate:"required"`
	APIKey            string   `json:"api_key"            validate:"required"`
	Temperature       *float64 `json:"temperature,omitempty"`
	ExtraInstructions string   `json:"extra_instructions,omitempty"`
}

// GenerateContentResponse represents the response data for generated content.
type GenerateContentResponse struct {
	ContentType string          `json:"content_type"`
	Columns     []string        `json:"columns"`
	Rows        []formatter.Row `json:"rows"`
	RawText     string          `json:"raw_text"`
}

// GenerateHandler handles content generation HTTP requests. It runs the
// request builder, the generation client, and the content formatter as one
// blocking request-response cycle; nothing is shared between requests.
type GenerateHandler struct {
	builder   *generation.Builder
	generator generation.Generator
	timeout   time.Duration
	validator *validator.Validate
	logger    *slog.Logger
}

// NewGenerateHandler creates a new GenerateHandler. The timeout bounds one
// outbound generation call.
func NewGenerateHandler(
	builder *generation.Builder,
	generator generation.Generator,
	timeout time.Duration,
	logger *slog.Logger,
) *GenerateHandler {
	return &GenerateHandler{
		builder:   builder,
		generator: generator,
		timeout:   timeout,
		validator: validator.New(),
		logger:    logger,
	}
}

// GenerateContent handles POST /api/generate requests
func (h *GenerateHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var req GenerateContentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: missing or invalid fields")
		return
	}

	contentType, err := domain.ParseContentType(req.ContentType)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	genReq, err := h.builder.Build(generation.BuildParams{
		TopicID:           req.TopicID,
		ContentType:       contentType,
		Temperature:       req.Temperature,
		ExtraInstructions: req.ExtraInstructions,
		Credential:        generation.Credential(req.APIKey),
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.InfoContext(r.Context(), "generation request built",
		"request_id", genReq.ID.String(),
		"topic_id", genReq.TopicID,
		"content_type", genReq.ContentType,
		"temperature", genReq.Temperature,
		"trace_id", shared.GetTraceID(r.Context()))

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.generator.Generate(ctx, genReq)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	content, err := formatter.Format(result)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateContentResponse{
		ContentType: string(content.ContentType),
		Columns:     content.Columns,
		Rows:        content.Rows,
		RawText:     result.RawText,
	})
}
