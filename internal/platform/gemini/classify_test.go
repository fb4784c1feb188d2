package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/courseforge-api/internal/domain"
	"github.com/phrazzld/courseforge-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "unauthorized_maps_to_invalid_credential",
			err:  genai.APIError{Code: 401, Message: "invalid authentication credentials"},
			want: generation.ErrInvalidCredential,
		},
		{
			name: "forbidden_maps_to_invalid_credential",
			err:  genai.APIError{Code: 403, Message: "permission denied"},
			want: generation.ErrInvalidCredential,
		},
		{
			name: "bad_api_key_maps_to_invalid_credential",
			err:  genai.APIError{Code: 400, Message: "API key not valid. Please pass a valid API key."},
			want: generation.ErrInvalidCredential,
		},
		{
			name: "other_bad_request_maps_to_service_unavailable",
			err:  genai.APIError{Code: 400, Message: "invalid argument"},
			want: generation.ErrServiceUnavailable,
		},
		{
			name: "too_many_requests_maps_to_rate_limited",
			err:  genai.APIError{Code: 429, Message: "resource exhausted"},
			want: generation.ErrRateLimited,
		},
		{
			name: "internal_error_maps_to_service_unavailable",
			err:  genai.APIError{Code: 500, Message: "internal error"},
			want: generation.ErrServiceUnavailable,
		},
		{
			name: "service_overloaded_maps_to_service_unavailable",
			err:  genai.APIError{Code: 503, Message: "the model is overloaded"},
			want: generation.ErrServiceUnavailable,
		},
		{
			name: "deadline_maps_to_service_unavailable",
			err:  fmt.Errorf("call failed: %w", context.DeadlineExceeded),
			want: generation.ErrServiceUnavailable,
		},
		{
			name: "cancellation_maps_to_service_unavailable",
			err:  context.Canceled,
			want: generation.ErrServiceUnavailable,
		},
		{
			name: "plain_network_error_maps_to_service_unavailable",
			err:  errors.New("dial tcp: connection refused"),
			want: generation.ErrServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			require.Error(t, got)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestClassify_NilError(t *testing.T) {
	t.Parallel()
	assert.NoError(t, classify(nil))
}

func TestExtractText(t *testing.T) {
	t.Parallel()

	// Joined text from multiple parts.
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "1. What is a formal greeting?\n"},
						{Text: "A) Hey B) Dear Sir C) Yo D) Sup\nAnswer: B"},
					},
				},
			},
		},
	}

	text, err := extractText(resp)
	require.NoError(t, err)
	assert.Contains(t, text, "formal greeting")
	assert.Contains(t, text, "Answer: B")
}

func TestExtractText_EmptyResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{name: "nil_response", resp: nil},
		{name: "no_candidates", resp: &genai.GenerateContentResponse{}},
		{
			name: "candidate_without_content",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
		},
		{
			name: "whitespace_only_text",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []*genai.Part{{Text: "   \n  "}}}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractText(tt.resp)
			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrEmptyResponse)
		})
	}
}

func TestNewGenerator(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator(nil, "gemini-2.5-pro")
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	g, err := NewGenerator(logger, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, g.model, "empty model name falls back to the default")

	g, err = NewGenerator(logger, "gemini-2.0-flash")
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", g.model)
}

func TestGenerate_EmptyCredential(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	g, err := NewGenerator(logger, "")
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), &generation.Request{
		ID:          uuid.New(),
		TopicID:     "business_communication",
		ContentType: domain.ContentTypeMCQ,
		Prompt:      "prompt",
		Temperature: 0.7,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrEmptyCredential)
}
