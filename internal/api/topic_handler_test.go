package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/courseforge-api/internal/domain"
	"github.com/phrazzld/courseforge-api/internal/topic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRegistry(t *testing.T) *topic.Registry {
	t.Helper()

	registry, err := topic.NewRegistry([]domain.Topic{
		{
			ID:             "business_communication",
			Title:          "Business Communication",
			Description:    "Workplace English",
			Icon:           "briefcase",
			Temperature:    0.7,
			EstimatedTime:  "15-20 min",
			PromptTemplate: "Create exercises about business communication.",
		},
		{
			ID:             "email_etiquette",
			Title:          "Email Etiquette",
			Temperature:    0.6,
			PromptTemplate: "Create exercises about email writing.",
		},
	})
	require.NoError(t, err)
	return registry
}

func topicRouter(t *testing.T) http.Handler {
	t.Helper()

	handler := NewTopicHandler(testRegistry(t), testLogger())
	r := chi.NewRouter()
	r.Get("/api/topics", handler.ListTopics)
	r.Get("/api/topics/{id}", handler.GetTopic)
	return r
}

func TestTopicHandler_ListTopics(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	rec := httptest.NewRecorder()
	topicRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var topics []TopicResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &topics))
	require.Len(t, topics, 2)
	assert.Equal(t, "business_communication", topics[0].ID)
	assert.Equal(t, "email_etiquette", topics[1].ID)

	// The prompt template must never be exposed through the API.
	assert.NotContains(t, rec.Body.String(), "Create exercises")
}

func TestTopicHandler_GetTopic(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/topics/business_communication", nil)
	rec := httptest.NewRecorder()
	topicRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got TopicResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "business_communication", got.ID)
	assert.Equal(t, "Business Communication", got.Title)
	assert.Equal(t, 0.7, got.Temperature)
}

func TestTopicHandler_GetTopic_NotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/topics/unknown_topic", nil)
	rec := httptest.NewRecorder()
	topicRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Topic not found")
}
