package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/courseforge-api/internal/api/shared"
	"github.com/phrazzld/courseforge-api/internal/domain"
	"github.com/phrazzld/courseforge-api/internal/topic"
)

// TopicResponse represents the response data for a topic. The prompt
// template stays server-side.
type TopicResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	Temperature   float64 `json:"temperature"`
	EstimatedTime string  `json:"estimated_time"`
}

// TopicHandler handles topic catalog HTTP requests
type TopicHandler struct {
	registry *topic.Registry
	logger   *slog.Logger
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(registry *topic.Registry, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{
		registry: registry,
		logger:   logger,
	}
}

// ListTopics handles GET /api/topics requests
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics := h.registry.List()

	response := make([]TopicResponse, 0, len(topics))
	for _, t := range topics {
		response = append(response, topicToDTOResponse(t))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetTopic handles GET /api/topics/{id} requests
func (h *TopicHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, err := h.registry.Get(id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, topicToDTOResponse(t))
}

// topicToDTOResponse converts a domain.Topic to a TopicResponse
func topicToDTOResponse(t domain.Topic) TopicResponse {
	return TopicResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Icon:          t.Icon,
		Temperature:   t.Temperature,
		EstimatedTime: t.EstimatedTime,
	}
}
