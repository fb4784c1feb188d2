package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/courseforge-api/internal/api"
	apiMiddleware "github.com/phrazzld/courseforge-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	// Create API handlers using the application's services
	topicHandler := api.NewTopicHandler(app.registry, app.logger)
	generateHandler := api.NewGenerateHandler(
		app.builder,
		app.generator,
		app.generationTimeout(),
		app.logger,
	)
	exportHandler := api.NewExportHandler(app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Topic catalog
		r.Get("/topics", topicHandler.ListTopics)
		r.Get("/topics/{id}", topicHandler.GetTopic)

		// Content generation
		r.Post("/generate", generateHandler.GenerateContent)

		// Exports
		r.Post("/export/excel", exportHandler.ExportExcel)
		r.Post("/export/json", exportHandler.ExportJSON)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
