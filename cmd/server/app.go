package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/courseforge-api/internal/config"
	"github.com/phrazzld/courseforge-api/internal/generation"
	"github.com/phrazzld/courseforge-api/internal/platform/gemini"
	"github.com/phrazzld/courseforge-api/internal/topic"
)

// application holds all shared application dependencies to simplify
// management and ensure consistent wiring. Everything here is read-only
// after initialization; per-request state (including the credential) never
// lands in this struct.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Topic catalog, immutable after startup
	registry *topic.Registry

	// Generation pipeline
	builder   *generation.Builder
	generator generation.Generator
}

// newApplication creates a new application instance with all dependencies
// initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.registry, err = topic.NewDefaultRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to build topic registry: %w", err)
	}
	logger.Info("topic registry initialized", "topic_count", app.registry.Len())

	app.builder = generation.NewBuilder(app.registry)

	app.generator, err = gemini.NewGenerator(
		logger.With("component", "generation_client"),
		cfg.Generation.ModelName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generation client: %w", err)
	}
	logger.Info("generation client initialized", "model", cfg.Generation.ModelName)

	return app, nil
}

// generationTimeout returns the per-call timeout the handlers apply to
// outbound generation requests.
func (app *application) generationTimeout() time.Duration {
	return time.Duration(app.config.Generation.RequestTimeoutSeconds) * time.Second
}
