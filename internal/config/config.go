package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
// Note: the generation credential is deliberately absent — it arrives with
// each request and is never read from the environment or stored.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// GenerationConfig contains settings for the external generation service.
type GenerationConfig struct {
	// ModelName is the Gemini model used for all generation calls.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// RequestTimeoutSeconds bounds one outbound generation call. The core
	// mandates no timeout value, but the caller must apply one; this is it.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"required,gt=0,lte=600"`
}
