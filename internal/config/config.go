package config

import (
	"github.com/caarlos0/env/v11"

	"onmo-campaigns/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is not
	// currently used by the application but may be useful for logging or
	// metrics.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Dynamo configures the campaign store. Environment variables prefixed
	// with DYNAMO_ will populate this struct.
	Dynamo configs.Dynamo `envPrefix:"DYNAMO_"`

	// OpenAI configures the suggestion service. Environment variables
	// prefixed with OPENAI_ will populate this struct.
	OpenAI configs.OpenAI `envPrefix:"OPENAI_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, or a required value such as the store table name or the
// completion-service credential is absent, an error is returned.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
