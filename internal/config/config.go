package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the service configuration, loaded from environment variables.
type Config struct {
	// SpannerDB is the full database path,
	// projects/<p>/instances/<i>/databases/<d>.
	SpannerDB string `env:"SPANNER_DATABASE" envDefault:"projects/test-project/instances/dev-instance/databases/backoffice-db"`

	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// LogFormat selects slog output: "json" in deployments, "text" for dev.
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
