package config

import (
	"github.com/caarlos0/env/v11"

	"promo-scheduler/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP configures the status server. Variables prefixed with HTTP_.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Variables prefixed with LOG_.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Variables prefixed with
	// PSQL_.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Scheduler configures job cadence. Variables prefixed with SCHEDULER_.
	Scheduler configs.Scheduler `envPrefix:"SCHEDULER_"`

	// Partners configures the external collaborators. Variables prefixed
	// with PARTNER_.
	Partners configs.Partners `envPrefix:"PARTNER_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their defaults when no variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
