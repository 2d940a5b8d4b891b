// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// #region config

// Config holds all tunables for the decision pipeline and its collaborators.
type Config struct {
	// Storage
	DBPath string `env:"LAUNCHGATE_DB" envDefault:"launchgate.db"`

	// Pipeline
	HistoryLimit        int     `env:"HISTORY_LIMIT" envDefault:"20"`
	ShortSessionMinutes float64 `env:"SHORT_SESSION_MINUTES" envDefault:"8"`

	// Kafka decision events; publishing is disabled when no brokers are set.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_DECISION_TOPIC" envDefault:"launchgate.decisions"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.HistoryLimit < 0 {
		return Config{}, fmt.Errorf("HISTORY_LIMIT must be >= 0, got %d", cfg.HistoryLimit)
	}
	return cfg, nil
}

// PublishEnabled reports whether Kafka publishing is configured.
func (c Config) PublishEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// #endregion config
