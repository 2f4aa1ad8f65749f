package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/ukane-philemon/gradebook/internal/logger"
)

// DataFile is where the roster is kept, relative to the working directory.
const DataFile = "grades.csv"

// Config holds the settings read from the environment.
type Config struct {
	LogLevel string `env:"GRADEBOOK_LOG_LEVEL" envDefault:"info"`
}

// Load parses Config from the environment and validates it.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	return nil
}
