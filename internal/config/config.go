// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"

	"benefits-engine/internal/apperr"
)

type Config struct {
	Port             string        `env:"BENEFITS_PORT"               envDefault:"8080"`
	RateTablePath    string        `env:"BENEFITS_RATE_TABLE_PATH"`
	RateTableURL     string        `env:"BENEFITS_RATE_TABLE_URL"`
	RateTableTimeout time.Duration `env:"BENEFITS_RATE_TABLE_TIMEOUT" envDefault:"2s"`
	LogLevel         string        `env:"BENEFITS_LOG_LEVEL"          envDefault:"info"`
	LogFormat        string        `env:"BENEFITS_LOG_FORMAT"         envDefault:"json"`
}

// Load parses the environment. Values are not validated here since flags and the config file
// may still override them; call Validate once the final values are in place.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse env: %v", apperr.ErrInvalidConfig, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q", apperr.ErrInvalidConfig, c.Port)
	}
	if c.RateTableTimeout <= 0 {
		return fmt.Errorf("%w: rate table timeout must be positive", apperr.ErrInvalidConfig)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log format %q", apperr.ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
