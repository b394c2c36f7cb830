package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8000"`
	// Database (either mongodb:// or postgres:// URLs are accepted)
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseName string `env:"DATABASE_NAME"`
	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// CORS
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
	// Timeouts
	DBConnectTimeoutSeconds  int `env:"DB_CONNECT_TIMEOUT_SECONDS" envDefault:"10"`
	DiagnosticTimeoutSeconds int `env:"DIAGNOSTIC_TIMEOUT_SECONDS" envDefault:"5"`
}

func LoadConfig() (*Config, error) {
	// .env is optional; production environments set real variables
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.DBConnectTimeoutSeconds <= 0 {
		cfg.DBConnectTimeoutSeconds = 10
	}
	if cfg.DiagnosticTimeoutSeconds <= 0 {
		cfg.DiagnosticTimeoutSeconds = 5
	}

	return &cfg, nil
}

// DatabaseConfigured reports whether both database settings are present.
func (c *Config) DatabaseConfigured() bool {
	return c.DatabaseURL != "" && c.DatabaseName != ""
}

func (c *Config) DBConnectTimeout() time.Duration {
	return time.Duration(c.DBConnectTimeoutSeconds) * time.Second
}

func (c *Config) DiagnosticTimeout() time.Duration {
	return time.Duration(c.DiagnosticTimeoutSeconds) * time.Second
}
