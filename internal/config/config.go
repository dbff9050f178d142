package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings shared by the server and the CLI
type Config struct {
	GRPCAddr        string        `env:"PROJECTOR_GRPC_ADDR" envDefault:":8080"`
	APIToken        string        `env:"PROJECTOR_API_TOKEN" envDefault:"dev-token"`
	ShutdownTimeout time.Duration `env:"PROJECTOR_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CurrencySymbol  string        `env:"PROJECTOR_CURRENCY_SYMBOL" envDefault:"$"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment, applying defaults for unset variables
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("PROJECTOR_SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}
	return cfg, nil
}
