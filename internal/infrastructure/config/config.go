// Package config loads the clinic service settings from the environment.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Account id strategies.
const (
	StrategySequence = "sequence"
	StrategyRandom   = "random"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	AccountIDs AccountIDConfig
}

type AccountIDConfig struct {
	Strategy string `env:"ACCOUNT_ID_STRATEGY, default=sequence"`
	Range    int    `env:"ACCOUNT_ID_RANGE,    default=1000000"`
}

// Load reads configuration through l using go-envconfig. Pass
// envconfig.OsLookuper() in production and envconfig.MapLookuper in tests.
func Load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	switch cfg.AccountIDs.Strategy {
	case StrategySequence, StrategyRandom:
	default:
		return nil, fmt.Errorf("config: unknown ACCOUNT_ID_STRATEGY %q", cfg.AccountIDs.Strategy)
	}
	if cfg.AccountIDs.Range <= 0 {
		return nil, fmt.Errorf("config: ACCOUNT_ID_RANGE must be positive, got %d", cfg.AccountIDs.Range)
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool { return c.Env == "production" }
