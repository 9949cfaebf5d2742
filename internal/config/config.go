package config

import (
	"fmt"
	dt "humandate/internal/core/domain/datetime"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode      bool          `env:"TEST_MODE" envDefault:"false"`
	Port            uint16        `env:"PORT" envDefault:"8080"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"20s"`

	// RedisURL is optional. Without it requests are not rate limited.
	RedisURL           string `env:"REDIS_URL"`
	RateLimitPerMinute uint16 `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`

	DefaultTimeZone     string `env:"DEFAULT_TIME_ZONE" envDefault:"UTC"`
	AllowRelativeTokens bool   `env:"ALLOW_RELATIVE_TOKENS" envDefault:"true"`
	BareYearPolicy      string `env:"BARE_YEAR_POLICY" envDefault:"january_first"`

	location       *time.Location
	bareYearPolicy dt.BareYearPolicy
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(cfg.DefaultTimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_TIME_ZONE value: %w", err)
	}
	cfg.location = location

	policy, err := dt.ParseBareYearPolicy(cfg.BareYearPolicy)
	if err != nil {
		return nil, fmt.Errorf("invalid BARE_YEAR_POLICY value: %w", err)
	}
	cfg.bareYearPolicy = policy

	return cfg, nil
}

// Location is the time zone used for requests that do not name one.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c *Config) ParserDefaults() dt.Options {
	options := dt.DefaultOptions()
	options.AllowRelativeTokens = c.AllowRelativeTokens
	if c.bareYearPolicy != "" {
		options.BareYearPolicy = c.bareYearPolicy
	}
	return options
}
