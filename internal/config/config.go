package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DefaultPort           = "3001"
	DefaultTransitBaseURL = "https://api.sl.se/api2"
	DefaultTransitTimeout = 10 * time.Second
)

// Config is the process configuration, resolved once at startup and passed
// into constructors.
type Config struct {
	Port           string
	Env            string
	TransitAPIKey  string
	TransitBaseURL string
	TransitTimeout time.Duration
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           Get("PORT", DefaultPort),
		Env:            strings.ToLower(Get("APP_ENV", EnvProduction)),
		TransitAPIKey:  Get("TRANSIT_API_KEY", ""),
		TransitBaseURL: strings.TrimRight(Get("TRANSIT_BASE_URL", DefaultTransitBaseURL), "/"),
		TransitTimeout: DefaultTransitTimeout,
	}

	if raw := Get("TRANSIT_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("load config: parse TRANSIT_TIMEOUT %q: %w", raw, err)
		}
		cfg.TransitTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %q: must be an integer between 1 and 65535", c.Port)
	}

	if c.TransitBaseURL == "" {
		return errors.New("TRANSIT_BASE_URL must not be empty")
	}

	if c.TransitTimeout < 0 {
		return fmt.Errorf("TRANSIT_TIMEOUT must not be negative, got %s", c.TransitTimeout)
	}

	return nil
}

// Development reports whether raw error detail may be exposed to clients.
// Only an explicit APP_ENV=development enables it.
func (c *Config) Development() bool {
	return c.Env == EnvDevelopment
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
