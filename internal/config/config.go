package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds process-wide shell configuration, populated from the
// environment. Every value has a default so the shell runs with no
// environment at all.
type Config struct {
	// Application identity; also the directory name under the platform
	// data/config roots.
	AppName string `env:"APERTURE_APP_NAME" envDefault:"aperture"`

	// Environment selects runtime behavior (e.g. settings database path)
	Environment string `env:"APERTURE_ENV" envDefault:"production"`

	// LogLevel is the minimum emitted log level: debug, info, warn, error
	LogLevel string `env:"APERTURE_LOG_LEVEL" envDefault:"info"`

	// Default window geometry, used when no saved state exists
	WindowWidth  int `env:"APERTURE_WINDOW_WIDTH" envDefault:"1100"`
	WindowHeight int `env:"APERTURE_WINDOW_HEIGHT" envDefault:"720"`
	MinWidth     int `env:"APERTURE_WINDOW_MIN_WIDTH" envDefault:"480"`
	MinHeight    int `env:"APERTURE_WINDOW_MIN_HEIGHT" envDefault:"320"`

	// ShellAllowlist is the set of external commands the shell service may
	// execute. Empty means no command is allowed.
	ShellAllowlist []string `env:"APERTURE_SHELL_ALLOWLIST" envSeparator:","`

	// ShellTimeout bounds a single external command execution
	ShellTimeout time.Duration `env:"APERTURE_SHELL_TIMEOUT" envDefault:"30s"`

	// DisablePersistence skips the window-state store entirely
	DisablePersistence bool `env:"APERTURE_NO_PERSIST" envDefault:"false"`
}

// Load parses configuration from the environment and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks invariants the env parser cannot express
func (c *Config) Validate() error {
	if c.AppName == "" {
		return fmt.Errorf("app name must not be empty")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window geometry must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.MinWidth > c.WindowWidth || c.MinHeight > c.WindowHeight {
		return fmt.Errorf("minimum window size %dx%d exceeds default size %dx%d",
			c.MinWidth, c.MinHeight, c.WindowWidth, c.WindowHeight)
	}
	if c.ShellTimeout <= 0 {
		return fmt.Errorf("shell timeout must be positive, got %v", c.ShellTimeout)
	}
	return nil
}
