package settings

import (
	"fmt"
	"path/filepath"
)

// Config holds settings-store configuration
type Config struct {
	// Path is the SQLite database file path
	Path string
	// BusyTimeoutMs is passed to the driver so concurrent opens wait instead
	// of failing immediately
	BusyTimeoutMs int
}

// ConfigForEnvironment returns the store configuration for the given
// environment, rooted at the application config directory. Development gets
// its own database file so it never clobbers real settings.
func ConfigForEnvironment(environment, configDir string) *Config {
	name := "settings.db"
	if environment != "production" {
		name = fmt.Sprintf("settings-%s.db", environment)
	}
	return &Config{
		Path:          filepath.Join(configDir, name),
		BusyTimeoutMs: 5000,
	}
}

// ConnectionString builds the sqlite3 DSN for this configuration
func (c *Config) ConnectionString() string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_foreign_keys=on",
		c.Path, c.BusyTimeoutMs)
}
