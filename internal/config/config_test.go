package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with empty environment failed: %v", err)
	}

	if cfg.AppName != "aperture" {
		t.Errorf("AppName = %q, want %q", cfg.AppName, "aperture")
	}
	if cfg.Environment != "production" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "production")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.WindowWidth != 1100 || cfg.WindowHeight != 720 {
		t.Errorf("window geometry = %dx%d, want 1100x720", cfg.WindowWidth, cfg.WindowHeight)
	}
	if len(cfg.ShellAllowlist) != 0 {
		t.Errorf("ShellAllowlist = %v, want empty by default", cfg.ShellAllowlist)
	}
	if cfg.ShellTimeout != 30*time.Second {
		t.Errorf("ShellTimeout = %v, want 30s", cfg.ShellTimeout)
	}
	if cfg.DisablePersistence {
		t.Error("DisablePersistence = true, want false by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APERTURE_APP_NAME", "demo")
	t.Setenv("APERTURE_ENV", "development")
	t.Setenv("APERTURE_LOG_LEVEL", "debug")
	t.Setenv("APERTURE_WINDOW_WIDTH", "800")
	t.Setenv("APERTURE_WINDOW_HEIGHT", "600")
	t.Setenv("APERTURE_SHELL_ALLOWLIST", "git,rg")
	t.Setenv("APERTURE_SHELL_TIMEOUT", "5s")
	t.Setenv("APERTURE_NO_PERSIST", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.AppName != "demo" {
		t.Errorf("AppName = %q, want %q", cfg.AppName, "demo")
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "development")
	}
	if cfg.WindowWidth != 800 || cfg.WindowHeight != 600 {
		t.Errorf("window geometry = %dx%d, want 800x600", cfg.WindowWidth, cfg.WindowHeight)
	}
	if len(cfg.ShellAllowlist) != 2 || cfg.ShellAllowlist[0] != "git" || cfg.ShellAllowlist[1] != "rg" {
		t.Errorf("ShellAllowlist = %v, want [git rg]", cfg.ShellAllowlist)
	}
	if cfg.ShellTimeout != 5*time.Second {
		t.Errorf("ShellTimeout = %v, want 5s", cfg.ShellTimeout)
	}
	if !cfg.DisablePersistence {
		t.Error("DisablePersistence = false, want true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid defaults", mutate: func(c *Config) {}, wantErr: false},
		{name: "empty app name", mutate: func(c *Config) { c.AppName = "" }, wantErr: true},
		{name: "zero width", mutate: func(c *Config) { c.WindowWidth = 0 }, wantErr: true},
		{name: "negative height", mutate: func(c *Config) { c.WindowHeight = -1 }, wantErr: true},
		{name: "min exceeds default", mutate: func(c *Config) { c.MinWidth = 4000 }, wantErr: true},
		{name: "zero shell timeout", mutate: func(c *Config) { c.ShellTimeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				AppName:      "aperture",
				Environment:  "production",
				LogLevel:     "info",
				WindowWidth:  1100,
				WindowHeight: 720,
				MinWidth:     480,
				MinHeight:    320,
				ShellTimeout: 30 * time.Second,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
