//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// LinuxResolver resolves application directories following the XDG base
// directory specification.
type LinuxResolver struct{}

// NewLinuxResolver creates a new Linux resolver instance
func NewLinuxResolver() *LinuxResolver {
	return &LinuxResolver{}
}

// NewResolver creates a new Resolver instance for Linux
func NewResolver() Resolver {
	return NewLinuxResolver()
}

// DataDir returns $XDG_DATA_HOME/<app>, falling back to ~/.local/share/<app>
func (l *LinuxResolver) DataDir(appName string) (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving data directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// ConfigDir returns $XDG_CONFIG_HOME/<app>, falling back to ~/.config/<app>
func (l *LinuxResolver) ConfigDir(appName string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(base, appName), nil
}
