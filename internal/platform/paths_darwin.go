//go:build darwin

package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// DarwinResolver resolves application directories under the user's
// Application Support folder. macOS keeps data and config in the same place.
type DarwinResolver struct{}

// NewDarwinResolver creates a new macOS resolver instance
func NewDarwinResolver() *DarwinResolver {
	return &DarwinResolver{}
}

// NewResolver creates a new Resolver instance for macOS
func NewResolver() Resolver {
	return NewDarwinResolver()
}

func (d *DarwinResolver) supportDir(appName string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving application support directory: %w", err)
	}
	return filepath.Join(home, "Library", "Application Support", appName), nil
}

// DataDir returns ~/Library/Application Support/<app>
func (d *DarwinResolver) DataDir(appName string) (string, error) {
	return d.supportDir(appName)
}

// ConfigDir returns ~/Library/Application Support/<app>
func (d *DarwinResolver) ConfigDir(appName string) (string, error) {
	return d.supportDir(appName)
}
