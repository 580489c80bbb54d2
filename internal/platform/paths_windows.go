//go:build windows

package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// WindowsResolver resolves application directories under the Roaming
// AppData known folder.
type WindowsResolver struct{}

// NewWindowsResolver creates a new Windows resolver instance
func NewWindowsResolver() *WindowsResolver {
	return &WindowsResolver{}
}

// NewResolver creates a new Resolver instance for Windows
func NewResolver() Resolver {
	return NewWindowsResolver()
}

func (w *WindowsResolver) roamingDir(appName string) (string, error) {
	base, err := windows.KnownFolderPath(windows.FOLDERID_RoamingAppData, 0)
	if err != nil {
		// Shell API unavailable (stripped environments); fall back to the
		// environment block the same folder is mirrored into.
		if base = os.Getenv("APPDATA"); base == "" {
			return "", fmt.Errorf("resolving roaming appdata folder: %w", err)
		}
	}
	return filepath.Join(base, appName), nil
}

// DataDir returns %APPDATA%\<app>
func (w *WindowsResolver) DataDir(appName string) (string, error) {
	return w.roamingDir(appName)
}

// ConfigDir returns %APPDATA%\<app>
func (w *WindowsResolver) ConfigDir(appName string) (string, error) {
	return w.roamingDir(appName)
}
