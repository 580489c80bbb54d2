package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	hosterrors "aperture/internal/infrastructure/errors"
	"aperture/internal/infrastructure/logging"
)

// FSService gives the frontend scoped filesystem access. Every path must
// resolve inside one of the scope directories granted at startup (the
// application data and config directories); anything else is rejected before
// touching the filesystem.
type FSService struct {
	scopes []string
	logger logging.Logger
}

// NewFSService creates a filesystem service restricted to the given scope
// directories. Scopes must be absolute paths.
func NewFSService(logger logging.Logger, scopes ...string) *FSService {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	cleaned := make([]string, 0, len(scopes))
	for _, s := range scopes {
		if s != "" {
			cleaned = append(cleaned, filepath.Clean(s))
		}
	}
	return &FSService{scopes: cleaned, logger: logger}
}

// resolve validates that path lies inside a granted scope and returns its
// cleaned form
func (f *FSService) resolve(op, path string) (string, error) {
	if !filepath.IsAbs(path) {
		return "", hosterrors.NewHostErrorWithContext(op,
			fmt.Errorf("path must be absolute"),
			hosterrors.ErrCodeScope,
			map[string]string{"path": path})
	}

	cleaned := filepath.Clean(path)
	for _, scope := range f.scopes {
		rel, err := filepath.Rel(scope, cleaned)
		if err != nil {
			continue
		}
		if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return cleaned, nil
	}

	return "", hosterrors.NewHostErrorWithContext(op,
		fmt.Errorf("path %q is outside the granted filesystem scope", path),
		hosterrors.ErrCodeScope,
		map[string]string{"path": path})
}

// ReadTextFile returns the contents of a file inside the granted scope
func (f *FSService) ReadTextFile(path string) (string, error) {
	resolved, err := f.resolve("ReadTextFile", path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", hosterrors.NewHostErrorWithContext("ReadTextFile", err,
			hosterrors.ErrCodePermission,
			map[string]string{"path": resolved})
	}
	return string(data), nil
}

// WriteTextFile writes content to a file inside the granted scope, creating
// parent directories as needed
func (f *FSService) WriteTextFile(path, content string) error {
	resolved, err := f.resolve("WriteTextFile", path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return hosterrors.NewHostErrorWithContext("WriteTextFile", err,
			hosterrors.ErrCodePermission,
			map[string]string{"path": resolved})
	}
	if err := os.WriteFile(resolved, []byte(content), 0o644); err != nil {
		return hosterrors.NewHostErrorWithContext("WriteTextFile", err,
			hosterrors.ErrCodePermission,
			map[string]string{"path": resolved})
	}
	return nil
}

// Exists reports whether a path inside the granted scope exists
func (f *FSService) Exists(path string) (bool, error) {
	resolved, err := f.resolve("Exists", path)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(resolved); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, hosterrors.NewHostErrorWithContext("Exists", err,
			hosterrors.ErrCodePermission,
			map[string]string{"path": resolved})
	}
	return true, nil
}

// MakeDir creates a directory (and parents) inside the granted scope
func (f *FSService) MakeDir(path string) error {
	resolved, err := f.resolve("MakeDir", path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(resolved, 0o755); err != nil {
		return hosterrors.NewHostErrorWithContext("MakeDir", err,
			hosterrors.ErrCodePermission,
			map[string]string{"path": resolved})
	}
	return nil
}

// RemoveFile deletes a single file inside the granted scope. Directories are
// refused; scope roots cannot be removed through this service.
func (f *FSService) RemoveFile(path string) error {
	resolved, err := f.resolve("RemoveFile", path)
	if err != nil {
		return err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return hosterrors.NewHostErrorWithContext("RemoveFile", err,
			hosterrors.ErrCodePermission,
			map[string]string{"path": resolved})
	}
	if info.IsDir() {
		return hosterrors.NewHostErrorWithContext("RemoveFile",
			fmt.Errorf("%q is a directory", path),
			hosterrors.ErrCodeValidation,
			map[string]string{"path": resolved})
	}
	if err := os.Remove(resolved); err != nil {
		return hosterrors.NewHostErrorWithContext("RemoveFile", err,
			hosterrors.ErrCodePermission,
			map[string]string{"path": resolved})
	}
	return nil
}
