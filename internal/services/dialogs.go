package services

import (
	"context"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	hosterrors "aperture/internal/infrastructure/errors"
	"aperture/internal/infrastructure/logging"
)

// DialogService exposes native file and message dialogs to the frontend.
// All dialogs are modal to the shell window; cancellation yields an empty
// path, not an error.
type DialogService struct {
	ctx    context.Context
	logger logging.Logger
}

// NewDialogService creates a dialog service
func NewDialogService(logger logging.Logger) *DialogService {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &DialogService{logger: logger}
}

// SetContext binds the runtime context; called once at startup
func (d *DialogService) SetContext(ctx context.Context) {
	d.ctx = ctx
}

// OpenFile shows a native open-file dialog filtered to pattern
// (e.g. "*.txt;*.md"). Returns the selected path, or "" if cancelled.
func (d *DialogService) OpenFile(title, displayName, pattern string) (string, error) {
	path, err := wailsruntime.OpenFileDialog(d.ctx, wailsruntime.OpenDialogOptions{
		Title: title,
		Filters: []wailsruntime.FileFilter{
			{DisplayName: displayName, Pattern: pattern},
		},
	})
	if err != nil {
		return "", hosterrors.NewHostError("OpenFile", err, hosterrors.ErrCodeDialog)
	}
	return path, nil
}

// SaveFile shows a native save-file dialog with a suggested filename.
// Returns the chosen path, or "" if cancelled.
func (d *DialogService) SaveFile(title, defaultFilename string) (string, error) {
	path, err := wailsruntime.SaveFileDialog(d.ctx, wailsruntime.SaveDialogOptions{
		Title:           title,
		DefaultFilename: defaultFilename,
	})
	if err != nil {
		return "", hosterrors.NewHostError("SaveFile", err, hosterrors.ErrCodeDialog)
	}
	return path, nil
}

// OpenDirectory shows a native directory picker.
// Returns the selected directory, or "" if cancelled.
func (d *DialogService) OpenDirectory(title string) (string, error) {
	path, err := wailsruntime.OpenDirectoryDialog(d.ctx, wailsruntime.OpenDialogOptions{
		Title: title,
	})
	if err != nil {
		return "", hosterrors.NewHostError("OpenDirectory", err, hosterrors.ErrCodeDialog)
	}
	return path, nil
}

// Message shows an informational message dialog and returns the pressed
// button label
func (d *DialogService) Message(title, message string) (string, error) {
	result, err := wailsruntime.MessageDialog(d.ctx, wailsruntime.MessageDialogOptions{
		Type:    wailsruntime.InfoDialog,
		Title:   title,
		Message: message,
	})
	if err != nil {
		return "", hosterrors.NewHostError("Message", err, hosterrors.ErrCodeDialog)
	}
	return result, nil
}
