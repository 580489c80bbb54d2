package host

import (
	"context"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"aperture/internal/platform"
)

// WailsWindow implements Window and Geometry against the Wails runtime.
// The runtime context is only valid from Startup onward.
type WailsWindow struct {
	ctx context.Context
}

// NewWailsWindow creates a window handle bound to the runtime context
func NewWailsWindow(ctx context.Context) *WailsWindow {
	return &WailsWindow{ctx: ctx}
}

// Minimise requests window minimization. The runtime call has no error
// channel; a nil return means the request was dispatched, not that it
// succeeded.
func (w *WailsWindow) Minimise() error {
	wailsruntime.WindowMinimise(w.ctx)
	return nil
}

// Maximise requests window maximization
func (w *WailsWindow) Maximise() error {
	wailsruntime.WindowMaximise(w.ctx)
	return nil
}

// Unmaximise requests leaving the maximized state
func (w *WailsWindow) Unmaximise() error {
	wailsruntime.WindowUnmaximise(w.ctx)
	return nil
}

// IsMaximised queries the current maximized state from the runtime
func (w *WailsWindow) IsMaximised() (bool, error) {
	return wailsruntime.WindowIsMaximised(w.ctx), nil
}

// Close ends the application. Wails v2 is single-window, so closing the
// window and quitting are the same request; close-prevention stays in the
// BeforeClose hook.
func (w *WailsWindow) Close() error {
	wailsruntime.Quit(w.ctx)
	return nil
}

// Size returns the current window size
func (w *WailsWindow) Size() (int, int, error) {
	width, height := wailsruntime.WindowGetSize(w.ctx)
	return width, height, nil
}

// Position returns the current window position
func (w *WailsWindow) Position() (int, int, error) {
	x, y := wailsruntime.WindowGetPosition(w.ctx)
	return x, y, nil
}

// SetSize resizes the window
func (w *WailsWindow) SetSize(width, height int) error {
	wailsruntime.WindowSetSize(w.ctx, width, height)
	return nil
}

// SetPosition moves the window
func (w *WailsWindow) SetPosition(x, y int) error {
	wailsruntime.WindowSetPosition(w.ctx, x, y)
	return nil
}

// AppHandle implements Application on top of the per-OS path resolver
type AppHandle struct {
	appName  string
	resolver platform.Resolver
}

// NewAppHandle creates an application handle for the named application
func NewAppHandle(appName string) *AppHandle {
	return &AppHandle{
		appName:  appName,
		resolver: platform.NewResolver(),
	}
}

// NewAppHandleWithResolver creates an application handle with an explicit
// resolver (used by tests)
func NewAppHandleWithResolver(appName string, resolver platform.Resolver) *AppHandle {
	return &AppHandle{appName: appName, resolver: resolver}
}

// DataDir returns the application-data directory
func (a *AppHandle) DataDir() (string, error) {
	return a.resolver.DataDir(a.appName)
}

// ConfigDir returns the application-config directory
func (a *AppHandle) ConfigDir() (string, error) {
	return a.resolver.ConfigDir(a.appName)
}
