package app

import (
	"context"
	"time"

	"aperture/internal/config"
	"aperture/internal/host"
	hosterrors "aperture/internal/infrastructure/errors"
	"aperture/internal/infrastructure/logging"
	"aperture/internal/settings"
	"aperture/internal/types"
)

const (
	// shutdownSaveTimeout bounds the final window-state save
	shutdownSaveTimeout = 5 * time.Second
)

// App is the bound shell object: lifecycle hooks for the runtime plus the
// command surface invoked by the frontend.
type App struct {
	ctx       context.Context
	config    *config.Config
	logger    logging.Logger
	window    host.Window
	geometry  host.Geometry
	appHandle host.Application
	store     *settings.Store

	// persistence is cleared when the settings store is unavailable; the
	// shell keeps running without saved window state.
	persistence bool
}

// NewApp creates the shell application with dependency injection
func NewApp(cfg *config.Config) *App {
	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel))
	hosterrors.SetRetryLogger(hosterrors.NewLoggerBridge(logger))

	return &App{
		config:      cfg,
		logger:      logger,
		appHandle:   host.NewAppHandle(cfg.AppName),
		store:       settings.NewStore(logger),
		persistence: !cfg.DisablePersistence,
	}
}

// Logger returns the application's structured logger
func (a *App) Logger() logging.Logger {
	return a.logger
}

// AppHandle returns the application-handle capability. Other components that
// need the application directories (e.g. filesystem scoping) share this
// handle so their view of the paths cannot diverge from GetAppPaths.
func (a *App) AppHandle() host.Application {
	return a.appHandle
}

// Startup is called by the runtime once the window exists
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	if a.window == nil {
		w := host.NewWailsWindow(ctx)
		a.window = w
		a.geometry = w
	}

	if a.persistence {
		if err := a.openStore(ctx); err != nil {
			logging.LogHostError(a.logger, err, "startup", map[string]interface{}{
				"environment": a.config.Environment,
			})
			a.logger.Warn("Continuing without window-state persistence")
			a.persistence = false
		} else {
			a.restoreWindowState(ctx)
		}
	}

	a.logger.Info("Shell started",
		"app", a.config.AppName,
		"environment", a.config.Environment)
}

// openStore resolves the config directory and opens the settings store
func (a *App) openStore(ctx context.Context) error {
	configDir, err := a.appHandle.ConfigDir()
	if err != nil {
		return hosterrors.NewHostError("openStore", err, hosterrors.ErrCodePathResolution)
	}

	storeCfg := settings.ConfigForEnvironment(a.config.Environment, configDir)
	if err := a.store.Open(ctx, storeCfg); err != nil {
		return err
	}
	return a.store.Health(ctx)
}

// restoreWindowState applies the saved geometry, if any. A geometry failure
// degrades to the default geometry; the shell still starts.
func (a *App) restoreWindowState(ctx context.Context) {
	state, err := a.store.Load(ctx)
	if err != nil {
		logging.LogHostError(a.logger, err, "restore_window_state", nil)
		return
	}
	if state.IsZero() {
		return
	}

	if err := a.applyWindowState(state); err != nil {
		logging.LogHostError(a.logger, err, "restore_window_state", nil)
		return
	}

	a.logger.Debug("Restored window state",
		"width", state.Width, "height", state.Height,
		"maximized", state.Maximized)
}

// applyWindowState pushes saved geometry to the window handle
func (a *App) applyWindowState(state types.WindowState) error {
	if err := a.geometry.SetSize(state.Width, state.Height); err != nil {
		return hosterrors.NewHostError("applyWindowState", err, hosterrors.ErrCodeWindowState)
	}
	if err := a.geometry.SetPosition(state.X, state.Y); err != nil {
		return hosterrors.NewHostError("applyWindowState", err, hosterrors.ErrCodeWindowState)
	}
	if state.Maximized {
		_ = a.window.Maximise()
	}
	return nil
}

// DomReady is called after front-end resources have been loaded
func (a *App) DomReady(ctx context.Context) {
}

// BeforeClose is called when the window is about to close; returning true
// would keep it open
func (a *App) BeforeClose(ctx context.Context) (prevent bool) {
	return false
}

// Shutdown is called at application termination
func (a *App) Shutdown(ctx context.Context) {
	if !a.persistence {
		return
	}

	saveCtx, cancel := context.WithTimeout(ctx, shutdownSaveTimeout)
	defer cancel()

	if err := a.saveWindowState(saveCtx); err != nil {
		logging.LogHostError(a.logger, err, "shutdown", nil)
	}
	if err := a.store.Close(); err != nil {
		logging.LogHostError(a.logger, err, "shutdown", nil)
	}
}

// saveWindowState captures the current geometry into the settings store
func (a *App) saveWindowState(ctx context.Context) error {
	maximized, err := a.window.IsMaximised()
	if err != nil {
		maximized = false
	}

	var state types.WindowState
	state.Maximized = maximized

	if maximized {
		// Geometry of a maximized window is the maximized size; record the
		// defaults so restore does not bake it in.
		state.Width = a.config.WindowWidth
		state.Height = a.config.WindowHeight
	} else {
		w, h, err := a.geometry.Size()
		if err != nil {
			return hosterrors.NewHostError("saveWindowState", err, hosterrors.ErrCodeWindowState)
		}
		x, y, err := a.geometry.Position()
		if err != nil {
			return hosterrors.NewHostError("saveWindowState", err, hosterrors.ErrCodeWindowState)
		}
		state.Width = w
		state.Height = h
		state.X = x
		state.Y = y
	}

	return a.store.Save(ctx, state)
}

// GetAppPaths resolves the application-data and application-config
// directories. Resolution failure is returned to the caller; there is no
// partial result.
func (a *App) GetAppPaths() (*types.AppPaths, error) {
	dataDir, err := a.appHandle.DataDir()
	if err != nil {
		return nil, hosterrors.NewHostError("GetAppPaths", err, hosterrors.ErrCodePathResolution)
	}

	configDir, err := a.appHandle.ConfigDir()
	if err != nil {
		return nil, hosterrors.NewHostError("GetAppPaths", err, hosterrors.ErrCodePathResolution)
	}

	return &types.AppPaths{
		AppData:   dataDir,
		AppConfig: configDir,
	}, nil
}

// MinimizeWindow requests window minimization. Best-effort: a failed request
// is discarded.
func (a *App) MinimizeWindow() {
	_ = a.window.Minimise()
}

// MaximizeWindow toggles the maximized state. The state is queried first; a
// failed query counts as "not maximized" so the toggle still runs. The
// read-then-act pair is not atomic against concurrent state changes; the
// authoritative state lives in the host runtime. Action failure is discarded.
func (a *App) MaximizeWindow() {
	maximised, err := a.window.IsMaximised()
	if err != nil {
		maximised = false
	}

	if maximised {
		_ = a.window.Unmaximise()
	} else {
		_ = a.window.Maximise()
	}
}

// CloseWindow requests the window be closed. Best-effort: a failed request
// is discarded.
func (a *App) CloseWindow() {
	_ = a.window.Close()
}

// IsMaximized reports the current maximized state. A failed query maps to
// false, never an error.
func (a *App) IsMaximized() bool {
	maximised, err := a.window.IsMaximised()
	if err != nil {
		return false
	}
	return maximised
}
