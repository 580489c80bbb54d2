package host

// Window is the opaque window-handle capability granted by the host runtime.
// Production implementations delegate to the runtime; tests substitute
// programmable fakes.
type Window interface {
	// Minimise requests window minimization
	Minimise() error
	// Maximise requests window maximization
	Maximise() error
	// Unmaximise requests leaving the maximized state
	Unmaximise() error
	// IsMaximised queries the current maximized state
	IsMaximised() (bool, error)
	// Close requests the window be closed
	Close() error
}

// Geometry gives access to window size and position for state restore.
// Separate from Window because the command surface never needs it.
type Geometry interface {
	Size() (width, height int, err error)
	Position() (x, y int, err error)
	SetSize(width, height int) error
	SetPosition(x, y int) error
}

// Application is the opaque application-handle capability. It resolves the
// platform directories that belong to the running application.
type Application interface {
	// DataDir returns the application-data directory
	DataDir() (string, error)
	// ConfigDir returns the application-config directory
	ConfigDir() (string, error)
}
