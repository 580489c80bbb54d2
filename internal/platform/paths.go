package platform

// Resolver resolves the platform-specific application directories for a
// named application. Implementations are selected per OS via build tags.
type Resolver interface {
	// DataDir returns the directory for application data files
	DataDir(appName string) (string, error)
	// ConfigDir returns the directory for application configuration files
	ConfigDir(appName string) (string, error)
}
