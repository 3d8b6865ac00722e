package cache

// Backend names for the cache store selection.
const (
	BackendMemory   = "memory"
	BackendDatabase = "database"
)

// Config holds configuration for the response cache.
type Config struct {
	// Backend selects the cache store (memory, database). The database
	// backend needs a working database connection and falls back to
	// memory without one.
	Backend string `mapstructure:"backend" default:"memory"`
}

// IsValidBackend checks if the configured backend is valid.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendMemory, BackendDatabase:
		return true
	default:
		return false
	}
}
