package domain

const unknownDescription = "Unknown"

// Backend identifies a record store implementation.
type Backend string

// Available backends.
const (
	// BackendFile stores each document as a file under the archive root.
	BackendFile Backend = "file"

	// BackendSQLite stores documents in a single SQLite database.
	BackendSQLite Backend = "sqlite"

	// BackendMemory keeps documents in process memory.
	BackendMemory Backend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b Backend) IsValid() bool {
	switch b {
	case BackendFile, BackendSQLite, BackendMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b Backend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b Backend) Description() string {
	switch b {
	case BackendFile:
		return "File (one JSON document per file)"
	case BackendSQLite:
		return "SQLite (single database file)"
	case BackendMemory:
		return "Memory (not persisted)"
	default:
		return unknownDescription
	}
}

// Settings is the effective runtime configuration.
type Settings struct {
	// Root is the archive root directory.
	Root string

	// Backend selects the record store.
	Backend Backend

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultRoot is the archive root used when nothing else is configured.
const DefaultRoot = "akashic-archives-demo"

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Root:    DefaultRoot,
		Backend: BackendFile,
		Verbose: false,
	}
}

// Config keys under which settings are persisted.
const (
	KeyArchiveRoot    = "archive.root"
	KeyArchiveBackend = "archive.backend"
	KeyLogVerbose     = "log.verbose"
)

// IsSettingKey reports whether key is a recognised config key.
func IsSettingKey(key string) bool {
	switch key {
	case KeyArchiveRoot, KeyArchiveBackend, KeyLogVerbose:
		return true
	default:
		return false
	}
}
