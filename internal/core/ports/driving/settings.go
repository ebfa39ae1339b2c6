package driving

import "github.com/akashic-archives/cartographer/internal/core/domain"

// SettingsService manages persisted application settings.
type SettingsService interface {
	// Get returns the settings stored in the config file, with defaults
	// applied for missing keys.
	Get() (*domain.Settings, error)

	// SetRoot updates the archive root.
	SetRoot(root string) error

	// SetBackend updates the record store backend.
	SetBackend(backend domain.Backend) error

	// SetVerbose updates the default verbosity.
	SetVerbose(verbose bool) error

	// Reset removes a stored key so its default applies again.
	Reset(key string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// Path returns the config file path.
	Path() string
}
