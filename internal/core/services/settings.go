package services

import (
	"fmt"
	"strings"

	"github.com/akashic-archives/cartographer/internal/core/domain"
	"github.com/akashic-archives/cartographer/internal/core/ports/driven"
	"github.com/akashic-archives/cartographer/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyArchiveRoot    = domain.KeyArchiveRoot
	KeyArchiveBackend = domain.KeyArchiveBackend
	KeyLogVerbose     = domain.KeyLogVerbose
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Root:    s.getString(KeyArchiveRoot, defaults.Root),
		Backend: s.getBackend(defaults.Backend),
		Verbose: s.getBool(KeyLogVerbose, defaults.Verbose),
	}
	return settings, nil
}

// SetRoot updates the archive root.
func (s *SettingsService) SetRoot(root string) error {
	root = strings.TrimSpace(root)
	if root == "" {
		return fmt.Errorf("archive root: %w", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(KeyArchiveRoot, root); err != nil {
		return fmt.Errorf("save archive root: %w", err)
	}
	return nil
}

// SetBackend updates the record store backend.
func (s *SettingsService) SetBackend(backend domain.Backend) error {
	if !backend.IsValid() {
		return fmt.Errorf("%q: %w", backend, domain.ErrUnsupportedBackend)
	}
	if err := s.configStore.Set(KeyArchiveBackend, backend.String()); err != nil {
		return fmt.Errorf("save archive backend: %w", err)
	}
	return nil
}

// SetVerbose updates the default verbosity.
func (s *SettingsService) SetVerbose(verbose bool) error {
	if err := s.configStore.Set(KeyLogVerbose, verbose); err != nil {
		return fmt.Errorf("save log verbose: %w", err)
	}
	return nil
}

// Reset removes a stored key so its default applies again.
func (s *SettingsService) Reset(key string) error {
	if !domain.IsSettingKey(key) {
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
	if err := s.configStore.Unset(key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Path returns the config file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getBackend(defaultVal domain.Backend) domain.Backend {
	b := domain.Backend(s.configStore.GetString(KeyArchiveBackend))
	if b.IsValid() {
		return b
	}
	return defaultVal
}
