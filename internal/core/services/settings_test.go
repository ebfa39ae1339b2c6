package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashic-archives/cartographer/internal/adapters/driven/storage/memory"
	"github.com/akashic-archives/cartographer/internal/core/domain"
)

// failingConfigStore rejects every write.
type failingConfigStore struct {
	*memory.ConfigStore
}

func (f *failingConfigStore) Set(string, any) error { return errors.New("disk full") }
func (f *failingConfigStore) Unset(string) error    { return errors.New("disk full") }

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
	assert.Equal(t, domain.DefaultSettings(), service.GetDefaults())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyArchiveRoot, "/data/archive")
	_ = store.Set(KeyArchiveBackend, "sqlite")
	_ = store.Set(KeyLogVerbose, true)
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.Settings{Root: "/data/archive", Backend: domain.BackendSQLite, Verbose: true}, *settings)
}

func TestSettingsService_Get_InvalidBackendReturnsDefault(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyArchiveBackend, "postgres")
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.BackendFile, settings.Backend)
}

func TestSettingsService_SetRoot(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetRoot("  /srv/archive  "))
	assert.Equal(t, "/srv/archive", store.GetString(KeyArchiveRoot))

	assert.ErrorIs(t, service.SetRoot(" "), domain.ErrInvalidInput)
}

func TestSettingsService_SetBackend(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetBackend(domain.BackendMemory))
	assert.Equal(t, "memory", store.GetString(KeyArchiveBackend))

	assert.ErrorIs(t, service.SetBackend(domain.Backend("tape")), domain.ErrUnsupportedBackend)
}

func TestSettingsService_SetVerbose(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetVerbose(true))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.True(t, settings.Verbose)
}

func TestSettingsService_Reset(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	require.NoError(t, service.SetRoot("/custom"))

	require.NoError(t, service.Reset(KeyArchiveRoot))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRoot, settings.Root)
	assert.ErrorIs(t, service.Reset("search.mode"), domain.ErrInvalidInput)
}

func TestSettingsService_WriteErrors(t *testing.T) {
	service := NewSettingsService(&failingConfigStore{ConfigStore: memory.NewConfigStore()})

	assert.Error(t, service.SetRoot("/data"))
	assert.Error(t, service.SetBackend(domain.BackendFile))
	assert.Error(t, service.SetVerbose(true))
	assert.Error(t, service.Reset(KeyLogVerbose))
}

func TestSettingsService_Path(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, "", service.Path())
}

