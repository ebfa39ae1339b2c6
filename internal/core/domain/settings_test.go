package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackend_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		backend  Backend
		expected bool
	}{
		{name: "file is valid", backend: BackendFile, expected: true},
		{name: "sqlite is valid", backend: BackendSQLite, expected: true},
		{name: "memory is valid", backend: BackendMemory, expected: true},
		{name: "empty string is invalid", backend: Backend(""), expected: false},
		{name: "unknown is invalid", backend: Backend("postgres"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.backend.IsValid())
		})
	}
}

func TestBackend_Description(t *testing.T) {
	assert.Contains(t, BackendFile.Description(), "File")
	assert.Contains(t, BackendSQLite.Description(), "SQLite")
	assert.Equal(t, unknownDescription, Backend("x").Description())
	assert.Equal(t, "sqlite", BackendSQLite.String())
}

func TestDefaultSettings(t *testing.T) {
	d := DefaultSettings()
	assert.Equal(t, DefaultRoot, d.Root)
	assert.Equal(t, BackendFile, d.Backend)
	assert.False(t, d.Verbose)
}

func TestIsSettingKey(t *testing.T) {
	assert.True(t, IsSettingKey(KeyArchiveRoot))
	assert.True(t, IsSettingKey(KeyArchiveBackend))
	assert.True(t, IsSettingKey(KeyLogVerbose))
	assert.False(t, IsSettingKey("archive"))
	assert.False(t, IsSettingKey(""))
}
