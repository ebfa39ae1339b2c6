package file

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), store.Path())
}

func TestDefaultConfigDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".cartographer"), dir)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("archive.root", "/data/archive"))
	require.NoError(t, store.Set("log.verbose", true))

	val, ok := store.Get("archive.root")
	assert.True(t, ok)
	assert.Equal(t, "/data/archive", val)
	assert.Equal(t, "/data/archive", store.GetString("archive.root"))
	assert.True(t, store.GetBool("log.verbose"))
	assert.Equal(t, []string{"archive.root", "log.verbose"}, store.Keys())
}

func TestConfigStore_TypeMismatch(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("archive.root", true))
	require.NoError(t, store.Set("log.verbose", "yes"))

	assert.Equal(t, "", store.GetString("archive.root"))
	assert.False(t, store.GetBool("log.verbose"))
	assert.Equal(t, "", store.GetString("missing"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("archive.root", "/data"))
	require.NoError(t, store.Set("archive.backend", "sqlite"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "[archive]")
	assert.True(t, strings.Contains(content, "backend = 'sqlite'") || strings.Contains(content, `backend = "sqlite"`))
}

func TestConfigStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("archive.root", "/data"))
	require.NoError(t, store.Set("log.verbose", true))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/data", reloaded.GetString("archive.root"))
	assert.True(t, reloaded.GetBool("log.verbose"))
}

func TestConfigStore_Unset(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("archive.root", "/data"))
	require.NoError(t, store.Unset("archive.root"))

	_, ok := store.Get("archive.root")
	assert.False(t, ok)

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Keys())
}

func TestConfigStore_LoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("not = [valid"), 0o600))

	store, err := NewConfigStore(dir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), nil, 0o600))

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.Empty(t, store.Keys())
}

func TestConfigStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes differ on windows")
	}
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("archive.root", "/data"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set("archive.backend", "file")
			_ = store.GetString("archive.backend")
			_ = store.Keys()
		}()
	}
	wg.Wait()

	assert.Equal(t, "file", store.GetString("archive.backend"))
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"archive": map[string]any{"root": "/r", "backend": "file"},
		"top":     1,
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{"archive.root": "/r", "archive.backend": "file", "top": 1}, flat)
	assert.Equal(t, nested, nestMap(flat))
}

func TestNestMap_ValueWinsOverTable(t *testing.T) {
	got := nestMap(map[string]any{"a": "value", "a.b": "lost"})
	assert.Equal(t, map[string]any{"a": "value"}, got)
}
