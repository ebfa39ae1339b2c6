package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_Empty(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("archive.root")
	assert.False(t, ok)
	assert.Empty(t, store.Keys())
	assert.Equal(t, "", store.Path())
	assert.NoError(t, store.Load())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("archive.root", "/data"))
	require.NoError(t, store.Set("log.verbose", true))

	assert.Equal(t, "/data", store.GetString("archive.root"))
	assert.True(t, store.GetBool("log.verbose"))
	assert.Equal(t, []string{"archive.root", "log.verbose"}, store.Keys())
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("archive.root", 42))
	require.NoError(t, store.Set("log.verbose", "true"))

	assert.Equal(t, "", store.GetString("archive.root"))
	assert.False(t, store.GetBool("log.verbose"))
}

func TestConfigStore_Unset(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("archive.backend", "file"))

	require.NoError(t, store.Unset("archive.backend"))
	require.NoError(t, store.Unset("never.set"))

	_, ok := store.Get("archive.backend")
	assert.False(t, ok)
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("counter", n)
			_, _ = store.Get("counter")
		}(i)
	}
	wg.Wait()

	_, ok := store.Get("counter")
	assert.True(t, ok)
}
