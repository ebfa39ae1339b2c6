package file

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashic-archives/cartographer/internal/core/domain"
)

func setupTestStore(t *testing.T) *RecordStore {
	t.Helper()
	store, err := NewRecordStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewRecordStore_EmptyRoot(t *testing.T) {
	store, err := NewRecordStore("  ")
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewRecordStore_AbsoluteRoot(t *testing.T) {
	store, err := NewRecordStore("relative/archive")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(store.Root()))
}

func TestRecordStore_Path(t *testing.T) {
	store := setupTestStore(t)

	path, err := store.Path(domain.TopicKey("ai", domain.RecordEntities))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.Root(), "topics", "ai-entities.json"), path)
}

func TestRecordStore_KeysOutsideRoot(t *testing.T) {
	parent := t.TempDir()
	store, err := NewRecordStore(filepath.Join(parent, "archive"))
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name string
		key  domain.DocumentKey
	}{
		{"parent traversal in name", domain.ExportKey("../../escaped", domain.ExportJSON)},
		{"traversal to sibling", domain.TopicKey("../../archive-copy/x", domain.RecordEntities)},
		{"collection traversal", domain.DocumentKey{Collection: "..", Name: "domains", Format: "json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Path(tt.key)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			err = store.Put(ctx, tt.key, []byte(`[]`))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			_, err = store.Get(ctx, tt.key)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err = store.List(ctx, "../..")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	leaked, err := filepath.Glob(filepath.Join(parent, "*.json"))
	require.NoError(t, err)
	assert.Empty(t, leaked)
	assert.NoDirExists(t, filepath.Join(parent, "archive-copy"))
}

func TestRecordStore_GetMissing(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Get(context.Background(), domain.TopicKey("ai", domain.RecordMedia))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStore_PutGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	key := domain.DomainIndexKey()

	require.NoError(t, store.Put(ctx, key, []byte(`[{"id":"ai"}]`)))

	data, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"ai"}]`, string(data))
	assert.FileExists(t, filepath.Join(store.Root(), "indexes", "domains.json"))
}

func TestRecordStore_PutOverwritesAndLeavesNoTempFiles(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	key := domain.TopicKey("ai", domain.RecordSources)

	require.NoError(t, store.Put(ctx, key, []byte("a much longer first document")))
	require.NoError(t, store.Put(ctx, key, []byte("[]")))

	data, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	entries, err := os.ReadDir(filepath.Join(store.Root(), "topics"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ai-sources.json", entries[0].Name())
}

func TestRecordStore_PutFailureKeepsPreviousDocument(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}
	store := setupTestStore(t)
	ctx := context.Background()
	key := domain.TopicKey("ai", domain.RecordEntities)

	require.NoError(t, store.Put(ctx, key, []byte("[1]")))
	dir := filepath.Join(store.Root(), "topics")
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	err := store.Put(ctx, key, []byte("[2]"))
	require.Error(t, err)

	data, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(data))
}

func TestRecordStore_List(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, domain.TopicKey("b", domain.RecordEntities), []byte("[]")))
	require.NoError(t, store.Put(ctx, domain.TopicKey("a", domain.RecordMedia), []byte("[]")))
	require.NoError(t, store.Put(ctx, domain.ExportKey("a", domain.ExportCSV), []byte("type,id,name,desc\n")))

	topicsDir := filepath.Join(store.Root(), "topics")
	require.NoError(t, os.WriteFile(filepath.Join(topicsDir, ".hidden.json.tmp-x"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(topicsDir, "README"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(topicsDir, "nested.json"), 0o755))

	keys, err := store.List(ctx, domain.CollectionTopics)
	require.NoError(t, err)

	require.Len(t, keys, 3)
	assert.Equal(t, domain.DocumentKey{Collection: "topics", Name: "a-export", Format: "csv"}, keys[0])
	assert.Equal(t, domain.DocumentKey{Collection: "topics", Name: "a-media", Format: "json"}, keys[1])
	assert.Equal(t, domain.DocumentKey{Collection: "topics", Name: "b-entities", Format: "json"}, keys[2])
}

func TestRecordStore_ListMissingCollection(t *testing.T) {
	store := setupTestStore(t)

	keys, err := store.List(context.Background(), domain.CollectionIndexes)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestRecordStore_CancelledContext(t *testing.T) {
	store := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, domain.DomainIndexKey())
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Put(ctx, domain.DomainIndexKey(), nil), context.Canceled)
	_, err = store.List(ctx, domain.CollectionTopics)
	assert.ErrorIs(t, err, context.Canceled)
}
