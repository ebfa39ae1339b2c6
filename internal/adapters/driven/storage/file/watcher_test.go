package file

import (
	"context"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashic-archives/cartographer/internal/core/domain"
	"github.com/akashic-archives/cartographer/internal/core/ports/driven"
)

func TestToChange(t *testing.T) {
	tests := []struct {
		name   string
		evt    fsnotify.Event
		want   driven.ChangeEvent
		wantOK bool
	}{
		{
			name:   "topic write",
			evt:    fsnotify.Event{Name: "/a/topics/ai-entities.json", Op: fsnotify.Write},
			want:   driven.ChangeEvent{Key: domain.TopicKey("ai", domain.RecordEntities), TopicID: "ai"},
			wantOK: true,
		},
		{
			name:   "index create",
			evt:    fsnotify.Event{Name: "/a/indexes/domains.json", Op: fsnotify.Create},
			want:   driven.ChangeEvent{Key: domain.DomainIndexKey()},
			wantOK: true,
		},
		{
			name:   "topic removed",
			evt:    fsnotify.Event{Name: "/a/topics/ai-media.json", Op: fsnotify.Remove},
			want:   driven.ChangeEvent{Key: domain.TopicKey("ai", domain.RecordMedia), TopicID: "ai", Removed: true},
			wantOK: true,
		},
		{
			name:   "chmod ignored",
			evt:    fsnotify.Event{Name: "/a/topics/ai-media.json", Op: fsnotify.Chmod},
			wantOK: false,
		},
		{
			name:   "temp file ignored",
			evt:    fsnotify.Event{Name: "/a/topics/.ai-media.json.tmp-1", Op: fsnotify.Create},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toChange(tt.evt)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestWatcher_ReportsTopicWrites(t *testing.T) {
	store := setupTestStore(t)
	watcher := NewWatcher(store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan driven.ChangeEvent, 16)
	done := make(chan error, 1)
	go func() { done <- watcher.Watch(ctx, events) }()

	// Writes are retried until the watcher has registered its directories.
	key := domain.TopicKey("ai", domain.RecordEntities)
	var got driven.ChangeEvent
	require.Eventually(t, func() bool {
		_ = store.Put(context.Background(), key, []byte("[]"))
		select {
		case got = <-events:
			return got.TopicID == "ai"
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, key, got.Key)
	assert.False(t, got.Removed)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
