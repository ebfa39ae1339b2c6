package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/akashic-archives/cartographer/internal/core/domain"
	"github.com/akashic-archives/cartographer/internal/core/ports/driven"
	"github.com/akashic-archives/cartographer/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.ChangeWatcher = (*Watcher)(nil)

// Watcher reports changes to the topic and index documents of a RecordStore.
type Watcher struct {
	store *RecordStore
}

// NewWatcher creates a watcher for store's root.
func NewWatcher(store *RecordStore) *Watcher {
	return &Watcher{store: store}
}

// Watch delivers change events until ctx is cancelled. Both watched
// collection directories are created if missing.
func (w *Watcher) Watch(ctx context.Context, events chan<- driven.ChangeEvent) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	for _, collection := range []string{domain.CollectionTopics, domain.CollectionIndexes} {
		dir := filepath.Join(w.store.Root(), collection)
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		logger.Debug("watching %s", dir)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-fw.Events:
			if !ok {
				return nil
			}
			change, ok := toChange(evt)
			if !ok {
				continue
			}
			select {
			case events <- change:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

// toChange maps an fsnotify event to a ChangeEvent. Chmod-only events and
// temp files are dropped.
func toChange(evt fsnotify.Event) (driven.ChangeEvent, bool) {
	if !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Write) &&
		!evt.Has(fsnotify.Remove) && !evt.Has(fsnotify.Rename) {
		return driven.ChangeEvent{}, false
	}

	collection := filepath.Base(filepath.Dir(evt.Name))
	key, ok := keyFromName(collection, filepath.Base(evt.Name))
	if !ok {
		return driven.ChangeEvent{}, false
	}

	change := driven.ChangeEvent{
		Key:     key,
		Removed: evt.Has(fsnotify.Remove) || evt.Has(fsnotify.Rename),
	}
	if id, ok := domain.TopicIDFromKey(key); ok {
		change.TopicID = id
	}
	return change, true
}
