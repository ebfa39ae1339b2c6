package driven

import (
	"context"

	"github.com/akashic-archives/cartographer/internal/core/domain"
)

// ChangeEvent reports that a stored document was created, written or removed.
type ChangeEvent struct {
	// Key is the document that changed.
	Key domain.DocumentKey

	// TopicID is set when the document is one of a topic's record sets.
	TopicID string

	// Removed is true when the document no longer exists.
	Removed bool
}

// ChangeWatcher streams document changes from a record store.
// Optional: only backends with an observable content root provide one.
type ChangeWatcher interface {
	// Watch delivers events until ctx is cancelled or the watcher fails.
	Watch(ctx context.Context, events chan<- ChangeEvent) error
}
