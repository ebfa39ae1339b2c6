package driven

import (
	"context"

	"github.com/akashic-archives/cartographer/internal/core/domain"
)

// RecordStore persists named documents under a content root.
// Documents are opaque bytes; typing and tolerant decoding happen in core.
type RecordStore interface {
	// Get returns the raw document. Returns domain.ErrNotFound when no
	// document exists under key.
	Get(ctx context.Context, key domain.DocumentKey) ([]byte, error)

	// Put stores data under key, fully replacing any previous content.
	// A failed Put must not leave a partially written document behind.
	Put(ctx context.Context, key domain.DocumentKey, data []byte) error

	// List returns the keys of every document in a collection.
	List(ctx context.Context, collection string) ([]domain.DocumentKey, error)
}
