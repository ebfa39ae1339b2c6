package driving

import (
	"context"

	"github.com/akashic-archives/cartographer/internal/core/domain"
)

// ArchiveService loads topics and the domain index.
type ArchiveService interface {
	// ListDomains returns the domain index in stored order.
	ListDomains(ctx context.Context) ([]domain.DomainEntry, error)

	// ListTopicIDs returns topic ids physically present in storage.
	// Diagnostic only; it may diverge from the domain index.
	ListTopicIDs(ctx context.Context) ([]string, error)

	// LoadSnapshot materialises a topic's four record sets.
	LoadSnapshot(ctx context.Context, topicID string) (*domain.Snapshot, error)

	// ResolveDomain maps a 1-based index position or a topic id to its
	// domain index entry.
	ResolveDomain(ctx context.Context, ref string) (*domain.DomainEntry, error)
}
