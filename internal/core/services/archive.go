package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/akashic-archives/cartographer/internal/core/domain"
	"github.com/akashic-archives/cartographer/internal/core/ports/driven"
	"github.com/akashic-archives/cartographer/internal/core/ports/driving"
	"github.com/akashic-archives/cartographer/internal/logger"
)

// Ensure ArchiveService implements the interface.
var _ driving.ArchiveService = (*ArchiveService)(nil)

// ArchiveService loads topic snapshots and the domain index from a record store.
// Every call re-reads storage; nothing is cached.
type ArchiveService struct {
	store driven.RecordStore
}

// NewArchiveService creates a new archive service.
func NewArchiveService(store driven.RecordStore) *ArchiveService {
	return &ArchiveService{store: store}
}

// ListDomains returns the domain index in stored order.
func (s *ArchiveService) ListDomains(ctx context.Context) ([]domain.DomainEntry, error) {
	return readRecords[domain.DomainEntry](ctx, s.store, domain.DomainIndexKey())
}

// ListTopicIDs returns the distinct topic ids that have at least one
// record set document in storage, sorted.
func (s *ArchiveService) ListTopicIDs(ctx context.Context) ([]string, error) {
	keys, err := s.store.List(ctx, domain.CollectionTopics)
	if err != nil {
		return nil, fmt.Errorf("listing topics: %w", err)
	}

	seen := make(map[string]struct{})
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		id, ok := domain.TopicIDFromKey(key)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// LoadSnapshot reads the four record sets of a topic. Each missing or
// corrupt record set degrades to an empty slice independently.
func (s *ArchiveService) LoadSnapshot(ctx context.Context, topicID string) (*domain.Snapshot, error) {
	if !domain.ValidTopicID(topicID) {
		return nil, fmt.Errorf("topic id %q: %w", topicID, domain.ErrInvalidInput)
	}
	logger.Section("Load " + topicID)
	snap := domain.NewSnapshot()

	var err error
	if snap.Entities, err = readRecords[domain.Entity](ctx, s.store, domain.TopicKey(topicID, domain.RecordEntities)); err != nil {
		return nil, err
	}
	if snap.Relationships, err = readRecords[domain.Relationship](ctx, s.store, domain.TopicKey(topicID, domain.RecordRelationships)); err != nil {
		return nil, err
	}
	if snap.Sources, err = readRecords[domain.Source](ctx, s.store, domain.TopicKey(topicID, domain.RecordSources)); err != nil {
		return nil, err
	}
	if snap.Media, err = readRecords[domain.Media](ctx, s.store, domain.TopicKey(topicID, domain.RecordMedia)); err != nil {
		return nil, err
	}

	logger.Debug("topic %s: %d entities, %d relationships, %d sources, %d media",
		topicID, len(snap.Entities), len(snap.Relationships), len(snap.Sources), len(snap.Media))
	return snap, nil
}

// ResolveDomain maps a reference to a domain index entry. A reference is
// either a 1-based position in the index or a topic id listed in it.
func (s *ArchiveService) ResolveDomain(ctx context.Context, ref string) (*domain.DomainEntry, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("empty domain reference: %w", domain.ErrInvalidInput)
	}

	domains, err := s.ListDomains(ctx)
	if err != nil {
		return nil, err
	}

	if n, convErr := strconv.Atoi(ref); convErr == nil {
		if n < 1 || n > len(domains) {
			return nil, fmt.Errorf("selection %d out of range 1-%d: %w", n, len(domains), domain.ErrUnknownTopic)
		}
		entry := domains[n-1]
		return &entry, nil
	}

	entry, ok := domain.FindDomain(domains, ref)
	if !ok {
		return nil, fmt.Errorf("%q: %w", ref, domain.ErrUnknownTopic)
	}
	return entry, nil
}
