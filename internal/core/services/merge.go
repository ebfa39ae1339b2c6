package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/akashic-archives/cartographer/internal/core/domain"
	"github.com/akashic-archives/cartographer/internal/core/ports/driven"
	"github.com/akashic-archives/cartographer/internal/core/ports/driving"
	"github.com/akashic-archives/cartographer/internal/logger"
)

// Ensure MergeService implements the interface.
var _ driving.MergeService = (*MergeService)(nil)

// MergeService combines several topics into a new persisted topic.
//
// Entities are deduplicated by id, first topic wins. Relationships, sources
// and media are concatenated verbatim, so merging the same inputs twice
// duplicates them.
type MergeService struct {
	store   driven.RecordStore
	archive driving.ArchiveService

	mu      sync.Mutex
	targets map[string]*sync.Mutex
}

// NewMergeService creates a new merge service.
func NewMergeService(store driven.RecordStore, archive driving.ArchiveService) *MergeService {
	return &MergeService{
		store:   store,
		archive: archive,
		targets: make(map[string]*sync.Mutex),
	}
}

// Merge folds topicIDs in order into newTopicID, writes its four record
// sets and then registers it in the domain index if absent.
func (s *MergeService) Merge(ctx context.Context, topicIDs []string, newTopicID string) (*domain.MergeResult, error) {
	if len(topicIDs) == 0 {
		return nil, fmt.Errorf("no topics to merge: %w", domain.ErrInvalidInput)
	}
	for _, id := range append([]string{newTopicID}, topicIDs...) {
		if !domain.ValidTopicID(id) {
			return nil, fmt.Errorf("topic id %q: %w", id, domain.ErrInvalidInput)
		}
	}

	lock := s.targetLock(newTopicID)
	lock.Lock()
	defer lock.Unlock()

	logger.Section("Merge " + newTopicID)

	merged, err := s.fold(ctx, topicIDs)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx, newTopicID, merged); err != nil {
		return nil, err
	}

	indexed, err := s.register(ctx, topicIDs, newTopicID)
	if err != nil {
		return nil, err
	}

	logger.Info("merged [%s] into %s", strings.Join(topicIDs, ", "), newTopicID)
	return &domain.MergeResult{
		TopicID:  newTopicID,
		Snapshot: merged,
		Indexed:  indexed,
	}, nil
}

func (s *MergeService) fold(ctx context.Context, topicIDs []string) (*domain.Snapshot, error) {
	merged := domain.NewSnapshot()
	entities := orderedmap.New[string, domain.Entity]()

	for _, id := range topicIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		snap, err := s.archive.LoadSnapshot(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", id, err)
		}

		for _, e := range snap.Entities {
			if _, exists := entities.Get(e.ID); exists {
				logger.Debug("entity %s from %s already merged, skipping", e.ID, id)
				continue
			}
			entities.Set(e.ID, e)
		}
		merged.Relationships = append(merged.Relationships, snap.Relationships...)
		merged.Sources = append(merged.Sources, snap.Sources...)
		merged.Media = append(merged.Media, snap.Media...)
	}

	for pair := entities.Oldest(); pair != nil; pair = pair.Next() {
		merged.Entities = append(merged.Entities, pair.Value)
	}
	return merged, nil
}

// persist writes the four record sets. Media is written even when empty.
func (s *MergeService) persist(ctx context.Context, topicID string, snap *domain.Snapshot) error {
	records := map[domain.RecordKind]any{
		domain.RecordEntities:      snap.Entities,
		domain.RecordRelationships: snap.Relationships,
		domain.RecordSources:       snap.Sources,
		domain.RecordMedia:         snap.Media,
	}
	for _, kind := range domain.RecordKinds() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeJSON(ctx, s.store, domain.TopicKey(topicID, kind), records[kind]); err != nil {
			return err
		}
	}
	return nil
}

// register appends the merged topic to the domain index unless an entry
// with that id already exists. Existing entries are never rewritten. A
// missing index is deliberately created holding only the new entry instead
// of leaving the merged topic unindexed.
func (s *MergeService) register(ctx context.Context, topicIDs []string, newTopicID string) (bool, error) {
	domains, err := s.archive.ListDomains(ctx)
	if err != nil {
		return false, err
	}
	if _, exists := domain.FindDomain(domains, newTopicID); exists {
		logger.Debug("domain %s already indexed, leaving index unchanged", newTopicID)
		return false, nil
	}

	domains = append(domains, domain.DomainEntry{
		ID:          newTopicID,
		Name:        domain.Humanize(newTopicID),
		Description: domain.MergedDescription(topicIDs),
	})
	if err := writeJSON(ctx, s.store, domain.DomainIndexKey(), domains); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MergeService) targetLock(topicID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.targets[topicID]
	if !ok {
		lock = &sync.Mutex{}
		s.targets[topicID] = lock
	}
	return lock
}
