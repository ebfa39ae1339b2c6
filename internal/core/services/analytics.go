package services

import (
	"context"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/akashic-archives/cartographer/internal/core/domain"
	"github.com/akashic-archives/cartographer/internal/core/ports/driving"
)

// Ensure AnalyticsService implements the interface.
var _ driving.AnalyticsService = (*AnalyticsService)(nil)

// FindClusters reports every known entity targeted by more than one
// relationship, in first-seen target order. Duplicate edges each count.
func FindClusters(snap *domain.Snapshot) []domain.Cluster {
	counts := orderedmap.New[string, int]()
	for _, rel := range snap.Relationships {
		n, _ := counts.Get(rel.Target)
		counts.Set(rel.Target, n+1)
	}

	clusters := []domain.Cluster{}
	for pair := counts.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value < 2 {
			continue
		}
		entity, ok := snap.EntityByID(pair.Key)
		if !ok {
			continue
		}
		clusters = append(clusters, domain.Cluster{Entity: *entity, Count: pair.Value})
	}
	return clusters
}

// MostConnected ranks endpoints by incident edge occurrences. Ties go to
// the id seen first. Returns false when there are no relationships.
func MostConnected(snap *domain.Snapshot) (*domain.Connection, bool) {
	if len(snap.Relationships) == 0 {
		return nil, false
	}

	counts := orderedmap.New[string, int]()
	for _, rel := range snap.Relationships {
		n, _ := counts.Get(rel.Source)
		counts.Set(rel.Source, n+1)
		n, _ = counts.Get(rel.Target)
		counts.Set(rel.Target, n+1)
	}

	best := counts.Oldest()
	for pair := best.Next(); pair != nil; pair = pair.Next() {
		if pair.Value > best.Value {
			best = pair
		}
	}

	conn := &domain.Connection{EntityID: best.Key, Count: best.Value}
	if entity, ok := snap.EntityByID(best.Key); ok {
		e := *entity
		conn.Entity = &e
	}
	return conn, true
}

// Recommend returns the distinct neighbours of entityID in first-occurrence
// order. Neighbour ids that do not resolve to an entity are dropped.
func Recommend(entityID string, snap *domain.Snapshot) []domain.Entity {
	seen := make(map[string]struct{})
	recs := []domain.Entity{}
	for _, rel := range snap.Relationships {
		var neighbour string
		switch entityID {
		case rel.Source:
			neighbour = rel.Target
		case rel.Target:
			neighbour = rel.Source
		default:
			continue
		}
		if _, dup := seen[neighbour]; dup {
			continue
		}
		seen[neighbour] = struct{}{}
		if entity, ok := snap.EntityByID(neighbour); ok {
			recs = append(recs, *entity)
		}
	}
	return recs
}

// AnalyticsService loads topics and runs graph analytics over them.
type AnalyticsService struct {
	archive driving.ArchiveService
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(archive driving.ArchiveService) *AnalyticsService {
	return &AnalyticsService{archive: archive}
}

// Clusters returns entities targeted by more than one relationship.
func (s *AnalyticsService) Clusters(ctx context.Context, topicID string) ([]domain.Cluster, error) {
	snap, err := s.archive.LoadSnapshot(ctx, topicID)
	if err != nil {
		return nil, err
	}
	return FindClusters(snap), nil
}

// MostConnected returns the entity with the most incident edges.
func (s *AnalyticsService) MostConnected(ctx context.Context, topicID string) (*domain.Connection, bool, error) {
	snap, err := s.archive.LoadSnapshot(ctx, topicID)
	if err != nil {
		return nil, false, err
	}
	conn, ok := MostConnected(snap)
	return conn, ok, nil
}

// Recommend returns the distinct neighbours of an entity.
func (s *AnalyticsService) Recommend(ctx context.Context, topicID, entityID string) ([]domain.Entity, error) {
	snap, err := s.archive.LoadSnapshot(ctx, topicID)
	if err != nil {
		return nil, err
	}
	return Recommend(entityID, snap), nil
}

// ClustersOf runs FindClusters on an already loaded snapshot.
func (s *AnalyticsService) ClustersOf(snap *domain.Snapshot) []domain.Cluster {
	return FindClusters(snap)
}

// MostConnectedOf runs MostConnected on an already loaded snapshot.
func (s *AnalyticsService) MostConnectedOf(snap *domain.Snapshot) (*domain.Connection, bool) {
	return MostConnected(snap)
}
