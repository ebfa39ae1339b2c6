package driving

import (
	"context"

	"github.com/akashic-archives/cartographer/internal/core/domain"
)

// AnalyticsService computes connectivity insights for a stored topic.
type AnalyticsService interface {
	// Clusters returns entities targeted by more than one relationship.
	Clusters(ctx context.Context, topicID string) ([]domain.Cluster, error)

	// MostConnected returns the entity with the most incident edges.
	// The boolean is false when the topic has no relationships.
	MostConnected(ctx context.Context, topicID string) (*domain.Connection, bool, error)

	// Recommend returns the distinct neighbours of an entity.
	Recommend(ctx context.Context, topicID, entityID string) ([]domain.Entity, error)

	// ClustersOf and MostConnectedOf work on a snapshot the caller has
	// already loaded, so one view is computed from a single read.
	ClustersOf(snap *domain.Snapshot) []domain.Cluster
	MostConnectedOf(snap *domain.Snapshot) (*domain.Connection, bool)
}
