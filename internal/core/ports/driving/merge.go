package driving

import (
	"context"

	"github.com/akashic-archives/cartographer/internal/core/domain"
)

// MergeService combines topics into a new persisted topic.
type MergeService interface {
	// Merge folds topicIDs in order into newTopicID and registers it in
	// the domain index when absent.
	Merge(ctx context.Context, topicIDs []string, newTopicID string) (*domain.MergeResult, error)
}
