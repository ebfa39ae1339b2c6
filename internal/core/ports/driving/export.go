package driving

import (
	"context"

	"github.com/akashic-archives/cartographer/internal/core/domain"
)

// ExportService writes a topic in an interchange format.
type ExportService interface {
	// Export writes the topic's export document and returns its key.
	Export(ctx context.Context, topicID string, format domain.ExportFormat) (domain.DocumentKey, error)
}
