package mcp

import (
	"github.com/akashic-archives/cartographer/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server calls.
type Ports struct {
	// Archive lists domains and loads topics.
	Archive driving.ArchiveService

	// Analytics computes clusters, rankings and recommendations.
	Analytics driving.AnalyticsService

	// Merge is optional; merge_topics is only registered when set.
	Merge driving.MergeService

	// Export is optional; export_topic is only registered when set.
	Export driving.ExportService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Archive == nil {
		return ErrMissingArchiveService
	}
	if p.Analytics == nil {
		return ErrMissingAnalyticsService
	}
	return nil
}
