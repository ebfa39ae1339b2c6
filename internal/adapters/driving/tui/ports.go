// Package tui provides an interactive terminal user interface for browsing
// the knowledge archive. It implements a driving adapter following
// hexagonal architecture principles.
package tui

import (
	"github.com/akashic-archives/cartographer/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Archive lists domains and loads topics.
	Archive driving.ArchiveService

	// Analytics computes clusters and the most connected entity.
	Analytics driving.AnalyticsService

	// Export writes topic exports. Optional.
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
