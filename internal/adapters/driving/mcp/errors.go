// Package mcp exposes the knowledge archive to AI assistants over the Model
// Context Protocol.
package mcp

import "errors"

var (
	// ErrMissingArchiveService is returned when the archive service is not provided.
	ErrMissingArchiveService = errors.New("mcp: archive service is required")

	// ErrMissingAnalyticsService is returned when the analytics service is not provided.
	ErrMissingAnalyticsService = errors.New("mcp: analytics service is required")
)
