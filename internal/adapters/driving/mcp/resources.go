package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akashic-archives/cartographer/internal/core/domain"
)

const uriScheme = "cartographer://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "domains",
		Name:        "domains",
		Description: "The domain index",
		MIMEType:    "application/json",
	}, s.handleDomainsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "topics/{topicId}",
		Name:        "topic",
		Description: "Entities, relationships, sources and media of a topic",
		MIMEType:    "application/json",
	}, s.handleTopicResource)
}

// handleDomainsResource returns the domain index as JSON.
func (s *Server) handleDomainsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries, err := s.ports.Archive.ListDomains(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing domains: %w", err)
	}
	if entries == nil {
		entries = []domain.DomainEntry{}
	}
	return jsonResource(req.Params.URI, entries)
}

// handleTopicResource returns one topic's record sets as JSON.
func (s *Server) handleTopicResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	topicID := extractTopicID(req.Params.URI)
	if topicID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	if err := s.indexedTopics(ctx, topicID); err != nil {
		if errors.Is(err, domain.ErrUnknownTopic) || errors.Is(err, domain.ErrInvalidInput) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, err
	}

	snap, err := s.ports.Archive.LoadSnapshot(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("loading topic: %w", err)
	}
	return jsonResource(req.Params.URI, snapshotOutput(topicID, snap))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractTopicID extracts the topic id from a URI like cartographer://topics/{topicId}.
func extractTopicID(uri string) string {
	const prefix = uriScheme + "topics/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
