package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akashic-archives/cartographer/internal/core/domain"
)

// EmptyInput is the input schema for tools that take no arguments.
type EmptyInput struct{}

// TopicInput identifies a stored topic.
type TopicInput struct {
	TopicID string `json:"topic_id" jsonschema:"the topic id, as listed by list_domains"`
}

// RecommendInput is the input schema for the recommend tool.
type RecommendInput struct {
	TopicID  string `json:"topic_id" jsonschema:"the topic containing the entity"`
	EntityID string `json:"entity_id" jsonschema:"the entity to find neighbours for"`
}

// MergeInput is the input schema for the merge_topics tool.
type MergeInput struct {
	TopicIDs   []string `json:"topic_ids" jsonschema:"topics to merge, in priority order"`
	NewTopicID string   `json:"new_topic_id" jsonschema:"id of the merged topic"`
}

// ExportInput is the input schema for the export_topic tool.
type ExportInput struct {
	TopicID string `json:"topic_id" jsonschema:"the topic to export"`
	Format  string `json:"format" jsonschema:"export format: json or csv"`
}

// DomainsOutput lists the domain index.
type DomainsOutput struct {
	Domains []domain.DomainEntry `json:"domains"`
	Count   int                  `json:"count"`
}

// TopicsOutput lists topic ids present in storage.
type TopicsOutput struct {
	TopicIDs []string `json:"topic_ids"`
	Count    int      `json:"count"`
}

// SnapshotOutput carries a topic's record sets.
type SnapshotOutput struct {
	TopicID       string                `json:"topic_id"`
	Entities      []domain.Entity       `json:"entities"`
	Relationships []domain.Relationship `json:"relationships"`
	Sources       []domain.Source       `json:"sources"`
	Media         []domain.Media        `json:"media"`
}

// ClusterOutput is one concept cluster.
type ClusterOutput struct {
	EntityID string `json:"entity_id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Count    int    `json:"count"`
}

// ClustersOutput lists a topic's concept clusters.
type ClustersOutput struct {
	Clusters []ClusterOutput `json:"clusters"`
	Count    int             `json:"count"`
}

// ConnectionOutput reports the most connected entity. Found is false when
// the topic has no relationships.
type ConnectionOutput struct {
	Found    bool   `json:"found"`
	EntityID string `json:"entity_id,omitempty"`
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
	Count    int    `json:"count"`
}

// EntitiesOutput lists entities.
type EntitiesOutput struct {
	Entities []domain.Entity `json:"entities"`
	Count    int             `json:"count"`
}

// MergeOutput summarises a merge.
type MergeOutput struct {
	TopicID       string `json:"topic_id"`
	Entities      int    `json:"entities"`
	Relationships int    `json:"relationships"`
	Sources       int    `json:"sources"`
	Media         int    `json:"media"`
	Indexed       bool   `json:"indexed"`
}

// ExportOutput names the written export document.
type ExportOutput struct {
	Key    string `json:"key"`
	Format string `json:"format"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	addTool(s, &mcp.Tool{
		Name:        "list_domains",
		Description: "List the knowledge domains in the domain index",
	}, s.handleListDomains)
	addTool(s, &mcp.Tool{
		Name:        "list_topics",
		Description: "List topic ids physically present in storage, including unindexed ones",
	}, s.handleListTopics)
	addTool(s, &mcp.Tool{
		Name:        "load_topic",
		Description: "Load a topic's entities, relationships, sources and media",
	}, s.handleLoadTopic)
	addTool(s, &mcp.Tool{
		Name:        "find_clusters",
		Description: "Find entities targeted by more than one relationship",
	}, s.handleFindClusters)
	addTool(s, &mcp.Tool{
		Name:        "most_connected",
		Description: "Find the entity with the most incident relationships",
	}, s.handleMostConnected)
	addTool(s, &mcp.Tool{
		Name:        "recommend",
		Description: "List the distinct neighbours of an entity in either direction",
	}, s.handleRecommend)

	if s.ports.Merge != nil {
		addTool(s, &mcp.Tool{
			Name:        "merge_topics",
			Description: "Merge topics into a new topic and add it to the domain index",
		}, s.handleMergeTopics)
	}
	if s.ports.Export != nil {
		addTool(s, &mcp.Tool{
			Name:        "export_topic",
			Description: "Export a topic as JSON or CSV next to its record sets",
		}, s.handleExportTopic)
	}
}

func addTool[In, Out any](s *Server, tool *mcp.Tool, h mcp.ToolHandlerFor[In, Out]) {
	mcp.AddTool(s.server, tool, h)
	s.tools = append(s.tools, tool.Name)
}

func (s *Server) handleListDomains(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, DomainsOutput, error) {
	entries, err := s.ports.Archive.ListDomains(ctx)
	if err != nil {
		return nil, DomainsOutput{}, err
	}
	out := DomainsOutput{
		Domains: make([]domain.DomainEntry, len(entries)),
		Count:   len(entries),
	}
	copy(out.Domains, entries)
	return nil, out, nil
}

func (s *Server) handleListTopics(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, TopicsOutput, error) {
	ids, err := s.ports.Archive.ListTopicIDs(ctx)
	if err != nil {
		return nil, TopicsOutput{}, err
	}
	out := TopicsOutput{
		TopicIDs: make([]string, len(ids)),
		Count:    len(ids),
	}
	copy(out.TopicIDs, ids)
	return nil, out, nil
}

func (s *Server) handleLoadTopic(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TopicInput,
) (*mcp.CallToolResult, SnapshotOutput, error) {
	if err := s.indexedTopics(ctx, input.TopicID); err != nil {
		return nil, SnapshotOutput{}, err
	}
	snap, err := s.ports.Archive.LoadSnapshot(ctx, input.TopicID)
	if err != nil {
		return nil, SnapshotOutput{}, err
	}
	return nil, snapshotOutput(input.TopicID, snap), nil
}

func (s *Server) handleFindClusters(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TopicInput,
) (*mcp.CallToolResult, ClustersOutput, error) {
	if err := s.indexedTopics(ctx, input.TopicID); err != nil {
		return nil, ClustersOutput{}, err
	}
	clusters, err := s.ports.Analytics.Clusters(ctx, input.TopicID)
	if err != nil {
		return nil, ClustersOutput{}, err
	}
	out := ClustersOutput{
		Clusters: make([]ClusterOutput, len(clusters)),
		Count:    len(clusters),
	}
	for i, c := range clusters {
		out.Clusters[i] = ClusterOutput{
			EntityID: c.Entity.ID,
			Name:     c.Entity.Name,
			Type:     c.Entity.Type,
			Count:    c.Count,
		}
	}
	return nil, out, nil
}

func (s *Server) handleMostConnected(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TopicInput,
) (*mcp.CallToolResult, ConnectionOutput, error) {
	if err := s.indexedTopics(ctx, input.TopicID); err != nil {
		return nil, ConnectionOutput{}, err
	}
	conn, ok, err := s.ports.Analytics.MostConnected(ctx, input.TopicID)
	if err != nil {
		return nil, ConnectionOutput{}, err
	}
	if !ok {
		return nil, ConnectionOutput{}, nil
	}
	out := ConnectionOutput{
		Found:    true,
		EntityID: conn.EntityID,
		Count:    conn.Count,
	}
	if conn.Entity != nil {
		out.Name = conn.Entity.Name
		out.Type = conn.Entity.Type
	}
	return nil, out, nil
}

func (s *Server) handleRecommend(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecommendInput,
) (*mcp.CallToolResult, EntitiesOutput, error) {
	if err := s.indexedTopics(ctx, input.TopicID); err != nil {
		return nil, EntitiesOutput{}, err
	}
	entities, err := s.ports.Analytics.Recommend(ctx, input.TopicID, input.EntityID)
	if err != nil {
		return nil, EntitiesOutput{}, err
	}
	out := EntitiesOutput{
		Entities: make([]domain.Entity, len(entities)),
		Count:    len(entities),
	}
	copy(out.Entities, entities)
	return nil, out, nil
}

func (s *Server) handleMergeTopics(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MergeInput,
) (*mcp.CallToolResult, MergeOutput, error) {
	if err := s.indexedTopics(ctx, input.TopicIDs...); err != nil {
		return nil, MergeOutput{}, err
	}
	res, err := s.ports.Merge.Merge(ctx, input.TopicIDs, input.NewTopicID)
	if err != nil {
		return nil, MergeOutput{}, err
	}
	return nil, MergeOutput{
		TopicID:       res.TopicID,
		Entities:      len(res.Snapshot.Entities),
		Relationships: len(res.Snapshot.Relationships),
		Sources:       len(res.Snapshot.Sources),
		Media:         len(res.Snapshot.Media),
		Indexed:       res.Indexed,
	}, nil
}

func (s *Server) handleExportTopic(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportInput,
) (*mcp.CallToolResult, ExportOutput, error) {
	format, err := domain.ParseExportFormat(input.Format)
	if err != nil {
		return nil, ExportOutput{}, fmt.Errorf("%w: %q", err, input.Format)
	}
	if err := s.indexedTopics(ctx, input.TopicID); err != nil {
		return nil, ExportOutput{}, err
	}
	key, err := s.ports.Export.Export(ctx, input.TopicID, format)
	if err != nil {
		return nil, ExportOutput{}, err
	}
	return nil, ExportOutput{Key: key.String(), Format: format.String()}, nil
}

// indexedTopics checks that every id names an entry of the domain index.
func (s *Server) indexedTopics(ctx context.Context, topicIDs ...string) error {
	if len(topicIDs) == 0 {
		return nil
	}
	for _, id := range topicIDs {
		if !domain.ValidTopicID(id) {
			return fmt.Errorf("topic id %q: %w", id, domain.ErrInvalidInput)
		}
	}
	domains, err := s.ports.Archive.ListDomains(ctx)
	if err != nil {
		return fmt.Errorf("listing domains: %w", err)
	}
	for _, id := range topicIDs {
		if _, ok := domain.FindDomain(domains, id); !ok {
			return fmt.Errorf("%q: %w", id, domain.ErrUnknownTopic)
		}
	}
	return nil
}

func snapshotOutput(topicID string, snap *domain.Snapshot) SnapshotOutput {
	out := SnapshotOutput{
		TopicID:       topicID,
		Entities:      []domain.Entity{},
		Relationships: []domain.Relationship{},
		Sources:       []domain.Source{},
		Media:         []domain.Media{},
	}
	if snap == nil {
		return out
	}
	out.Entities = append(out.Entities, snap.Entities...)
	out.Relationships = append(out.Relationships, snap.Relationships...)
	out.Sources = append(out.Sources, snap.Sources...)
	out.Media = append(out.Media, snap.Media...)
	return out
}
