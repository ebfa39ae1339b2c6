package mcp

import (
	"context"

	"github.com/akashic-archives/cartographer/internal/core/domain"
)

// mockArchiveService is a mock implementation of driving.ArchiveService.
type mockArchiveService struct {
	domains   []domain.DomainEntry
	topicIDs  []string
	snapshots map[string]*domain.Snapshot
	err       error
}

func (m *mockArchiveService) ListDomains(_ context.Context) ([]domain.DomainEntry, error) {
	return m.domains, m.err
}

func (m *mockArchiveService) ListTopicIDs(_ context.Context) ([]string, error) {
	return m.topicIDs, m.err
}

func (m *mockArchiveService) LoadSnapshot(_ context.Context, topicID string) (*domain.Snapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	if snap, ok := m.snapshots[topicID]; ok {
		return snap, nil
	}
	return domain.NewSnapshot(), nil
}

func (m *mockArchiveService) ResolveDomain(_ context.Context, ref string) (*domain.DomainEntry, error) {
	if entry, ok := domain.FindDomain(m.domains, ref); ok {
		return entry, nil
	}
	return nil, domain.ErrUnknownTopic
}

// mockAnalyticsService is a mock implementation of driving.AnalyticsService.
type mockAnalyticsService struct {
	clusters    []domain.Cluster
	connection  *domain.Connection
	recommended []domain.Entity
	err         error

	lastTopic  string
	lastEntity string
}

func (m *mockAnalyticsService) Clusters(_ context.Context, topicID string) ([]domain.Cluster, error) {
	m.lastTopic = topicID
	return m.clusters, m.err
}

func (m *mockAnalyticsService) MostConnected(_ context.Context, topicID string) (*domain.Connection, bool, error) {
	m.lastTopic = topicID
	return m.connection, m.connection != nil, m.err
}

func (m *mockAnalyticsService) Recommend(_ context.Context, topicID, entityID string) ([]domain.Entity, error) {
	m.lastTopic = topicID
	m.lastEntity = entityID
	return m.recommended, m.err
}

func (m *mockAnalyticsService) ClustersOf(*domain.Snapshot) []domain.Cluster {
	return m.clusters
}

func (m *mockAnalyticsService) MostConnectedOf(*domain.Snapshot) (*domain.Connection, bool) {
	return m.connection, m.connection != nil
}

// mockMergeService is a mock implementation of driving.MergeService.
type mockMergeService struct {
	result *domain.MergeResult
	err    error

	topicIDs []string
	newID    string
}

func (m *mockMergeService) Merge(_ context.Context, topicIDs []string, newTopicID string) (*domain.MergeResult, error) {
	m.topicIDs = topicIDs
	m.newID = newTopicID
	return m.result, m.err
}

// mockExportService is a mock implementation of driving.ExportService.
type mockExportService struct {
	err    error
	calls  int
	format domain.ExportFormat
}

func (m *mockExportService) Export(_ context.Context, topicID string, format domain.ExportFormat) (domain.DocumentKey, error) {
	m.calls++
	m.format = format
	if m.err != nil {
		return domain.DocumentKey{}, m.err
	}
	return domain.ExportKey(topicID, format), nil
}

// indexedArchive lists quantum, ai and empty in its domain index.
func indexedArchive() *mockArchiveService {
	return &mockArchiveService{
		domains: []domain.DomainEntry{
			{ID: "quantum", Name: "Quantum"},
			{ID: "ai", Name: "AI"},
			{ID: "empty", Name: "Empty"},
		},
		snapshots: map[string]*domain.Snapshot{"quantum": quantumSnapshot()},
	}
}

func quantumSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Entities: []domain.Entity{
			{ID: "qubit", Name: "Qubit", Type: "concept"},
			{ID: "superposition", Name: "Superposition", Type: "phenomenon"},
		},
		Relationships: []domain.Relationship{
			{Source: "qubit", Type: "exhibits", Target: "superposition"},
		},
		Sources: []domain.Source{
			{Title: "Nielsen & Chuang", URL: "https://example.org/qcqi", Credibility: "high"},
		},
		Media: []domain.Media{},
	}
}
