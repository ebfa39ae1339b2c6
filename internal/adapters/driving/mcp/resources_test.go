package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashic-archives/cartographer/internal/core/domain"
)

func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestExtractTopicID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "valid topic URI", uri: "cartographer://topics/quantum-computing", expected: "quantum-computing"},
		{name: "invalid prefix", uri: "file://topics/quantum", expected: ""},
		{name: "nested path", uri: "cartographer://topics/quantum/extra", expected: ""},
		{name: "empty URI", uri: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractTopicID(tt.uri))
		})
	}
}

func TestServer_handleDomainsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the index as JSON", func(t *testing.T) {
		archive := &mockArchiveService{domains: []domain.DomainEntry{
			{ID: "ai", Name: "Artificial Intelligence", Description: "Machines that learn"},
		}}
		server := newTestServer(t, &Ports{Archive: archive, Analytics: &mockAnalyticsService{}})

		res, err := server.handleDomainsResource(ctx, makeReadResourceRequest("cartographer://domains"))
		require.NoError(t, err)
		require.Len(t, res.Contents, 1)
		assert.Equal(t, "application/json", res.Contents[0].MIMEType)

		var got []domain.DomainEntry
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &got))
		assert.Equal(t, archive.domains, got)
	})

	t.Run("empty index is an empty array", func(t *testing.T) {
		server := newTestServer(t, &Ports{Archive: &mockArchiveService{}, Analytics: &mockAnalyticsService{}})

		res, err := server.handleDomainsResource(ctx, makeReadResourceRequest("cartographer://domains"))
		require.NoError(t, err)
		assert.Equal(t, "[]", res.Contents[0].Text)
	})

	t.Run("wraps store errors", func(t *testing.T) {
		archive := &mockArchiveService{err: errors.New("store down")}
		server := newTestServer(t, &Ports{Archive: archive, Analytics: &mockAnalyticsService{}})

		_, err := server.handleDomainsResource(ctx, makeReadResourceRequest("cartographer://domains"))
		assert.ErrorContains(t, err, "listing domains")
	})
}

func TestServer_handleTopicResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &Ports{Archive: indexedArchive(), Analytics: &mockAnalyticsService{}})

	t.Run("returns the snapshot", func(t *testing.T) {
		res, err := server.handleTopicResource(ctx, makeReadResourceRequest("cartographer://topics/quantum"))
		require.NoError(t, err)

		var got SnapshotOutput
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &got))
		assert.Equal(t, "quantum", got.TopicID)
		assert.Equal(t, quantumSnapshot().Entities, got.Entities)
	})

	t.Run("topic missing from the index is not found", func(t *testing.T) {
		_, err := server.handleTopicResource(ctx, makeReadResourceRequest("cartographer://topics/atlantis"))
		assert.Error(t, err)
	})

	t.Run("traversal id is not found", func(t *testing.T) {
		_, err := server.handleTopicResource(ctx, makeReadResourceRequest("cartographer://topics/.."))
		assert.Error(t, err)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		_, err := server.handleTopicResource(ctx, makeReadResourceRequest("cartographer://invalid"))
		assert.Error(t, err)
	})
}
