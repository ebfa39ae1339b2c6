package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akashic-archives/cartographer/internal/adapters/driven/storage/memory"
	"github.com/akashic-archives/cartographer/internal/core/domain"
)

var errStoreDown = errors.New("store down")

// mockRecordStore wraps the memory store and injects failures per key.
type mockRecordStore struct {
	*memory.RecordStore

	mu      sync.Mutex
	getErrs map[domain.DocumentKey]error
	putErrs map[domain.DocumentKey]error
	listErr error
	puts    []domain.DocumentKey
	gets    int
}

func newMockRecordStore() *mockRecordStore {
	return &mockRecordStore{
		RecordStore: memory.NewRecordStore(),
		getErrs:     make(map[domain.DocumentKey]error),
		putErrs:     make(map[domain.DocumentKey]error),
	}
}

func (m *mockRecordStore) Get(ctx context.Context, key domain.DocumentKey) ([]byte, error) {
	m.mu.Lock()
	m.gets++
	err := m.getErrs[key]
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return m.RecordStore.Get(ctx, key)
}

func (m *mockRecordStore) Put(ctx context.Context, key domain.DocumentKey, data []byte) error {
	m.mu.Lock()
	err := m.putErrs[key]
	if err == nil {
		m.puts = append(m.puts, key)
	}
	m.mu.Unlock()
	if err != nil {
		return err
	}
	return m.RecordStore.Put(ctx, key, data)
}

func (m *mockRecordStore) List(ctx context.Context, collection string) ([]domain.DocumentKey, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.RecordStore.List(ctx, collection)
}

func (m *mockRecordStore) putKeys() []domain.DocumentKey {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.DocumentKey(nil), m.puts...)
}

// putJSON seeds a document directly, bypassing put tracking.
func putJSON(t *testing.T, store *mockRecordStore, key domain.DocumentKey, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, store.RecordStore.Put(context.Background(), key, data))
}

// seedTopic writes all four record sets of a topic.
func seedTopic(t *testing.T, store *mockRecordStore, topicID string, snap *domain.Snapshot) {
	t.Helper()
	putJSON(t, store, domain.TopicKey(topicID, domain.RecordEntities), snap.Entities)
	putJSON(t, store, domain.TopicKey(topicID, domain.RecordRelationships), snap.Relationships)
	putJSON(t, store, domain.TopicKey(topicID, domain.RecordSources), snap.Sources)
	putJSON(t, store, domain.TopicKey(topicID, domain.RecordMedia), snap.Media)
}

func readJSON[T any](t *testing.T, store *mockRecordStore, key domain.DocumentKey) T {
	t.Helper()
	data, err := store.RecordStore.Get(context.Background(), key)
	require.NoError(t, err)
	var v T
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func entity(id, name, typ string) domain.Entity {
	return domain.Entity{ID: id, Name: name, Type: typ}
}

func rel(source, typ, target string) domain.Relationship {
	return domain.Relationship{Source: source, Type: typ, Target: target}
}

// quantumSnapshot is a small physics topic used across tests.
func quantumSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Entities: []domain.Entity{
			{ID: "qubit", Name: "Qubit", Type: "concept", Description: "Unit of quantum information"},
			entity("superposition", "Superposition", "concept"),
			entity("entanglement", "Entanglement", "concept"),
		},
		Relationships: []domain.Relationship{
			rel("qubit", "exhibits", "superposition"),
			rel("qubit", "exhibits", "entanglement"),
			rel("entanglement", "requires", "superposition"),
		},
		Sources: []domain.Source{
			{Title: "Quantum Computation and Quantum Information", URL: "https://example.org/qcqi", Credibility: "high"},
		},
		Media: []domain.Media{
			{Type: "image", URL: "https://example.org/bloch.png"},
		},
	}
}
