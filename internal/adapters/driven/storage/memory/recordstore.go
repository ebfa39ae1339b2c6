package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/akashic-archives/cartographer/internal/core/domain"
	"github.com/akashic-archives/cartographer/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
type RecordStore struct {
	mu        sync.RWMutex
	documents map[domain.DocumentKey][]byte
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		documents: make(map[domain.DocumentKey][]byte),
	}
}

// Get returns a copy of the stored document.
func (s *RecordStore) Get(_ context.Context, key domain.DocumentKey) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.documents[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// Put stores a copy of data under key.
func (s *RecordStore) Put(_ context.Context, key domain.DocumentKey, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[key] = append([]byte(nil), data...)
	return nil
}

// List returns the keys in a collection sorted by name then format.
func (s *RecordStore) List(_ context.Context, collection string) ([]domain.DocumentKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]domain.DocumentKey, 0, len(s.documents))
	for key := range s.documents {
		if key.Collection == collection {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}
		return keys[i].Format < keys[j].Format
	})
	return keys, nil
}

// Len returns the number of stored documents.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}
