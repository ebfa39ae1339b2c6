package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akashic-archives/cartographer/internal/core/domain"
	"github.com/akashic-archives/cartographer/internal/core/ports/driven"
	"github.com/akashic-archives/cartographer/internal/logger"
)

// readRecords decodes a JSON array document into typed records.
// Missing and corrupt documents degrade to an empty, non-nil slice;
// only store failures are returned.
func readRecords[T any](ctx context.Context, store driven.RecordStore, key domain.DocumentKey) ([]T, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("document %s absent, using empty set", key)
			return []T{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("document %s is corrupt, using empty set: %v", key, err)
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// writeJSON stores v as an indented JSON document, replacing prior content.
func writeJSON(ctx context.Context, store driven.RecordStore, key domain.DocumentKey, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", key, err)
	}
	if err := store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	logger.Debug("wrote %s (%d bytes)", key, len(data))
	return nil
}
