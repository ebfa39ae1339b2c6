package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/akashic-archives/cartographer/internal/core/domain"
	"github.com/akashic-archives/cartographer/internal/core/ports/driven"
	"github.com/akashic-archives/cartographer/internal/core/ports/driving"
	"github.com/akashic-archives/cartographer/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// csvHeader is the flat schema shared by entity and relationship rows.
var csvHeader = []string{"type", "id", "name", "desc"}

// Row type markers in the CSV export.
const (
	csvRowEntity       = "entity"
	csvRowRelationship = "rel"
)

// ExportDocument is the JSON export shape. Media is not exported.
type ExportDocument struct {
	Entities      []domain.Entity       `json:"entities"`
	Relationships []domain.Relationship `json:"relationships"`
	Sources       []domain.Source       `json:"sources"`
}

// EncodeJSON renders a snapshot as an indented JSON export document.
func EncodeJSON(snap *domain.Snapshot) ([]byte, error) {
	doc := ExportDocument{
		Entities:      snap.Entities,
		Relationships: snap.Relationships,
		Sources:       snap.Sources,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding json export: %w", err)
	}
	return data, nil
}

// EncodeCSV renders entities and relationships as one flat table.
// Relationship rows reuse the columns: id holds the source, name the
// relationship type and desc the target.
func EncodeCSV(snap *domain.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := make([][]string, 0, len(snap.Entities)+len(snap.Relationships)+1)
	rows = append(rows, csvHeader)
	for _, e := range snap.Entities {
		rows = append(rows, []string{csvRowEntity, e.ID, e.Name, e.Description})
	}
	for _, r := range snap.Relationships {
		rows = append(rows, []string{csvRowRelationship, r.Source, r.Type, r.Target})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("encoding csv export: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportService writes topic exports back into the record store.
type ExportService struct {
	store   driven.RecordStore
	archive driving.ArchiveService
}

// NewExportService creates a new export service.
func NewExportService(store driven.RecordStore, archive driving.ArchiveService) *ExportService {
	return &ExportService{store: store, archive: archive}
}

// Export writes {topic}-export in the requested format. Unsupported
// formats and malformed topic ids are rejected before anything is read or
// written.
func (s *ExportService) Export(ctx context.Context, topicID string, format domain.ExportFormat) (domain.DocumentKey, error) {
	if !domain.ValidTopicID(topicID) {
		return domain.DocumentKey{}, fmt.Errorf("topic id %q: %w", topicID, domain.ErrInvalidInput)
	}
	if !format.IsValid() {
		return domain.DocumentKey{}, fmt.Errorf("%q: %w", format, domain.ErrUnsupportedFormat)
	}

	snap, err := s.archive.LoadSnapshot(ctx, topicID)
	if err != nil {
		return domain.DocumentKey{}, err
	}

	var data []byte
	switch format {
	case domain.ExportCSV:
		data, err = EncodeCSV(snap)
	default:
		data, err = EncodeJSON(snap)
	}
	if err != nil {
		return domain.DocumentKey{}, err
	}

	key := domain.ExportKey(topicID, format)
	if err := s.store.Put(ctx, key, data); err != nil {
		return domain.DocumentKey{}, fmt.Errorf("writing %s: %w", key, err)
	}
	logger.Info("exported %s as %s to %s", topicID, format, key)
	return key, nil
}
