package domain

import "strings"

// ExportFormat is an interchange format for topic exports.
type ExportFormat string

// Supported export formats.
const (
	// ExportJSON writes entities, relationships and sources as one document.
	ExportJSON ExportFormat = FormatJSON

	// ExportCSV writes entities and relationships as one flat table.
	ExportCSV ExportFormat = FormatCSV
)

// IsValid returns true if the format is recognised.
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportJSON, ExportCSV:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f ExportFormat) String() string {
	return string(f)
}

// ParseExportFormat normalises user input into an ExportFormat.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", ErrUnsupportedFormat
	}
	return f, nil
}
