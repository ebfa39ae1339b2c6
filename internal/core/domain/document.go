package domain

import (
	"fmt"
	"strings"
)

// Storage collections.
const (
	// CollectionTopics holds topic record sets and exports.
	CollectionTopics = "topics"

	// CollectionIndexes holds the domain index.
	CollectionIndexes = "indexes"
)

// Document formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// DomainIndexName names the domain index document within CollectionIndexes.
const DomainIndexName = "domains"

// DocumentKey addresses one stored document.
type DocumentKey struct {
	// Collection groups related documents (topics, indexes).
	Collection string

	// Name is the logical document name, e.g. "quantum-computing-entities".
	Name string

	// Format is the serialisation, "json" or "csv".
	Format string
}

// String renders the key as collection/name.format.
func (k DocumentKey) String() string {
	return fmt.Sprintf("%s/%s.%s", k.Collection, k.Name, k.Format)
}

// RecordKind identifies one of the four record sets of a topic.
type RecordKind string

// The four record sets every topic may carry.
const (
	RecordEntities      RecordKind = "entities"
	RecordRelationships RecordKind = "relationships"
	RecordSources       RecordKind = "sources"
	RecordMedia         RecordKind = "media"
)

// RecordKinds lists the record sets in load and write order.
func RecordKinds() []RecordKind {
	return []RecordKind{RecordEntities, RecordRelationships, RecordSources, RecordMedia}
}

// TopicKey returns the key of a topic's record set document.
func TopicKey(topicID string, kind RecordKind) DocumentKey {
	return DocumentKey{
		Collection: CollectionTopics,
		Name:       topicID + "-" + string(kind),
		Format:     FormatJSON,
	}
}

// ExportKey returns the key of a topic export in the given format.
func ExportKey(topicID string, format ExportFormat) DocumentKey {
	return DocumentKey{
		Collection: CollectionTopics,
		Name:       topicID + "-export",
		Format:     string(format),
	}
}

// DomainIndexKey returns the key of the domain index document.
func DomainIndexKey() DocumentKey {
	return DocumentKey{
		Collection: CollectionIndexes,
		Name:       DomainIndexName,
		Format:     FormatJSON,
	}
}

// TopicIDFromKey strips a recognised record-set suffix from a topic document
// key. It returns false for keys that are not topic record sets.
func TopicIDFromKey(key DocumentKey) (string, bool) {
	if key.Collection != CollectionTopics || key.Format != FormatJSON {
		return "", false
	}
	for _, kind := range RecordKinds() {
		suffix := "-" + string(kind)
		if id, ok := strings.CutSuffix(key.Name, suffix); ok && id != "" {
			return id, true
		}
	}
	return "", false
}
