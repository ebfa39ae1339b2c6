package domain

// Snapshot is the in-memory materialisation of one topic's record sets.
// Slices keep storage order and are never nil once loaded.
type Snapshot struct {
	Entities      []Entity
	Relationships []Relationship
	Sources       []Source
	Media         []Media
}

// NewSnapshot returns an empty snapshot with non-nil slices.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Entities:      []Entity{},
		Relationships: []Relationship{},
		Sources:       []Source{},
		Media:         []Media{},
	}
}

// IsEmpty reports whether the snapshot carries no records at all.
func (s *Snapshot) IsEmpty() bool {
	return len(s.Entities) == 0 && len(s.Relationships) == 0 &&
		len(s.Sources) == 0 && len(s.Media) == 0
}

// EntityByID returns the first entity with the given id.
func (s *Snapshot) EntityByID(id string) (*Entity, bool) {
	for i := range s.Entities {
		if s.Entities[i].ID == id {
			return &s.Entities[i], true
		}
	}
	return nil, false
}

// Cluster is an entity reached by more than one relationship.
type Cluster struct {
	// Entity is the shared target.
	Entity Entity

	// Count is the number of relationships pointing at Entity.
	Count int
}

// Connection is the result of most-connected ranking.
type Connection struct {
	// EntityID is the winning endpoint id.
	EntityID string

	// Entity is the resolved record, nil when the id is dangling.
	Entity *Entity

	// Count is the number of incident edge occurrences.
	Count int
}

// MergeResult describes the outcome of merging several topics.
type MergeResult struct {
	// TopicID is the new topic identifier.
	TopicID string

	// Snapshot is the merged, persisted snapshot.
	Snapshot *Snapshot

	// Indexed is true when a new domain index entry was appended.
	Indexed bool
}
