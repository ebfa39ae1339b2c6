package domain

// Entity is a node of a topic graph. Identity is by ID.
type Entity struct {
	// ID is unique within a topic.
	ID string `json:"id"`

	// Name is the human-readable label.
	Name string `json:"name"`

	// Type classifies the entity (e.g. "concept", "person").
	Type string `json:"type"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`
}

// Relationship is a directed, typed edge between two entity ids.
// Duplicate edges are allowed and are never collapsed.
type Relationship struct {
	// Source is the id of the originating entity.
	Source string `json:"source"`

	// Type labels the edge (e.g. "enables", "part_of").
	Type string `json:"type"`

	// Target is the id of the receiving entity.
	Target string `json:"target"`
}

// Source is a citation record. It is not linked to entities by id.
type Source struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Credibility string `json:"credibility"`
}

// Media is an optional multimedia reference attached to a topic.
type Media struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}
