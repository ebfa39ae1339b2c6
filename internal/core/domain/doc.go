// Package domain defines the core knowledge-graph types for the cartographer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Entity: A node of a topic graph
//   - Relationship: A directed, typed edge between two entity ids
//   - Source: A citation attached to a topic
//   - Media: An optional multimedia reference
//   - Snapshot: One topic's four record sets, materialised together
//   - DomainEntry: One row of the authoritative domain index
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
