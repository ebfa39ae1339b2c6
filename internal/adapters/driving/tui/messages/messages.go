// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/akashic-archives/cartographer/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDomains is the domain index list.
	ViewDomains ViewType = iota
	// ViewTopic shows one topic's records and analytics.
	ViewTopic
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDomains:
		return "domains"
	case ViewTopic:
		return "topic"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// DomainsLoaded carries the domain index.
type DomainsLoaded struct {
	Domains []domain.DomainEntry
	Err     error
}

// DomainSelected signals a domain was chosen from the index.
type DomainSelected struct {
	Entry domain.DomainEntry
}

// TopicLoaded carries a topic snapshot with its analytics.
type TopicLoaded struct {
	TopicID    string
	Snapshot   *domain.Snapshot
	Clusters   []domain.Cluster
	Connection *domain.Connection
	Err        error
}

// ExportCompleted signals an export finished.
type ExportCompleted struct {
	TopicID string
	Key     domain.DocumentKey
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
