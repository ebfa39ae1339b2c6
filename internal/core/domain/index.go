package domain

import (
	"regexp"
	"strings"
)

// DomainEntry is one row of the domain index, the authoritative list of
// topics exposed to callers.
type DomainEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MergedDescriptionPrefix prefixes the description of merged domains.
const MergedDescriptionPrefix = "Merged domain: "

var topicIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidTopicID reports whether id can safely name a topic's documents.
func ValidTopicID(id string) bool {
	return topicIDPattern.MatchString(id)
}

// Humanize turns a topic id into a display name ("quantum-computing" ->
// "quantum computing").
func Humanize(id string) string {
	return strings.ReplaceAll(id, "-", " ")
}

// MergedDescription builds the index description for a merged domain.
func MergedDescription(topicIDs []string) string {
	return MergedDescriptionPrefix + strings.Join(topicIDs, ", ")
}

// FindDomain returns the index entry with the given id.
func FindDomain(entries []DomainEntry, id string) (*DomainEntry, bool) {
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], true
		}
	}
	return nil, false
}
