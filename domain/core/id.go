package core

import (
	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Artifact represents any output of the system
type Artifact struct {
	ID        ID           `json:"id"`
	Kind      ArtifactKind `json:"kind"`
	Payload   interface{}  `json:"payload"`
	CreatedAt Timestamp    `json:"created_at"`
}

// ArtifactKind defines types of artifacts
type ArtifactKind string

const (
	// ArtifactDecomposition is the within/between split of one inequality index.
	ArtifactDecomposition ArtifactKind = "decomposition"
	// ArtifactGroupSummary carries per-group descriptive statistics.
	ArtifactGroupSummary ArtifactKind = "group_summary"
	// ArtifactChart is a renderable chart configuration.
	ArtifactChart ArtifactKind = "chart"
	// ArtifactReport is a rendered report document.
	ArtifactReport ArtifactKind = "report"
)
