package model

import "github.com/google/uuid"

// PartitionID identifies the map partition a road feature belongs to.
// Attribute loader contexts are constructed per partition.
type PartitionID = uuid.UUID

// FeatureID references a road feature in the attribute store.
// Validity is a first class property: edges inserted by the search for
// its own bookkeeping carry an invalid FeatureID and no real feature.
type FeatureID struct {
	Partition PartitionID `json:"partition"`
	Index     uint32      `json:"index"`
	Valid     bool        `json:"valid"`
}

// NewFeatureID creates a valid feature reference.
func NewFeatureID(partition PartitionID, index uint32) FeatureID {
	return FeatureID{Partition: partition, Index: index, Valid: true}
}

// IsValid reports whether the reference points at a real road feature.
func (f FeatureID) IsValid() bool {
	return f.Valid
}

// Edge is a directed connection between two junctions. Edges are read
// only views into graph storage.
type Edge struct {
	Feature FeatureID `json:"feature"`
	Start   Junction  `json:"start"`
	End     Junction  `json:"end"`
}

// NewEdge creates an edge tied to a real road feature.
func NewEdge(feature FeatureID, start, end Junction) Edge {
	return Edge{Feature: feature, Start: start, End: end}
}

// NewFakeEdge creates a synthetic edge with no underlying feature.
func NewFakeEdge(start, end Junction) Edge {
	return Edge{Start: start, End: end}
}
