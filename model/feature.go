package model

import (
	"time"

	"github.com/google/uuid"
)

// Feature is a road feature row in the attribute store. Origin is the
// feature's reference coordinate and backs nearest feature lookups.
type Feature struct {
	ID           int          `json:"id"`
	RID          uuid.UUID    `json:"rid"`
	Partition    PartitionID  `json:"partition"`
	Index        uint32       `json:"index"`
	Class        HighwayClass `json:"class"`
	Name         string       `json:"name"`
	IsLink       bool         `json:"is_link"`
	OnRoundabout bool         `json:"on_roundabout"`
	Origin       Point        `json:"origin"`
	Metadata     Metadata     `json:"metadata,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// FeatureID returns the reference other components use to address the feature.
func (f *Feature) FeatureID() FeatureID {
	return NewFeatureID(f.Partition, f.Index)
}

// Attributes returns the attribute view consumed by segment building.
func (f *Feature) Attributes() RoadAttributes {
	return RoadAttributes{
		Class:        f.Class,
		Name:         f.Name,
		IsLink:       f.IsLink,
		OnRoundabout: f.OnRoundabout,
	}
}
