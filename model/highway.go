package model

// HighwayClass is the coarse road classification used for turn decisions.
type HighwayClass int

const (
	HighwayClassUndefined HighwayClass = iota
	HighwayClassError
	HighwayClassTransported
	HighwayClassTrunk
	HighwayClassPrimary
	HighwayClassSecondary
	HighwayClassTertiary
	HighwayClassLivingStreet
	HighwayClassService
	HighwayClassPedestrian
)

var highwayClassNames = map[HighwayClass]string{
	HighwayClassUndefined:    "undefined",
	HighwayClassError:        "error",
	HighwayClassTransported:  "transported",
	HighwayClassTrunk:        "trunk",
	HighwayClassPrimary:      "primary",
	HighwayClassSecondary:    "secondary",
	HighwayClassTertiary:     "tertiary",
	HighwayClassLivingStreet: "living_street",
	HighwayClassService:      "service",
	HighwayClassPedestrian:   "pedestrian",
}

func (c HighwayClass) String() string {
	if name, ok := highwayClassNames[c]; ok {
		return name
	}
	return "undefined"
}

// Resolvable reports whether the class is usable route data. Undefined
// and Error mark corrupted attribute records, not normal outcomes.
func (c HighwayClass) Resolvable() bool {
	return c != HighwayClassUndefined && c != HighwayClassError
}

// RoadAttributes are the per feature attributes consumed while building
// loaded path segments and turn candidates.
type RoadAttributes struct {
	Class        HighwayClass `json:"class"`
	Name         string       `json:"name"`
	IsLink       bool         `json:"is_link"`
	OnRoundabout bool         `json:"on_roundabout"`
}
