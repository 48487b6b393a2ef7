package model

// LoadedPathSegment carries the geometry and road attributes of one
// traversed edge. The geometry is reduced to the two endpoint
// coordinates of the step, not the feature's full polyline.
type LoadedPathSegment struct {
	Path         []Point      `json:"path"`
	Class        HighwayClass `json:"class"`
	Name         string       `json:"name"`
	NodeID       uint32       `json:"node_id"`
	IsLink       bool         `json:"is_link"`
	OnRoundabout bool         `json:"on_roundabout"`
	// Weight is the traversal cost of the segment. It is currently
	// never populated; upstream does not specify a weighting.
	Weight float64 `json:"weight"`
}

// Clear resets the segment to its empty state. Cleared segments keep
// their slot so segments stay positionally aligned with route edges.
func (s *LoadedPathSegment) Clear() {
	*s = LoadedPathSegment{}
}

// Empty reports whether the segment carries no loaded data.
func (s *LoadedPathSegment) Empty() bool {
	return len(s.Path) == 0 && s.Class == HighwayClassUndefined && s.Name == ""
}

// TimedPoint pairs a route point index with the cumulative travel time
// in seconds from the route start.
type TimedPoint struct {
	Index   int     `json:"index"`
	Seconds float64 `json:"seconds"`
}

// StreetName pairs a route point index with the street name starting there.
type StreetName struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}
