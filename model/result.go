package model

// ResultKind tags how a route result was produced.
type ResultKind string

const (
	// ResultNormal marks a fully annotated route.
	ResultNormal ResultKind = "normal"
	// ResultDegenerate marks the minimal fallback emitted when the
	// junction sequence could not be turned into a real route. It is
	// structurally valid so a live navigation session never receives
	// an empty answer.
	ResultDegenerate ResultKind = "degenerate"
)

// RouteResult is the output of one Generate call. Callers switch on
// Kind instead of guarding against truncated collections.
type RouteResult struct {
	Kind     ResultKind       `json:"kind"`
	Turns    []TurnItem       `json:"turns"`
	Times    []TimedPoint     `json:"times,omitempty"`
	Geometry []Point          `json:"geometry,omitempty"`
	Streets  []StreetName     `json:"streets,omitempty"`
	// Adjacency is the turn decision context the annotation ran on,
	// keyed by ingoing edge feature index with the origin sentinel at 0.
	Adjacency AdjacentEdgesMap `json:"adjacency,omitempty"`
}

// Degenerate reports whether the result is the fallback outcome.
func (r *RouteResult) Degenerate() bool {
	return r.Kind == ResultDegenerate
}
