package result

import (
	"errors"

	"github.com/siherrmann/turnpath/helper"
	"github.com/siherrmann/turnpath/model"
)

// ErrEmptyRoute is returned when an adapter is built over an empty edge sequence.
var ErrEmptyRoute = errors.New("route has no edges")

// ErrUnknownJunction is returned when a turn context lookup misses. An
// absent key is an invariant violation, distinguishable from a junction
// that legitimately has zero candidates.
var ErrUnknownJunction = errors.New("no turn context for junction key")

// RouteAdapter is the read only view the turn annotation algorithm
// consumes. It owns no data; it binds the edge sequence, the adjacency
// table and the loaded segments for the lifetime of one annotation pass.
type RouteAdapter struct {
	edges     []model.Edge
	adjacency model.AdjacentEdgesMap
	segments  []model.LoadedPathSegment
	length    float64
}

// NewRouteAdapter binds the three collections produced by the pipeline.
// The total route length is the sum of great circle distances between
// each edge's own endpoints.
func NewRouteAdapter(edges []model.Edge, adjacency model.AdjacentEdgesMap, segments []model.LoadedPathSegment) (*RouteAdapter, error) {
	if len(edges) == 0 {
		return nil, helper.NewError("route adapter construction", ErrEmptyRoute)
	}

	length := 0.0
	for _, edge := range edges {
		length += model.DistanceOnEarth(edge.Start.Point, edge.End.Point)
	}

	return &RouteAdapter{
		edges:     edges,
		adjacency: adjacency,
		segments:  segments,
		length:    length,
	}, nil
}

// Segments returns the loaded path segments in traversal order.
func (a *RouteAdapter) Segments() []model.LoadedPathSegment {
	return a.segments
}

// PossibleTurns returns the ingoing edge count and the outgoing turn
// candidates recorded for the given junction key (the feature index of
// the edge entered through, 0 for the route origin).
func (a *RouteAdapter) PossibleTurns(key uint32) (int, model.TurnCandidates, error) {
	record, ok := a.adjacency[key]
	if !ok {
		return 0, model.TurnCandidates{}, ErrUnknownJunction
	}
	return record.IngoingCount, record.Outgoing, nil
}

// PathLength returns the total route length in meters.
func (a *RouteAdapter) PathLength() float64 {
	return a.length
}

// StartPoint returns the start junction coordinate of the first edge.
func (a *RouteAdapter) StartPoint() model.Point {
	return a.edges[0].Start.Point
}

// EndPoint returns the end junction coordinate of the last edge.
func (a *RouteAdapter) EndPoint() model.Point {
	return a.edges[len(a.edges)-1].End.Point
}

// Edges returns the traversed edge sequence.
func (a *RouteAdapter) Edges() []model.Edge {
	return a.edges
}
