package graph

import (
	"errors"
	"fmt"

	"github.com/siherrmann/turnpath/helper"
	"github.com/siherrmann/turnpath/model"
)

// ErrCancelled is returned when the cancellation signal fired during
// path reconstruction.
var ErrCancelled = errors.New("path reconstruction cancelled")

// ErrNoConnection is returned when no outgoing edge connects a pair of
// consecutive junctions. A single miss aborts the whole reconstruction;
// no partial edge list is trusted.
var ErrNoConnection = errors.New("no connecting edge between consecutive junctions")

// ReconstructPath turns an ordered junction sequence into the ordered
// edge sequence actually traversed, so that edge i connects path[i] to
// path[i+1]. The caller guarantees len(path) >= 2. The cancellation
// signal is checked once per junction pair.
func ReconstructPath(g RoadGraph, path []model.Junction, cancel Cancellable) ([]model.Edge, error) {
	if cancel == nil {
		cancel = Never
	}

	edges := make([]model.Edge, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		if cancel.IsCancelled() {
			return nil, ErrCancelled
		}

		edge, found := findConnectingEdge(g, path[i-1], path[i])
		if !found {
			return nil, helper.NewError(fmt.Sprintf("reconstruct step %d", i-1), ErrNoConnection)
		}
		edges = append(edges, edge)
	}

	return edges, nil
}

// findConnectingEdge picks the outgoing edge of from that ends at to.
// Real edges win over synthetic ones when both connect the pair.
func findConnectingEdge(g RoadGraph, from, to model.Junction) (model.Edge, bool) {
	var fake model.Edge
	var haveFake bool

	for _, edge := range g.GetOutgoingEdges(from) {
		if !edge.End.Equal(to) {
			continue
		}
		if edge.Feature.IsValid() {
			return edge, true
		}
		if !haveFake {
			fake = edge
			haveFake = true
		}
	}

	return fake, haveFake
}
