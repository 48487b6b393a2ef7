package annotate

import (
	"errors"
	"fmt"
	"math"

	"github.com/siherrmann/turnpath/core/graph"
	"github.com/siherrmann/turnpath/helper"
	"github.com/siherrmann/turnpath/model"
)

// ErrEdgeCountMismatch is returned when the reconstructed edge sequence
// does not line up with the junction sequence. This is a programming
// bug class fault, not an expected runtime condition.
var ErrEdgeCountMismatch = errors.New("edge count does not match junction count minus one")

// BuildAdjacency computes the per junction turn decision context for
// every intermediate junction of the path. The record for junction i is
// keyed by the feature index of edges[i-1], the edge traversed to enter
// it; a sentinel record at key 0 represents the path origin where no
// turn decision applies. Synthetic outgoing edges are filtered out.
func BuildAdjacency(g graph.RoadGraph, path []model.Junction, edges []model.Edge, resolver AttributeResolver, config model.AnnotationConfig) (model.AdjacentEdgesMap, error) {
	if len(edges) != len(path)-1 {
		return nil, helper.NewError(
			fmt.Sprintf("adjacency over %d junctions and %d edges", len(path), len(edges)),
			ErrEdgeCountMismatch,
		)
	}

	adjacency := model.AdjacentEdgesMap{
		0: {},
	}

	for i := 1; i < len(path); i++ {
		current := path[i]
		outgoing := g.GetOutgoingEdges(current)
		ingoing := g.GetIngoingEdges(current)

		record := model.AdjacentEdges{
			IngoingCount: len(ingoing),
			Outgoing: model.TurnCandidates{
				AnglesValid: config.ComputeAngles,
				Candidates:  make([]model.TurnCandidate, 0, len(outgoing)),
			},
		}

		for _, edge := range outgoing {
			if !edge.Feature.IsValid() {
				continue
			}
			// A failed class lookup on a valid feature is corrupted
			// data; the candidate stays with an undefined class so the
			// junction keeps its full outgoing picture.
			class := model.HighwayClassUndefined
			if attributes, err := resolver.Resolve(edge.Feature); err == nil {
				class = attributes.Class
			}
			record.Outgoing.Candidates = append(record.Outgoing.Candidates, model.TurnCandidate{
				Angle:        candidateAngle(path[i-1], current, edge, config),
				FeatureIndex: edge.Feature.Index,
				Class:        class,
			})
		}

		key := edges[i-1].Feature.Index
		if _, exists := adjacency[key]; !exists {
			adjacency[key] = record
		}
	}

	return adjacency, nil
}

// candidateAngle computes the turn angle in degrees between the ingoing
// direction and the candidate edge. It returns 0 when the profile does
// not use turn geometry.
func candidateAngle(prev, current model.Junction, edge model.Edge, config model.AnnotationConfig) float64 {
	if !config.ComputeAngles {
		return 0
	}

	inBearing := bearing(prev.Point, current.Point)
	outBearing := bearing(current.Point, edge.End.Point)
	angle := outBearing - inBearing
	for angle > 180 {
		angle -= 360
	}
	for angle < -180 {
		angle += 360
	}
	return angle
}

func bearing(from, to model.Point) float64 {
	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	dLon := (to.Lon - from.Lon) * math.Pi / 180

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	return math.Atan2(y, x) * 180 / math.Pi
}
