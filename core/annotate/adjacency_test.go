package annotate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/siherrmann/turnpath/core/graph"
	"github.com/siherrmann/turnpath/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapResolver resolves attributes from a fixed map and counts lookups.
type mapResolver struct {
	attributes map[model.FeatureID]model.RoadAttributes
	lookups    int
}

func newMapResolver() *mapResolver {
	return &mapResolver{attributes: make(map[model.FeatureID]model.RoadAttributes)}
}

func (r *mapResolver) add(id model.FeatureID, attributes model.RoadAttributes) {
	r.attributes[id] = attributes
}

func (r *mapResolver) Resolve(id model.FeatureID) (*model.RoadAttributes, error) {
	r.lookups++
	attributes, ok := r.attributes[id]
	if !ok {
		return nil, assert.AnError
	}
	return &attributes, nil
}

func TestBuildAdjacency(t *testing.T) {
	partition := uuid.New()
	a := model.Junction{Point: model.Point{Lat: 55.0, Lon: 37.0}, NodeID: 1}
	b := model.Junction{Point: model.Point{Lat: 55.1, Lon: 37.0}, NodeID: 2}
	c := model.Junction{Point: model.Point{Lat: 55.2, Lon: 37.0}, NodeID: 3}
	side := model.Junction{Point: model.Point{Lat: 55.1, Lon: 37.1}, NodeID: 4}

	featureAB := model.NewFeatureID(partition, 10)
	featureBC := model.NewFeatureID(partition, 11)
	featureSide := model.NewFeatureID(partition, 12)

	buildGraph := func() *graph.MemoryGraph {
		g := graph.NewMemoryGraph()
		g.AddEdge(model.NewEdge(featureAB, a, b))
		g.AddEdge(model.NewEdge(featureBC, b, c))
		g.AddEdge(model.NewEdge(featureSide, b, side))
		g.AddEdge(model.NewFakeEdge(b, side))
		return g
	}

	buildResolver := func() *mapResolver {
		resolver := newMapResolver()
		resolver.add(featureAB, model.RoadAttributes{Class: model.HighwayClassTertiary, Name: "Abbey Road"})
		resolver.add(featureBC, model.RoadAttributes{Class: model.HighwayClassSecondary, Name: "Baker Street"})
		resolver.add(featureSide, model.RoadAttributes{Class: model.HighwayClassService})
		return resolver
	}

	path := []model.Junction{a, b, c}

	t.Run("Origin sentinel is always present", func(t *testing.T) {
		g := buildGraph()
		edges, err := graph.ReconstructPath(g, path, graph.Never)
		require.NoError(t, err)

		adjacency, err := BuildAdjacency(g, path, edges, buildResolver(), model.DefaultAnnotationConfig())

		assert.NoError(t, err, "Expected BuildAdjacency to succeed")
		record, ok := adjacency[0]
		require.True(t, ok, "Expected sentinel record at key 0")
		assert.Equal(t, 0, record.IngoingCount, "Expected origin sentinel to report zero ingoing edges")
		assert.Empty(t, record.Outgoing.Candidates, "Expected origin sentinel to carry no candidates")
	})

	t.Run("Records are keyed by ingoing edge feature index", func(t *testing.T) {
		g := buildGraph()
		edges, err := graph.ReconstructPath(g, path, graph.Never)
		require.NoError(t, err)

		adjacency, err := BuildAdjacency(g, path, edges, buildResolver(), model.DefaultAnnotationConfig())
		require.NoError(t, err)

		require.Len(t, adjacency, 3, "Expected sentinel plus one record per intermediate junction")
		_, hasB := adjacency[featureAB.Index]
		_, hasC := adjacency[featureBC.Index]
		assert.True(t, hasB, "Expected junction b keyed by the edge entering it")
		assert.True(t, hasC, "Expected junction c keyed by the edge entering it")
	})

	t.Run("Synthetic outgoing edges are filtered", func(t *testing.T) {
		g := buildGraph()
		edges, err := graph.ReconstructPath(g, path, graph.Never)
		require.NoError(t, err)

		adjacency, err := BuildAdjacency(g, path, edges, buildResolver(), model.DefaultAnnotationConfig())
		require.NoError(t, err)

		record := adjacency[featureAB.Index]
		// b has three outgoing edges, one of them synthetic.
		require.Len(t, record.Outgoing.Candidates, 2, "Expected only candidates with a valid feature")
		classes := []model.HighwayClass{record.Outgoing.Candidates[0].Class, record.Outgoing.Candidates[1].Class}
		assert.Contains(t, classes, model.HighwayClassSecondary, "Expected the through road candidate class")
		assert.Contains(t, classes, model.HighwayClassService, "Expected the side road candidate class")
	})

	t.Run("Ingoing count is the raw ingoing edge count", func(t *testing.T) {
		g := buildGraph()
		edges, err := graph.ReconstructPath(g, path, graph.Never)
		require.NoError(t, err)

		adjacency, err := BuildAdjacency(g, path, edges, buildResolver(), model.DefaultAnnotationConfig())
		require.NoError(t, err)

		assert.Equal(t, 1, adjacency[featureAB.Index].IngoingCount, "Expected one ingoing edge at b")
	})

	t.Run("Angles are marked not applicable by default", func(t *testing.T) {
		g := buildGraph()
		edges, err := graph.ReconstructPath(g, path, graph.Never)
		require.NoError(t, err)

		adjacency, err := BuildAdjacency(g, path, edges, buildResolver(), model.DefaultAnnotationConfig())
		require.NoError(t, err)

		record := adjacency[featureAB.Index]
		assert.False(t, record.Outgoing.AnglesValid, "Expected angles to be invalid for the default profile")
		for _, candidate := range record.Outgoing.Candidates {
			assert.Zero(t, candidate.Angle, "Expected sentinel zero angle when angles are not computed")
		}
	})

	t.Run("Angles are computed when the profile asks for them", func(t *testing.T) {
		g := buildGraph()
		edges, err := graph.ReconstructPath(g, path, graph.Never)
		require.NoError(t, err)

		config := model.DefaultAnnotationConfig()
		config.ComputeAngles = true
		adjacency, err := BuildAdjacency(g, path, edges, buildResolver(), config)
		require.NoError(t, err)

		record := adjacency[featureAB.Index]
		assert.True(t, record.Outgoing.AnglesValid, "Expected angles to be valid when computed")

		var straight, turn *model.TurnCandidate
		for i := range record.Outgoing.Candidates {
			candidate := &record.Outgoing.Candidates[i]
			if candidate.FeatureIndex == featureBC.Index {
				straight = candidate
			} else {
				turn = candidate
			}
		}
		require.NotNil(t, straight, "Expected the through road candidate")
		require.NotNil(t, turn, "Expected the side road candidate")
		assert.InDelta(t, 0, straight.Angle, 1.0, "Expected near zero angle for the continuation")
		assert.Greater(t, turn.Angle, 30.0, "Expected a right turn angle for the side road")
	})

	t.Run("Edge count mismatch is rejected", func(t *testing.T) {
		g := buildGraph()

		_, err := BuildAdjacency(g, path, nil, buildResolver(), model.DefaultAnnotationConfig())

		assert.ErrorIs(t, err, ErrEdgeCountMismatch, "Expected mismatched inputs to be rejected")
	})
}
