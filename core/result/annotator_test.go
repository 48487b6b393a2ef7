package result

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/siherrmann/turnpath/core/graph"
	"github.com/siherrmann/turnpath/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type firingCancel struct{}

func (firingCancel) IsCancelled() bool { return true }

func TestBasicAnnotator(t *testing.T) {
	partition := uuid.New()
	a := model.Junction{Point: model.Point{Lat: 55.0, Lon: 37.0}, NodeID: 1}
	b := model.Junction{Point: model.Point{Lat: 55.1, Lon: 37.0}, NodeID: 2}
	c := model.Junction{Point: model.Point{Lat: 55.2, Lon: 37.0}, NodeID: 3}

	edges := []model.Edge{
		model.NewEdge(model.NewFeatureID(partition, 1), a, b),
		model.NewEdge(model.NewFeatureID(partition, 2), b, c),
	}
	adjacency := model.AdjacentEdgesMap{0: {}, 1: {IngoingCount: 1}}

	segments := []model.LoadedPathSegment{
		{Path: []model.Point{a.Point, b.Point}, Class: model.HighwayClassTertiary, Name: "High Street"},
		{Path: []model.Point{b.Point, c.Point}, Class: model.HighwayClassTertiary, Name: "Mill Lane"},
	}

	t.Run("Emits geometry, streets and the destination turn", func(t *testing.T) {
		adapter, err := NewRouteAdapter(edges, adjacency, segments)
		require.NoError(t, err)

		annotation, err := NewBasicAnnotator().MakeTurnAnnotation(context.Background(), adapter, graph.Never)

		require.NoError(t, err, "Expected annotation to succeed")
		assert.Equal(t, []model.Point{a.Point, b.Point, c.Point}, annotation.Geometry, "Expected deduplicated concatenated geometry")
		require.Len(t, annotation.Streets, 2, "Expected a street entry per name change")
		assert.Equal(t, "High Street", annotation.Streets[0].Name)
		assert.Equal(t, "Mill Lane", annotation.Streets[1].Name)
		require.NotEmpty(t, annotation.Turns, "Expected at least the terminal turn")
		last := annotation.Turns[len(annotation.Turns)-1]
		assert.Equal(t, model.TurnReachedDestination, last.Direction, "Expected the terminal reached destination turn")
		assert.Equal(t, len(segments), last.Index, "Expected the terminal turn at the last path index")
	})

	t.Run("Roundabout segments produce enter and leave turns", func(t *testing.T) {
		roundaboutSegments := []model.LoadedPathSegment{
			{Path: []model.Point{a.Point, b.Point}, Class: model.HighwayClassTertiary},
			{Path: []model.Point{b.Point, c.Point}, Class: model.HighwayClassTertiary, OnRoundabout: true},
		}
		adapter, err := NewRouteAdapter(edges, adjacency, roundaboutSegments)
		require.NoError(t, err)

		annotation, err := NewBasicAnnotator().MakeTurnAnnotation(context.Background(), adapter, graph.Never)

		require.NoError(t, err)
		require.GreaterOrEqual(t, len(annotation.Turns), 2, "Expected roundabout turn plus terminal turn")
		assert.Equal(t, model.TurnEnterRoundabout, annotation.Turns[0].Direction, "Expected an enter roundabout turn")
		assert.Equal(t, 1, annotation.Turns[0].Index, "Expected the enter turn at the roundabout segment")
	})

	t.Run("Cancellation aborts the pass", func(t *testing.T) {
		adapter, err := NewRouteAdapter(edges, adjacency, segments)
		require.NoError(t, err)

		_, err = NewBasicAnnotator().MakeTurnAnnotation(context.Background(), adapter, firingCancel{})

		assert.ErrorIs(t, err, graph.ErrCancelled, "Expected the annotation pass to respect cancellation")
	})

	t.Run("Cleared segments contribute nothing but keep indices", func(t *testing.T) {
		mixed := []model.LoadedPathSegment{
			{},
			{Path: []model.Point{b.Point, c.Point}, Class: model.HighwayClassTertiary, Name: "Mill Lane"},
		}
		adapter, err := NewRouteAdapter(edges, adjacency, mixed)
		require.NoError(t, err)

		annotation, err := NewBasicAnnotator().MakeTurnAnnotation(context.Background(), adapter, graph.Never)

		require.NoError(t, err)
		require.Len(t, annotation.Streets, 1, "Expected only the loaded segment's street")
		assert.Equal(t, 1, annotation.Streets[0].Index, "Expected the street indexed at its segment position")
	})
}
