package result

import (
	"context"

	"github.com/siherrmann/turnpath/core/graph"
	"github.com/siherrmann/turnpath/model"
)

// Annotation is the output of one turn annotation pass over a route adapter.
type Annotation struct {
	Geometry []model.Point
	Turns    []model.TurnItem
	Times    []model.TimedPoint
	Streets  []model.StreetName
}

// TurnAnnotator consumes a route adapter and produces the final turn
// list, simplified geometry, per segment times and street names. The
// production turn decision heuristics live outside this library; any
// implementation can be injected into the engine.
type TurnAnnotator interface {
	MakeTurnAnnotation(ctx context.Context, route *RouteAdapter, cancel graph.Cancellable) (*Annotation, error)
}

// BasicAnnotator is the built in minimal TurnAnnotator. It concatenates
// segment geometry, records street name changes, emits roundabout
// enter/leave turns and the terminal reached destination turn. It makes
// no bearing based turn decisions.
type BasicAnnotator struct{}

// NewBasicAnnotator creates the default annotator.
func NewBasicAnnotator() *BasicAnnotator {
	return &BasicAnnotator{}
}

// MakeTurnAnnotation implements TurnAnnotator.
func (b *BasicAnnotator) MakeTurnAnnotation(ctx context.Context, route *RouteAdapter, cancel graph.Cancellable) (*Annotation, error) {
	if cancel == nil {
		cancel = graph.Never
	}

	annotation := &Annotation{
		Geometry: []model.Point{route.StartPoint()},
	}

	lastName := ""
	onRoundabout := false

	for i, segment := range route.Segments() {
		if cancel.IsCancelled() {
			return nil, graph.ErrCancelled
		}

		for _, point := range segment.Path {
			last := annotation.Geometry[len(annotation.Geometry)-1]
			if !point.EqualEps(last, model.PointEqualityEps) {
				annotation.Geometry = append(annotation.Geometry, point)
			}
		}

		if segment.Name != "" && segment.Name != lastName {
			annotation.Streets = append(annotation.Streets, model.StreetName{Index: i, Name: segment.Name})
			lastName = segment.Name
		}

		if segment.OnRoundabout && !onRoundabout {
			annotation.Turns = append(annotation.Turns, model.TurnItem{Index: i, Direction: model.TurnEnterRoundabout})
		}
		if !segment.OnRoundabout && onRoundabout {
			annotation.Turns = append(annotation.Turns, model.TurnItem{Index: i, Direction: model.TurnLeaveRoundabout})
		}
		onRoundabout = segment.OnRoundabout
	}

	lastIndex := len(route.Segments())
	annotation.Turns = append(annotation.Turns, model.TurnItem{
		Index:     lastIndex,
		Direction: model.TurnReachedDestination,
	})

	return annotation, nil
}
