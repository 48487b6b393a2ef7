package graph

import (
	"context"

	"github.com/siherrmann/turnpath/model"
)

// RoadGraph defines the interface for road graph adjacency queries.
// Implementations are supplied by the surrounding routing system; the
// returned edge slices may contain synthetic edges inserted by the
// search, recognizable by an invalid feature reference.
type RoadGraph interface {
	GetOutgoingEdges(junction model.Junction) []model.Edge
	GetIngoingEdges(junction model.Junction) []model.Edge
}

// SpeedGraph is an optional RoadGraph extension reporting the maximum
// travel speed of the routed profile. Graphs that do not implement it
// fall back to the configured default speed.
type SpeedGraph interface {
	RoadGraph
	MaxSpeedKMpH() float64
}

// Cancellable is a polled, advisory cancellation signal. It is checked
// between individual graph lookups; an in flight lookup always completes.
type Cancellable interface {
	IsCancelled() bool
}

type neverCancelled struct{}

func (neverCancelled) IsCancelled() bool { return false }

// Never is a Cancellable that never fires.
var Never Cancellable = neverCancelled{}

type contextCancellable struct {
	ctx context.Context
}

func (c contextCancellable) IsCancelled() bool {
	return c.ctx.Err() != nil
}

// FromContext adapts a context's done state to the polled Cancellable contract.
func FromContext(ctx context.Context) Cancellable {
	return contextCancellable{ctx: ctx}
}
