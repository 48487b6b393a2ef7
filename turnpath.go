package turnpath

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/siherrmann/turnpath/core/annotate"
	"github.com/siherrmann/turnpath/core/graph"
	"github.com/siherrmann/turnpath/core/result"
	"github.com/siherrmann/turnpath/database"
	"github.com/siherrmann/turnpath/helper"
	"github.com/siherrmann/turnpath/model"
	loadSql "github.com/siherrmann/turnpath/sql"
)

// Engine turns shortest path junction sequences into annotated route data.
// It reconstructs the edges between consecutive junctions, builds the
// adjacency table and loaded path segments, and runs a turn annotator over
// the result. Inputs that cannot be turned into a real route degrade to a
// structurally valid degenerate result instead of an error.
type Engine struct {
	DB        *helper.Database            // nil when the engine runs on an in-memory source
	Features  *database.FeaturesDBHandler // nil when the engine runs on an in-memory source
	Provider  annotate.AttributeResolver
	Annotator result.TurnAnnotator
	Config    model.AnnotationConfig
	// Logging
	log *slog.Logger
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithAnnotator replaces the default turn annotator.
func WithAnnotator(annotator result.TurnAnnotator) Option {
	return func(e *Engine) {
		e.Annotator = annotator
	}
}

// WithConfig replaces the default annotation config.
func WithConfig(config model.AnnotationConfig) Option {
	return func(e *Engine) {
		e.Config = config
	}
}

// WithLogger replaces the default stdout logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.log = logger
	}
}

// NewEngine creates an engine over the given attribute provider.
// The default annotator and config are used unless overridden by options.
func NewEngine(provider annotate.AttributeResolver, opts ...Option) (*Engine, error) {
	if provider == nil {
		return nil, helper.NewError("engine validation", fmt.Errorf("attribute provider is nil"))
	}

	// Logger
	prettyOpts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, prettyOpts))

	engine := &Engine{
		Provider:  provider,
		Annotator: result.NewBasicAnnotator(),
		Config:    model.DefaultAnnotationConfig(),
		log:       logger,
	}
	for _, opt := range opts {
		opt(engine)
	}

	return engine, nil
}

// NewDatabaseEngine creates an engine whose attributes come from the
// postgres feature store. Feature lookups go through a cached partition
// loader that is swapped only when the requested partition changes.
func NewDatabaseEngine(config *helper.DatabaseConfiguration, opts ...Option) (*Engine, error) {
	// Logger
	prettyOpts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, prettyOpts))

	// Initialize database
	db := helper.NewDatabase("turnpath", config, logger)
	err := loadSql.Init(db.Instance)
	if err != nil {
		return nil, helper.NewError("initialize database extensions", err)
	}

	// force=false to not reload if functions already exist
	features, err := database.NewFeaturesDBHandler(db, false)
	if err != nil {
		return nil, helper.NewError("create features handler", err)
	}

	provider, err := database.NewCachedProvider(features)
	if err != nil {
		return nil, helper.NewError("create cached provider", err)
	}

	engine, err := NewEngine(provider, append([]Option{WithLogger(logger)}, opts...)...)
	if err != nil {
		return nil, err
	}
	engine.DB = db
	engine.Features = features

	return engine, nil
}

// Close closes the database connection
func (e *Engine) Close() error {
	if e.DB != nil && e.DB.Instance != nil {
		return e.DB.Instance.Close()
	}
	return nil
}

// NearestFeature snaps a point onto the road network by returning the
// feature whose origin is closest to it.
func (e *Engine) NearestFeature(origin model.Point) (*model.Feature, error) {
	if e.Features == nil {
		return nil, helper.NewError("nearest feature", fmt.Errorf("engine has no feature store, use NewDatabaseEngine"))
	}
	return e.Features.SelectNearestFeature(origin)
}

// Generate produces the annotated route data for a junction sequence.
// The result is never nil: whenever the path is too short, an edge
// cannot be reconstructed, the call is cancelled or the annotation
// fails, a degenerate result with a single destination turn is returned
// instead of partial output.
func (e *Engine) Generate(ctx context.Context, g graph.RoadGraph, path []model.Junction, cancel graph.Cancellable) (*model.RouteResult, error) {
	if g == nil {
		return nil, helper.NewError("generate", fmt.Errorf("road graph is nil"))
	}
	if cancel == nil {
		cancel = graph.FromContext(ctx)
	}

	times := annotate.CalculateTimes(g, path, e.Config)

	if len(path) <= 1 {
		e.log.Warn("Route too short for annotation", slog.Int("junctions", len(path)))
		return e.degenerate(path, times), nil
	}

	edges, err := graph.ReconstructPath(g, path, cancel)
	if err != nil {
		e.log.Warn("Path reconstruction failed", slog.String("error", err.Error()))
		return e.degenerate(path, times), nil
	}
	if len(edges) == 0 {
		return e.degenerate(path, times), nil
	}

	adjacency, err := annotate.BuildAdjacency(g, path, edges, e.Provider, e.Config)
	if err != nil {
		e.log.Warn("Adjacency annotation failed", slog.String("error", err.Error()))
		return e.degenerate(path, times), nil
	}

	segments := annotate.BuildSegments(path, edges, e.Provider, e.log)

	route, err := result.NewRouteAdapter(edges, adjacency, segments)
	if err != nil {
		e.log.Warn("Route adapter rejected reconstruction", slog.String("error", err.Error()))
		return e.degenerate(path, times), nil
	}

	annotation, err := e.Annotator.MakeTurnAnnotation(ctx, route, cancel)
	if err != nil {
		e.log.Warn("Turn annotation failed", slog.String("error", err.Error()))
		return e.degenerate(path, times), nil
	}

	return &model.RouteResult{
		Kind:      model.ResultNormal,
		Turns:     annotation.Turns,
		Times:     times,
		Geometry:  annotation.Geometry,
		Streets:   annotation.Streets,
		Adjacency: adjacency,
	}, nil
}

// degenerate builds the minimal fallback result: one destination turn at
// the last junction and an adjacency table claiming a single ingoing edge.
func (e *Engine) degenerate(path []model.Junction, times []model.TimedPoint) *model.RouteResult {
	index := len(path) - 1
	if index < 0 {
		index = 0
	}

	geometry := make([]model.Point, 0, len(path))
	for _, junction := range path {
		geometry = append(geometry, junction.Point)
	}

	return &model.RouteResult{
		Kind: model.ResultDegenerate,
		Turns: []model.TurnItem{
			{Index: index, Direction: model.TurnReachedDestination},
		},
		Times:    times,
		Geometry: geometry,
		Adjacency: model.AdjacentEdgesMap{
			0: {IngoingCount: 1},
		},
	}
}
