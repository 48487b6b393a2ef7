package graph

import "github.com/siherrmann/turnpath/model"

// MemoryGraph is an adjacency list RoadGraph for tests, examples and
// small embedded graphs. Ingoing lists are maintained alongside
// outgoing ones on every AddEdge.
type MemoryGraph struct {
	outgoing map[int64][]model.Edge
	ingoing  map[int64][]model.Edge
	// junctions indexes anonymous junctions by rounded coordinate so
	// lookups work for vertices without a node identity.
	junctions map[model.Point]int64
	nextAnon  int64
	speedKMpH float64
}

// NewMemoryGraph creates an empty in-memory road graph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{
		outgoing:  make(map[int64][]model.Edge),
		ingoing:   make(map[int64][]model.Edge),
		junctions: make(map[model.Point]int64),
		nextAnon:  -1,
	}
}

// SetMaxSpeedKMpH sets the speed reported through the SpeedGraph extension.
func (g *MemoryGraph) SetMaxSpeedKMpH(speed float64) {
	g.speedKMpH = speed
}

// MaxSpeedKMpH implements SpeedGraph. Zero means "not set" and callers
// fall back to their configured default.
func (g *MemoryGraph) MaxSpeedKMpH() float64 {
	return g.speedKMpH
}

// AddEdge registers a directed edge in both adjacency directions.
func (g *MemoryGraph) AddEdge(edge model.Edge) {
	startKey := g.keyFor(edge.Start)
	endKey := g.keyFor(edge.End)
	g.outgoing[startKey] = append(g.outgoing[startKey], edge)
	g.ingoing[endKey] = append(g.ingoing[endKey], edge)
}

// GetOutgoingEdges implements RoadGraph.
func (g *MemoryGraph) GetOutgoingEdges(junction model.Junction) []model.Edge {
	return g.outgoing[g.lookup(junction)]
}

// GetIngoingEdges implements RoadGraph.
func (g *MemoryGraph) GetIngoingEdges(junction model.Junction) []model.Edge {
	return g.ingoing[g.lookup(junction)]
}

func (g *MemoryGraph) keyFor(junction model.Junction) int64 {
	if junction.NodeID != 0 {
		return junction.NodeID
	}
	if key, ok := g.junctions[junction.Point]; ok {
		return key
	}
	key := g.nextAnon
	g.nextAnon--
	g.junctions[junction.Point] = key
	return key
}

func (g *MemoryGraph) lookup(junction model.Junction) int64 {
	if junction.NodeID != 0 {
		return junction.NodeID
	}
	if key, ok := g.junctions[junction.Point]; ok {
		return key
	}
	return 0
}
