package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/siherrmann/turnpath"
	"github.com/siherrmann/turnpath/core/graph"
	"github.com/siherrmann/turnpath/database"
	"github.com/siherrmann/turnpath/model"
)

func main() {
	partition := uuid.New()

	// A small network: a straight street that changes its name halfway
	// and a service road branching off at the third junction.
	a := model.Junction{Point: model.Point{Lat: 52.5200, Lon: 13.4050}, NodeID: 1}
	b := model.Junction{Point: model.Point{Lat: 52.5210, Lon: 13.4050}, NodeID: 2}
	c := model.Junction{Point: model.Point{Lat: 52.5220, Lon: 13.4050}, NodeID: 3}
	d := model.Junction{Point: model.Point{Lat: 52.5230, Lon: 13.4050}, NodeID: 4}
	side := model.Junction{Point: model.Point{Lat: 52.5220, Lon: 13.4060}, NodeID: 5}

	g := graph.NewMemoryGraph()
	g.AddEdge(model.NewEdge(model.NewFeatureID(partition, 10), a, b))
	g.AddEdge(model.NewEdge(model.NewFeatureID(partition, 11), b, c))
	g.AddEdge(model.NewEdge(model.NewFeatureID(partition, 12), c, d))
	g.AddEdge(model.NewEdge(model.NewFeatureID(partition, 13), c, side))

	// Attributes for every feature the graph references.
	source := database.NewMapSource()
	source.Partition(partition).Add(10, model.RoadAttributes{Class: model.HighwayClassSecondary, Name: "Lindenallee"})
	source.Partition(partition).Add(11, model.RoadAttributes{Class: model.HighwayClassSecondary, Name: "Lindenallee"})
	source.Partition(partition).Add(12, model.RoadAttributes{Class: model.HighwayClassTertiary, Name: "Marktstrasse"})
	source.Partition(partition).Add(13, model.RoadAttributes{Class: model.HighwayClassService, Name: "Hofzufahrt"})

	provider, err := database.NewCachedProvider(source)
	if err != nil {
		log.Fatalf("Failed to create provider: %v", err)
	}

	engine, err := turnpath.NewEngine(provider)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	// Annotate the shortest path a -> b -> c -> d.
	route, err := engine.Generate(context.Background(), g, []model.Junction{a, b, c, d}, nil)
	if err != nil {
		log.Fatalf("Failed to generate route: %v", err)
	}

	fmt.Printf("Result kind: %s\n", route.Kind)
	for _, street := range route.Streets {
		fmt.Printf("Street from segment %d: %s\n", street.Index, street.Name)
	}
	for _, turn := range route.Turns {
		fmt.Printf("Turn at %d: %s\n", turn.Index, turn.Direction)
	}
	for _, timed := range route.Times {
		fmt.Printf("Junction %d reached after %.1fs\n", timed.Index, timed.Seconds)
	}
	fmt.Printf("Geometry points: %d, adjacency entries: %d\n", len(route.Geometry), len(route.Adjacency))
}
