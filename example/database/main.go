package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/siherrmann/turnpath"
	"github.com/siherrmann/turnpath/core/graph"
	"github.com/siherrmann/turnpath/helper"
	"github.com/siherrmann/turnpath/model"
)

func main() {
	// Start a test PostgreSQL container
	teardown, dbPort, err := helper.MustStartPostgresContainer()
	if err != nil {
		log.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer teardown(context.Background())

	// Create database configuration using the container port
	dbConfig := &helper.DatabaseConfiguration{
		Host:     "localhost",
		Port:     dbPort,
		Database: "database",
		Username: "user",
		Password: "password",
		Schema:   "public",
		SSLMode:  "disable",
	}

	engine, err := turnpath.NewDatabaseEngine(dbConfig)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	defer engine.Close()

	partition := uuid.New()

	a := model.Junction{Point: model.Point{Lat: 48.2082, Lon: 16.3738}, NodeID: 1}
	b := model.Junction{Point: model.Point{Lat: 48.2092, Lon: 16.3738}, NodeID: 2}
	c := model.Junction{Point: model.Point{Lat: 48.2102, Lon: 16.3738}, NodeID: 3}

	// Store the attributes of every feature the graph references.
	features := []*model.Feature{
		{Partition: partition, Index: 1, Class: model.HighwayClassPrimary, Name: "Ringstrasse", Origin: a.Point, Metadata: model.Metadata{}},
		{Partition: partition, Index: 2, Class: model.HighwayClassPrimary, Name: "Ringstrasse", OnRoundabout: true, Origin: b.Point, Metadata: model.Metadata{}},
	}
	for _, feature := range features {
		if err := engine.Features.InsertFeature(feature); err != nil {
			log.Fatalf("Failed to insert feature: %v", err)
		}
	}

	g := graph.NewMemoryGraph()
	g.AddEdge(model.NewEdge(model.NewFeatureID(partition, 1), a, b))
	g.AddEdge(model.NewEdge(model.NewFeatureID(partition, 2), b, c))

	// Snap a nearby position onto the network.
	nearest, err := engine.NearestFeature(model.Point{Lat: 48.2083, Lon: 16.3740})
	if err != nil {
		log.Fatalf("Failed to snap position: %v", err)
	}
	fmt.Printf("Nearest feature: %d (%s)\n", nearest.Index, nearest.Name)

	// Annotate the shortest path a -> b -> c with attributes loaded
	// from the database.
	route, err := engine.Generate(context.Background(), g, []model.Junction{a, b, c}, nil)
	if err != nil {
		log.Fatalf("Failed to generate route: %v", err)
	}

	fmt.Printf("Result kind: %s\n", route.Kind)
	for _, turn := range route.Turns {
		fmt.Printf("Turn at %d: %s\n", turn.Index, turn.Direction)
	}
	for _, street := range route.Streets {
		fmt.Printf("Street from segment %d: %s\n", street.Index, street.Name)
	}
}
