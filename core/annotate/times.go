package annotate

import (
	"github.com/siherrmann/turnpath/core/graph"
	"github.com/siherrmann/turnpath/model"
)

// CalculateTimes computes the cumulative travel time for every point of
// the junction path. The speed comes from the road graph when it
// implements SpeedGraph, otherwise from the configured default.
func CalculateTimes(g graph.RoadGraph, path []model.Junction, config model.AnnotationConfig) []model.TimedPoint {
	if len(path) == 0 {
		return nil
	}

	speedKMpH := config.DefaultSpeedKMpH
	if sg, ok := g.(graph.SpeedGraph); ok && sg.MaxSpeedKMpH() > 0 {
		speedKMpH = sg.MaxSpeedKMpH()
	}
	speedMpS := speedKMpH * 1000 / 3600

	times := make([]model.TimedPoint, 0, len(path))
	times = append(times, model.TimedPoint{Index: 0, Seconds: 0})

	total := 0.0
	for i := 1; i < len(path); i++ {
		distance := model.DistanceOnEarth(path[i-1].Point, path[i].Point)
		if speedMpS > 0 {
			total += distance / speedMpS
		}
		times = append(times, model.TimedPoint{Index: i, Seconds: total})
	}

	return times
}
