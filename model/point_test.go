package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceOnEarth(t *testing.T) {
	t.Run("Zero distance for identical points", func(t *testing.T) {
		p := Point{Lat: 55.7522, Lon: 37.6156}
		assert.Equal(t, 0.0, DistanceOnEarth(p, p), "Expected zero distance between a point and itself")
	})

	t.Run("One degree of latitude", func(t *testing.T) {
		from := Point{Lat: 0, Lon: 0}
		to := Point{Lat: 1, Lon: 0}
		d := DistanceOnEarth(from, to)
		assert.InDelta(t, 111319.49, d, 1.0, "Expected one degree of latitude to be about 111.3 km")
	})

	t.Run("Symmetric", func(t *testing.T) {
		a := Point{Lat: 48.8566, Lon: 2.3522}
		b := Point{Lat: 52.5200, Lon: 13.4050}
		assert.InDelta(t, DistanceOnEarth(a, b), DistanceOnEarth(b, a), 1e-9, "Expected distance to be symmetric")
	})

	t.Run("Longitude span shrinks with latitude", func(t *testing.T) {
		atEquator := DistanceOnEarth(Point{Lat: 0, Lon: 0}, Point{Lat: 0, Lon: 1})
		atSixty := DistanceOnEarth(Point{Lat: 60, Lon: 0}, Point{Lat: 60, Lon: 1})
		assert.Greater(t, atEquator, atSixty, "Expected a degree of longitude to span less distance at higher latitude")
	})
}

func TestPointEqualEps(t *testing.T) {
	t.Run("Equal within tolerance", func(t *testing.T) {
		a := Point{Lat: 10.0000000, Lon: 20.0000000}
		b := Point{Lat: 10.00000004, Lon: 19.99999996}
		assert.True(t, a.EqualEps(b, PointEqualityEps), "Expected points within eps to compare equal")
	})

	t.Run("Not equal outside tolerance", func(t *testing.T) {
		a := Point{Lat: 10, Lon: 20}
		b := Point{Lat: 10.001, Lon: 20}
		assert.False(t, a.EqualEps(b, PointEqualityEps), "Expected points outside eps to compare unequal")
	})
}
