package model

import "math"

// EarthRadiusMeters is the mean earth radius used for great circle distances.
const EarthRadiusMeters = 6378137.0

// PointEqualityEps is the tolerance used when comparing coordinates that
// originate from the same graph storage.
const PointEqualityEps = 1e-7

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// EqualEps reports whether two points are equal within eps degrees.
func (p Point) EqualEps(other Point, eps float64) bool {
	return math.Abs(p.Lat-other.Lat) <= eps && math.Abs(p.Lon-other.Lon) <= eps
}

// DistanceOnEarth returns the great circle distance between two points in meters.
func DistanceOnEarth(from, to Point) float64 {
	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (to.Lon - from.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(a))
}
