package model

// Junction is a road network graph vertex. It is produced by the
// shortest path search and never mutated by this library.
type Junction struct {
	Point  Point `json:"point"`
	NodeID int64 `json:"node_id,omitempty"`
}

// NewJunction creates a junction without a node identity.
func NewJunction(lat, lon float64) Junction {
	return Junction{Point: Point{Lat: lat, Lon: lon}}
}

// Equal reports whether two junctions denote the same vertex. Node
// identities win when both sides carry one, coordinates break the tie
// for anonymous vertices.
func (j Junction) Equal(other Junction) bool {
	if j.NodeID != 0 && other.NodeID != 0 {
		return j.NodeID == other.NodeID
	}
	return j.Point.EqualEps(other.Point, PointEqualityEps)
}
