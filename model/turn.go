package model

// TurnDirection is the maneuver type attached to a turn item.
type TurnDirection int

const (
	TurnNone TurnDirection = iota
	TurnGoStraight
	TurnSlightRight
	TurnRight
	TurnSharpRight
	TurnSlightLeft
	TurnLeft
	TurnSharpLeft
	TurnUTurn
	TurnEnterRoundabout
	TurnStayOnRoundabout
	TurnLeaveRoundabout
	TurnReachedDestination
)

var turnDirectionNames = map[TurnDirection]string{
	TurnNone:               "none",
	TurnGoStraight:         "go_straight",
	TurnSlightRight:        "slight_right",
	TurnRight:              "right",
	TurnSharpRight:         "sharp_right",
	TurnSlightLeft:         "slight_left",
	TurnLeft:               "left",
	TurnSharpLeft:          "sharp_left",
	TurnUTurn:              "u_turn",
	TurnEnterRoundabout:    "enter_roundabout",
	TurnStayOnRoundabout:   "stay_on_roundabout",
	TurnLeaveRoundabout:    "leave_roundabout",
	TurnReachedDestination: "reached_destination",
}

func (d TurnDirection) String() string {
	if name, ok := turnDirectionNames[d]; ok {
		return name
	}
	return "none"
}

// TurnItem positions a maneuver on the route point sequence.
type TurnItem struct {
	Index     int           `json:"index"`
	Direction TurnDirection `json:"direction"`
}

// TurnCandidate is one possible outgoing direction from a junction.
type TurnCandidate struct {
	// Angle is the turn angle in degrees. Only meaningful when the
	// containing set has AnglesValid set.
	Angle        float64      `json:"angle"`
	FeatureIndex uint32       `json:"feature_index"`
	Class        HighwayClass `json:"class"`
}

// TurnCandidates is an ordered set of outgoing turn candidates.
// AnglesValid is false for profiles that decide turns by road class
// change rather than bearing.
type TurnCandidates struct {
	AnglesValid bool            `json:"angles_valid"`
	Candidates  []TurnCandidate `json:"candidates"`
}

// AdjacentEdges is the per junction turn decision context: how many
// edges physically enter the junction and which real edges leave it.
type AdjacentEdges struct {
	IngoingCount int            `json:"ingoing_count"`
	Outgoing     TurnCandidates `json:"outgoing"`
}

// AdjacentEdgesMap keys turn decision context by the feature index of
// the edge traversed to enter the junction, not by junction identity.
// Key 0 holds the sentinel record for the path origin. The downstream
// turn algorithm depends on this keying.
type AdjacentEdgesMap map[uint32]AdjacentEdges
