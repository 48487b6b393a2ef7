package model

// AnnotationConfig holds the knobs of one annotation pass.
type AnnotationConfig struct {
	// ComputeAngles enables turn geometry angles on outgoing candidates.
	// Profiles that decide turns by road class change leave it off.
	ComputeAngles bool `json:"compute_angles"`

	// DefaultSpeedKMpH is used for travel times when the road graph
	// does not report a speed of its own.
	DefaultSpeedKMpH float64 `json:"default_speed_kmph"`
}

// DefaultAnnotationConfig returns the configuration used by the bicycle
// profile: no turn angles, a conservative flat speed.
func DefaultAnnotationConfig() AnnotationConfig {
	return AnnotationConfig{
		ComputeAngles:    false,
		DefaultSpeedKMpH: 15.0,
	}
}
