package palmer

import "github.com/chaddw/fdm/internal/controls"

const (
	airDensity       = 1.225
	gravityMPS2      = 9.81
	groundElevationM = 248.0 // Wpafb runway elevation, matches the stock scenario's LLA origin
)

// State is the Palmer model's per-aircraft state. Q holds the six-element
// ODE vector (vx, x, vy, y, vz, z) the integrator advances; Controls holds
// the continuous bank/alpha/throttle/flap values the control mapper
// updates each frame. Position/velocity accessors below read out of Q.
type State struct {
	Performance PerformanceData
	Controls    controls.PalmerControlState

	Q [6]float64

	Airspeed     float64
	ClimbAngle   float64 // radians
	HeadingAngle float64 // radians
	ClimbRate    float64 // m/s

	FrameCount uint64
}

// New builds a Palmer State at the given initial earth-frame position
// (x, y, z meters) and zero velocity.
func New(perf PerformanceData, x, y, z float64) *State {
	s := &State{Performance: perf}
	s.Q = [6]float64{0, x, 0, y, 0, z}
	return s
}

func (s *State) velocity() (vx, vy, vz float64) {
	return s.Q[0], s.Q[2], s.Q[4]
}

func (s *State) position() (x, y, z float64) {
	return s.Q[1], s.Q[3], s.Q[5]
}

// Position returns the current earth-frame position.
func (s *State) Position() (x, y, z float64) {
	return s.position()
}
