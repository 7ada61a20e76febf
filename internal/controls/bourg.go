// Package controls turns a per-frame boolean keyboard snapshot into
// continuous control-surface deflections, for both flight models.
package controls

import "github.com/chaddw/fdm/internal/airframe"

// Element indices into the stock eight-element Bourg airframe that the
// control mapper drives. Indices 0 and 3 are the outboard wing sections
// (ailerons), 1 and 2 the inboard sections (flaps), 4 and 5 the stabilizer
// halves (elevator), 6 the rudder.
const (
	aileronLeft   = 0
	flapLeft      = 1
	flapRight     = 2
	aileronRight  = 3
	elevatorLeft  = 4
	elevatorRight = 5
	rudderIndex   = 6
)

const (
	maxThrust     = 3000.0
	thrustStep    = 100.0
	rudderDeflect = 16.0
)

// BourgKeyboardState is the boolean input snapshot for the element-based
// model, one flag per control action.
type BourgKeyboardState struct {
	ThrustUp    bool
	ThrustDown  bool
	LeftRudder  bool
	RightRudder bool
	RollLeft    bool
	RollRight   bool
	PitchUp     bool
	PitchDown   bool
	FlapsDown   bool
	ZeroFlaps   bool
}

// ApplyBourgControls mutates the rudder incidence, aileron/elevator flap
// indices, and thrust magnitude for one frame. Rudder and aileron/elevator
// indices are reset to neutral every call; the two flap indices are latched
// and only reset by an explicit ZeroFlaps (the "flaps" display flag set by
// FlapsDown is not cleared by ZeroFlaps, matching the original).
func ApplyBourgControls(elements []*airframe.Element, thrust *float64, flapsOn *bool, ks BourgKeyboardState) {
	elements[rudderIndex].IncidenceDeg = 0
	elements[aileronLeft].Flap = 0
	elements[aileronRight].Flap = 0
	elements[elevatorLeft].Flap = 0
	elements[elevatorRight].Flap = 0

	switch {
	case *thrust < maxThrust && ks.ThrustUp:
		*thrust += thrustStep
	case *thrust > 0 && ks.ThrustDown:
		*thrust -= thrustStep
	}

	switch {
	case ks.LeftRudder:
		elements[rudderIndex].IncidenceDeg = rudderDeflect
	case ks.RightRudder:
		elements[rudderIndex].IncidenceDeg = -rudderDeflect
	}

	switch {
	case ks.RollLeft:
		elements[aileronLeft].Flap = 1
		elements[aileronRight].Flap = -1
	case ks.RollRight:
		elements[aileronLeft].Flap = -1
		elements[aileronRight].Flap = 1
	}

	switch {
	case ks.PitchUp:
		elements[elevatorLeft].Flap = 1
		elements[elevatorRight].Flap = 1
	case ks.PitchDown:
		elements[elevatorLeft].Flap = -1
		elements[elevatorRight].Flap = -1
	}

	switch {
	case ks.FlapsDown:
		elements[flapLeft].Flap = -1
		elements[flapRight].Flap = -1
		*flapsOn = true
	case ks.ZeroFlaps:
		elements[flapLeft].Flap = 0
		elements[flapRight].Flap = 0
	}
}
