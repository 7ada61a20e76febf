package controls

import (
	"testing"

	"github.com/chaddw/fdm/internal/airframe"
)

func newElements() []*airframe.Element {
	es := make([]*airframe.Element, 8)
	for i := range es {
		es[i] = &airframe.Element{}
	}
	return es
}

func TestApplyBourgControlsPitchOverrideWithinFrame(t *testing.T) {
	// S6: pitch_up then pitch_down, applied in sequence within the same
	// frame's control pass, ends with elevator indices at -1 (the later
	// call wins; nothing here latches pitch across frames).
	elements := newElements()
	var thrust float64
	var flaps bool

	ApplyBourgControls(elements, &thrust, &flaps, BourgKeyboardState{PitchUp: true})
	if elements[elevatorLeft].Flap != 1 || elements[elevatorRight].Flap != 1 {
		t.Fatalf("after pitch_up: elevator flaps = %v,%v, want 1,1", elements[elevatorLeft].Flap, elements[elevatorRight].Flap)
	}

	ApplyBourgControls(elements, &thrust, &flaps, BourgKeyboardState{PitchDown: true})
	if elements[elevatorLeft].Flap != -1 || elements[elevatorRight].Flap != -1 {
		t.Fatalf("after pitch_down: elevator flaps = %v,%v, want -1,-1", elements[elevatorLeft].Flap, elements[elevatorRight].Flap)
	}
}

func TestApplyBourgControlsFlapsLatchAcrossFrames(t *testing.T) {
	elements := newElements()
	var thrust float64
	var flaps bool

	ApplyBourgControls(elements, &thrust, &flaps, BourgKeyboardState{FlapsDown: true})
	if elements[flapLeft].Flap != -1 || !flaps {
		t.Fatalf("after flaps_down: flapLeft=%v flaps=%v, want -1,true", elements[flapLeft].Flap, flaps)
	}

	// A neutral frame (no flap key at all) must not reset the latch.
	ApplyBourgControls(elements, &thrust, &flaps, BourgKeyboardState{})
	if elements[flapLeft].Flap != -1 {
		t.Fatalf("flap latch reset by neutral frame: flapLeft=%v, want -1", elements[flapLeft].Flap)
	}

	// zero_flaps clears the indices but the original does not clear the
	// flaps display flag.
	ApplyBourgControls(elements, &thrust, &flaps, BourgKeyboardState{ZeroFlaps: true})
	if elements[flapLeft].Flap != 0 || elements[flapRight].Flap != 0 {
		t.Fatalf("after zero_flaps: flapLeft=%v flapRight=%v, want 0,0", elements[flapLeft].Flap, elements[flapRight].Flap)
	}
	if !flaps {
		t.Fatalf("zero_flaps cleared the flaps display flag, want it to stay latched true")
	}
}

func TestApplyBourgControlsThrustClampsAtBounds(t *testing.T) {
	elements := newElements()
	thrust := maxThrust - 50
	var flaps bool

	ApplyBourgControls(elements, &thrust, &flaps, BourgKeyboardState{ThrustUp: true})
	if thrust != maxThrust-50+thrustStep {
		t.Fatalf("thrust = %v, want one step added", thrust)
	}

	// At or above maxThrust, thrust_up adds nothing more.
	ApplyBourgControls(elements, &thrust, &flaps, BourgKeyboardState{ThrustUp: true})
	if thrust != maxThrust-50+thrustStep {
		t.Fatalf("thrust = %v above max after thrust_up, want unchanged %v", thrust, maxThrust-50+thrustStep)
	}

	thrust = 0
	ApplyBourgControls(elements, &thrust, &flaps, BourgKeyboardState{ThrustDown: true})
	if thrust != 0 {
		t.Fatalf("thrust went below 0: %v", thrust)
	}
}

func TestApplyBourgControlsRudderDeflection(t *testing.T) {
	elements := newElements()
	var thrust float64
	var flaps bool

	ApplyBourgControls(elements, &thrust, &flaps, BourgKeyboardState{LeftRudder: true})
	if elements[rudderIndex].IncidenceDeg != rudderDeflect {
		t.Fatalf("left rudder incidence = %v, want %v", elements[rudderIndex].IncidenceDeg, rudderDeflect)
	}

	ApplyBourgControls(elements, &thrust, &flaps, BourgKeyboardState{RightRudder: true})
	if elements[rudderIndex].IncidenceDeg != -rudderDeflect {
		t.Fatalf("right rudder incidence = %v, want %v", elements[rudderIndex].IncidenceDeg, -rudderDeflect)
	}
}
