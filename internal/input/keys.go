// Package input reads the cooperative keyboard state and turns it into the
// per-model boolean snapshots the control mapper consumes. Two sources are
// provided: a terminal raw-mode reader and a serial HOTAS/yoke adapter;
// both produce the same Snapshot.
package input

import (
	"time"

	"github.com/chaddw/fdm/internal/controls"
)

// Snapshot is the raw key-state this frame, independent of which flight
// model is active. A and Z are thrust/throttle; N and M are the Bourg
// rudder keys; F and G are flaps; Q is quit. The arrow keys carry
// different meaning per model (see ToBourg/ToPalmer).
type Snapshot struct {
	A, Z, N, M, F, G, Q                       bool
	ArrowUp, ArrowDown, ArrowLeft, ArrowRight bool
}

// Source polls the input device for up to timeout and returns the keys
// observed as pressed during that window. Sources must never block past
// timeout, since the scheduler budgets a small, fixed slice of the frame
// period for input.
type Source interface {
	Poll(timeout time.Duration) (Snapshot, error)
	Close() error
}

// ToBourg maps a Snapshot onto the element-based model's key bindings:
// a/z thrust, n/m rudder, arrows roll/pitch, f/g flaps.
func ToBourg(s Snapshot) controls.BourgKeyboardState {
	return controls.BourgKeyboardState{
		ThrustUp:    s.A,
		ThrustDown:  s.Z,
		LeftRudder:  s.N,
		RightRudder: s.M,
		RollLeft:    s.ArrowLeft,
		RollRight:   s.ArrowRight,
		PitchUp:     s.ArrowUp,
		PitchDown:   s.ArrowDown,
		FlapsDown:   s.F,
		ZeroFlaps:   s.G,
	}
}

// ToPalmer maps a Snapshot onto the whole-aircraft model's key bindings:
// a/z throttle, left/right arrows bank, f/g flaps. Angle of attack is
// bound to the vertical arrows in reverse of their Bourg meaning (down
// raises alpha, up lowers it) — preserved from the original keyboard
// system rather than "corrected", since nothing in the spec calls the
// reversal out as a bug.
func ToPalmer(s Snapshot) controls.PalmerKeyboardState {
	return controls.PalmerKeyboardState{
		ThrottleUp:   s.A,
		ThrottleDown: s.Z,
		AoaUp:        s.ArrowDown,
		AoaDown:      s.ArrowUp,
		BankLeft:     s.ArrowLeft,
		BankRight:    s.ArrowRight,
		FlapsDown:    s.F,
		ZeroFlaps:    s.G,
	}
}
