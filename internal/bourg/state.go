// Package bourg implements the element-based flight dynamics model: an
// eight-element airframe, tabulated aerodynamic coefficients, and a
// semi-implicit Euler integrator.
package bourg

import (
	"github.com/chaddw/fdm/internal/airframe"
	"github.com/chaddw/fdm/internal/mathutil"
)

const (
	// Gravity and air density reproduce the original's mixed-unit
	// constants bit-exactly (see DESIGN.md's open-question decisions):
	// imperial g applied to forces built from an SI air density and
	// ECEF-meter positions.
	gravityFtS2  = -32.174
	airDensity   = 1.225
	dragOnsetMPS = 1.0
)

// State is the authoritative per-aircraft rigid-body state for the
// element-based model. Mass, Inertia, and InertiaInv are set once at init
// by airframe.Build and are immutable afterward; everything else is
// mutated once per frame by the control mapper, force aggregator, and
// integrator, in that order.
type State struct {
	Elements []*airframe.Element

	Mass       float64
	Inertia    mathutil.Matrix3
	InertiaInv mathutil.Matrix3

	Position     mathutil.Vector3 // earth-fixed ECEF, meters
	Velocity     mathutil.Vector3 // earth frame
	VelocityBody mathutil.Vector3 // body frame, derived each step

	AngularVelocity mathutil.Vector3 // body frame

	// Orientation is the raw, accumulating quaternion the integrator
	// updates via its derivative each step. OrientationUnit is recomputed
	// fresh from Orientation every frame and is never written back into
	// Orientation — see DESIGN.md's raw/unit duality note.
	Orientation     mathutil.Quaternion
	OrientationUnit mathutil.Quaternion

	Roll, Pitch, Yaw float64 // radians, derived from OrientationUnit

	Forces  mathutil.Vector3 // earth frame, reset every frame
	Moments mathutil.Vector3 // body frame, reset every frame

	Thrust float64
	Speed  float64

	Stalling bool
	Flaps    bool

	FrameCount uint64
}

// New builds a State from an element list and initial thrust, computing
// mass properties exactly once. Position, velocity, and orientation start
// at the zero value; callers set the initial condition afterward.
func New(elements []*airframe.Element, thrust float64) (*State, error) {
	mp, err := airframe.Build(elements)
	if err != nil {
		return nil, err
	}
	return &State{
		Elements:        elements,
		Mass:            mp.TotalMass,
		Inertia:         mp.Inertia,
		InertiaInv:      mp.InertiaInv,
		Orientation:     mathutil.IdentityQuaternion(),
		OrientationUnit: mathutil.IdentityQuaternion(),
		Thrust:          thrust,
	}, nil
}
