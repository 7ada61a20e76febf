package bourg

import (
	"math"

	"github.com/chaddw/fdm/internal/aerotables"
	"github.com/chaddw/fdm/internal/mathutil"
)

const rudderElementIndex = 6

// rad2deg converts the asin result in ComputeForces from radians to
// degrees before the coefficient-table lookup, per the attack-angle
// contract: the tables are parameterized in degrees.
const rad2deg = 180 / math.Pi

// ComputeForces resets and repopulates State.Forces (earth frame) and
// State.Moments (body frame) from the current element normals, body
// velocity, angular velocity, and thrust. Only the seven lifting elements
// (indices 0-6) contribute aerodynamically; the fuselage (index 7, if
// present) contributes mass and inertia only, already folded into Mass and
// Inertia at init.
func ComputeForces(s *State) {
	s.Elements[rudderElementIndex].RecomputeNormal()

	var fb, mb mathutil.Vector3
	s.Stalling = false

	localSpeed := s.VelocityBody.Magnitude()

	for i := 0; i < rudderElementIndex+1; i++ {
		el := s.Elements[i]

		rotational := s.AngularVelocity.Cross(el.CGPos)
		localVelocity := s.VelocityBody.Add(rotational)

		drag := mathutil.NewVector3(1, 1, 1)
		if localSpeed > dragOnsetMPS {
			drag = localVelocity.Neg().Div(localSpeed)
		}

		lift := drag.Cross(el.Normal).Cross(drag).Normalized()

		cosAlpha := drag.Dot(el.Normal)
		if cosAlpha > 1 {
			cosAlpha = 1
		}
		if cosAlpha < -1 {
			cosAlpha = -1
		}
		alphaDeg := math.Asin(cosAlpha) * rad2deg

		dynamicPressure := 0.5 * airDensity * localSpeed * localSpeed * el.Area

		var resultant mathutil.Vector3
		if i == rudderElementIndex {
			cl := aerotables.RudderLift(alphaDeg)
			cd := aerotables.RudderDrag(alphaDeg)
			resultant = lift.Scale(cl).Add(drag.Scale(cd)).Scale(dynamicPressure)
		} else {
			cl := aerotables.Lift(alphaDeg, el.Flap)
			cd := aerotables.Drag(alphaDeg, el.Flap)
			resultant = lift.Scale(cl).Add(drag.Scale(cd)).Scale(dynamicPressure)
			if i <= 3 && cl == 0 {
				s.Stalling = true
			}
		}

		fb = fb.Add(resultant)
		mb = mb.Add(el.CGPos.Cross(resultant))
	}

	fb = fb.Add(mathutil.NewVector3(s.Thrust, 0, 0))

	// Force is rotated to earth frame with the raw (non-renormalized)
	// orientation quaternion, matching the original's literal choice
	// (see DESIGN.md); the velocity rotation in the integrator uses the
	// unit form instead.
	earthForce := s.Orientation.RotateVector(fb)
	earthForce.Z += gravityFtS2 * s.Mass

	s.Forces = earthForce
	s.Moments = mb
}
