package palmer

import (
	"math"

	"github.com/chaddw/fdm/internal/controls"
)

// derivative evaluates dQ/dt for the six-element state vector
// (vx, x, vy, y, vz, z), given the current controls. Thrust acts along the
// body X axis (velocity direction pitched up by alpha); lift acts
// perpendicular to the velocity vector within the vertical plane, rolled
// out of that plane by the bank angle; drag acts directly opposite the
// velocity vector. Gravity is subtracted from the vertical acceleration.
func derivative(q [6]float64, perf PerformanceData, ctl controls.PalmerControlState) [6]float64 {
	vx, vy, vz := q[0], q[2], q[4]

	horizSpeed := math.Hypot(vx, vy)
	airspeed := math.Sqrt(vx*vx + vy*vy + vz*vz)

	climb := math.Atan2(vz, horizSpeed)
	heading := math.Atan2(vy, vx)

	alphaRad := ctl.Alpha * deg2rad
	bankRad := ctl.Bank * deg2rad

	clWing := perf.WingLift(ctl.Alpha)
	clTail := perf.TailLift(ctl.Alpha)
	cdWing := perf.DragCoefficient(clWing, perf.WingArea)
	cdTail := perf.DragCoefficient(clTail, perf.TailArea)

	qbar := 0.5 * airDensity * airspeed * airspeed
	lift := qbar * (perf.WingArea*clWing + perf.TailArea*clTail)
	drag := qbar * (perf.WingArea*cdWing + perf.TailArea*cdTail)

	thrust := perf.Thrust(ctl.Throttle, airspeed)

	// Thrust direction: velocity direction pitched up by alpha in the
	// vertical plane containing the flight path.
	pitch := climb + alphaRad
	thrustVec := [3]float64{
		thrust * math.Cos(pitch) * math.Cos(heading),
		thrust * math.Cos(pitch) * math.Sin(heading),
		thrust * math.Sin(pitch),
	}

	// Unbanked lift direction: perpendicular to the flight path, in the
	// vertical plane, pointing "up" relative to the flight path.
	liftUp := [3]float64{
		-math.Sin(climb) * math.Cos(heading),
		-math.Sin(climb) * math.Sin(heading),
		math.Cos(climb),
	}
	// Horizontal direction perpendicular to the ground track, used to roll
	// the lift vector out of the vertical plane by the bank angle.
	side := [3]float64{-math.Sin(heading), math.Cos(heading), 0}

	cosBank, sinBank := math.Cos(bankRad), math.Sin(bankRad)
	liftVec := [3]float64{
		lift * (liftUp[0]*cosBank + side[0]*sinBank),
		lift * (liftUp[1]*cosBank + side[1]*sinBank),
		lift * (liftUp[2]*cosBank + side[2]*sinBank),
	}

	var dragVec [3]float64
	if airspeed > minThrustAirspeed {
		dragVec = [3]float64{
			-drag * vx / airspeed,
			-drag * vy / airspeed,
			-drag * vz / airspeed,
		}
	}

	fx := thrustVec[0] + liftVec[0] + dragVec[0]
	fy := thrustVec[1] + liftVec[1] + dragVec[1]
	fz := thrustVec[2] + liftVec[2] + dragVec[2] - gravityMPS2*perf.Mass

	m := perf.Mass
	return [6]float64{
		fx / m, vx,
		fy / m, vy,
		fz / m, vz,
	}
}

const deg2rad = math.Pi / 180
