package palmer

import "math"

// DefaultTimestep is the fixed simulation step, matching the Bourg model's
// frame rate so both models can share one scheduler.
const DefaultTimestep = 0.033

// Step advances s by dt using fourth-order Runge-Kutta integration of the
// six-element state vector, re-evaluating the derivative at each of the
// four stages rather than freezing forces over the step. Altitude is
// clamped to the ground elevation afterward; Palmer has no undercarriage
// model, so a touchdown simply halts descent rather than bouncing or
// crashing.
func Step(s *State, dt float64) {
	q0 := s.Q

	k1 := derivative(q0, s.Performance, s.Controls)
	q1 := advance(q0, k1, dt/2)

	k2 := derivative(q1, s.Performance, s.Controls)
	q2 := advance(q0, k2, dt/2)

	k3 := derivative(q2, s.Performance, s.Controls)
	q3 := advance(q0, k3, dt)

	k4 := derivative(q3, s.Performance, s.Controls)

	var next [6]float64
	for i := range next {
		next[i] = q0[i] + (dt/6)*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	s.Q = next

	if s.Q[5] < groundElevationM {
		s.Q[5] = groundElevationM
		if s.Q[4] < 0 {
			s.Q[4] = 0
		}
	}

	vx, vy, vz := s.velocity()
	s.Airspeed = math.Sqrt(vx*vx + vy*vy + vz*vz)
	s.ClimbAngle = math.Atan2(vz, math.Hypot(vx, vy))
	s.HeadingAngle = math.Atan2(vy, vx)
	s.ClimbRate = vz
	s.FrameCount++
}

func advance(q, k [6]float64, h float64) [6]float64 {
	var out [6]float64
	for i := range out {
		out[i] = q[i] + h*k[i]
	}
	return out
}
