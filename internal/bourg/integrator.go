package bourg

import "github.com/chaddw/fdm/internal/mathutil"

// DefaultTimestep is the Bourg model's fixed simulation step, 33 ms (30 Hz).
const DefaultTimestep = 0.033

// Step advances the rigid-body state by dt using semi-implicit Euler
// integration: acceleration and angular acceleration are computed from the
// forces/moments already populated by ComputeForces, then velocity and
// position (linear and angular) are updated in place, followed by the
// quaternion derivative update, fresh renormalization, and the
// earth-to-body velocity back-rotation used for the next frame's airspeed.
func Step(s *State, dt float64) {
	accel := s.Forces.Div(s.Mass)
	s.Velocity = s.Velocity.Add(accel.Scale(dt))
	s.Position = s.Position.Add(s.Velocity.Scale(dt))

	gyroscopic := s.AngularVelocity.Cross(s.Inertia.MulVector(s.AngularVelocity))
	angularAccel := s.InertiaInv.MulVector(s.Moments.Sub(gyroscopic))
	s.AngularVelocity = s.AngularVelocity.Add(angularAccel.Scale(dt))

	qDot := s.Orientation.Mul(mathutil.NewPureQuaternion(s.AngularVelocity)).Scale(0.5 * dt)
	s.Orientation = s.Orientation.Add(qDot)
	s.OrientationUnit = s.Orientation.Normalized()

	s.VelocityBody = s.OrientationUnit.Conjugate().RotateVector(s.Velocity)

	s.Roll, s.Pitch, s.Yaw = s.OrientationUnit.EulerAngles()
	s.Speed = s.Velocity.Magnitude()
	s.FrameCount++
}
