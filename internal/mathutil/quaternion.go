package mathutil

import "math"

// Quaternion is a Hamilton quaternion (W, X, Y, Z) used to track orientation.
// RigidBodyState carries both a raw accumulating quaternion and its
// normalized unit form; callers should compute the unit form fresh each
// frame rather than writing it back (see Normalized).
type Quaternion struct {
	W, X, Y, Z float64
}

// IdentityQuaternion returns the identity rotation.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// NewPureQuaternion builds a quaternion with zero scalar part from a vector,
// used to multiply a vector through the Hamilton product.
func NewPureQuaternion(v Vector3) Quaternion {
	return Quaternion{W: 0, X: v.X, Y: v.Y, Z: v.Z}
}

// Vector returns the vector (X, Y, Z) part.
func (q Quaternion) Vector() Vector3 {
	return Vector3{q.X, q.Y, q.Z}
}

// Add returns the component-wise sum.
func (q Quaternion) Add(r Quaternion) Quaternion {
	return Quaternion{q.W + r.W, q.X + r.X, q.Y + r.Y, q.Z + r.Z}
}

// Scale returns q scaled by a scalar.
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

// Mul returns the Hamilton product q * r.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Conjugate returns the conjugate q*.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

// Magnitude returns the quaternion norm.
func (q Quaternion) Magnitude() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalized returns the unit quaternion in the direction of q, applying the
// same zero-tolerance tie-break as Vector3.Normalized. A near-zero
// quaternion normalizes to the identity rotation rather than propagating a
// division by a near-zero magnitude.
func (q Quaternion) Normalized() Quaternion {
	m := q.Magnitude()
	if m <= ZeroTolerance {
		return IdentityQuaternion()
	}
	n := Quaternion{q.W / m, q.X / m, q.Y / m, q.Z / m}
	if math.Abs(n.W) < ZeroTolerance {
		n.W = 0
	}
	if math.Abs(n.X) < ZeroTolerance {
		n.X = 0
	}
	if math.Abs(n.Y) < ZeroTolerance {
		n.Y = 0
	}
	if math.Abs(n.Z) < ZeroTolerance {
		n.Z = 0
	}
	return n
}

// RotateVector rotates v by the unit quaternion q, equivalent to
// q (x) (0, v) (x) q*. The caller must pass a unit quaternion; RotateVector
// does not renormalize.
func (q Quaternion) RotateVector(v Vector3) Vector3 {
	p := NewPureQuaternion(v)
	r := q.Mul(p).Mul(q.Conjugate())
	return r.Vector()
}

// EulerAngles returns the (roll, pitch, yaw) Euler angles in radians derived
// from the unit quaternion q, using the standard aerospace z-y-x convention.
func (q Quaternion) EulerAngles() (roll, pitch, yaw float64) {
	sinrCosp := 2 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1 - 2*(q.X*q.X+q.Y*q.Y)
	roll = math.Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	switch {
	case sinp >= 1:
		pitch = math.Pi / 2
	case sinp <= -1:
		pitch = -math.Pi / 2
	default:
		pitch = math.Asin(sinp)
	}

	sinyCosp := 2 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	yaw = math.Atan2(sinyCosp, cosyCosp)
	return roll, pitch, yaw
}
