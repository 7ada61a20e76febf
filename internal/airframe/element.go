// Package airframe defines the Bourg model's lifting-surface elements and
// the one-shot mass-properties builder that turns a list of them into the
// aircraft's total mass, combined center of gravity, and inertia tensor.
package airframe

import (
	"math"

	"github.com/chaddw/fdm/internal/aerotables"
	"github.com/chaddw/fdm/internal/mathutil"
)

const deg2rad = math.Pi / 180

// Element is one point-mass lifting surface (wing section, stabilizer half,
// rudder, or fuselage). Typically eight make up an airframe.
type Element struct {
	Mass          float64
	DesignPos     mathutil.Vector3 // position relative to the aircraft's design origin
	LocalInertia  mathutil.Vector3 // diagonal local inertia components
	IncidenceDeg  float64
	DihedralDeg   float64
	Area          float64
	Flap          aerotables.FlapIndex

	// Derived by the mass-properties builder; zero until Build runs.
	Normal  mathutil.Vector3
	CGPos   mathutil.Vector3 // DesignPos - combined CG
}

// recomputeNormal derives the unit surface normal from the element's current
// incidence and dihedral. Called once by Build for every element, and again
// by the force aggregator for the rudder alone after a control-mapper update
// changes its incidence.
func (e *Element) recomputeNormal() {
	inn := e.IncidenceDeg * deg2rad
	di := e.DihedralDeg * deg2rad
	n := mathutil.NewVector3(
		math.Sin(inn),
		math.Cos(inn)*math.Sin(di),
		math.Cos(inn)*math.Cos(di),
	)
	e.Normal = n.Normalized()
}

// RecomputeNormal recomputes this element's normal vector from its current
// incidence and dihedral. Exported for the rudder special case in the force
// aggregator (spec: the rudder's incidence changes at control-mapper time,
// so its normal must be refreshed every frame, unlike the other elements
// whose normals are fixed at Build time).
func (e *Element) RecomputeNormal() {
	e.recomputeNormal()
}
