package airframe

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/chaddw/fdm/internal/mathutil"
)

// SingularInertiaError is returned when the assembled inertia tensor cannot
// be inverted.
type SingularInertiaError struct {
	Reason string
}

func (e *SingularInertiaError) Error() string {
	return fmt.Sprintf("airframe: singular inertia tensor: %s", e.Reason)
}

// MassProperties is the one-shot result of Build: total mass, combined
// center of gravity, and the 3x3 inertia tensor and its inverse.
type MassProperties struct {
	TotalMass   float64
	CG          mathutil.Vector3
	Inertia     mathutil.Matrix3
	InertiaInv  mathutil.Matrix3
}

// Build computes mass properties for a set of elements, in place: each
// element's Normal and CGPos fields are populated, and the aggregate
// MassProperties is returned. Called exactly once, at simulation init.
//
// The inertia tensor is assembled in SI-adjacent units (matching each
// element's mass/local-inertia units, whatever they are) and inverted via
// gonum, which detects singularity through the LU decomposition it builds
// internally rather than a hand-rolled determinant check.
func Build(elements []*Element) (MassProperties, error) {
	for _, e := range elements {
		e.recomputeNormal()
	}

	var totalMass float64
	for _, e := range elements {
		totalMass += e.Mass
	}

	var momentX, momentY, momentZ float64
	for _, e := range elements {
		momentX += e.Mass * e.DesignPos.X
		momentY += e.Mass * e.DesignPos.Y
		momentZ += e.Mass * e.DesignPos.Z
	}
	cg := mathutil.NewVector3(momentX, momentY, momentZ).Div(totalMass)

	for _, e := range elements {
		e.CGPos = e.DesignPos.Sub(cg)
	}

	var ixx, iyy, izz, ixy, ixz, iyz float64
	for _, e := range elements {
		c := e.CGPos
		ixx += e.LocalInertia.X + e.Mass*(c.Y*c.Y+c.Z*c.Z)
		iyy += e.LocalInertia.Y + e.Mass*(c.Z*c.Z+c.X*c.X)
		izz += e.LocalInertia.Z + e.Mass*(c.X*c.X+c.Y*c.Y)
		ixy += e.Mass * (c.X * c.Y)
		ixz += e.Mass * (c.X * c.Z)
		iyz += e.Mass * (c.Y * c.Z)
	}

	inertia := mathutil.Matrix3{M: [3][3]float64{
		{ixx, -ixy, -ixz},
		{-ixy, iyy, -iyz},
		{-ixz, -iyz, izz},
	}}

	dense := mat.NewDense(3, 3, []float64{
		inertia.M[0][0], inertia.M[0][1], inertia.M[0][2],
		inertia.M[1][0], inertia.M[1][1], inertia.M[1][2],
		inertia.M[2][0], inertia.M[2][1], inertia.M[2][2],
	})

	var inv mat.Dense
	if err := inv.Inverse(dense); err != nil {
		return MassProperties{}, &SingularInertiaError{Reason: err.Error()}
	}

	var inertiaInv mathutil.Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inertiaInv.M[i][j] = inv.At(i, j)
		}
	}

	return MassProperties{
		TotalMass:  totalMass,
		CG:         cg,
		Inertia:    inertia,
		InertiaInv: inertiaInv,
	}, nil
}
