// Package aerotables holds the Bourg model's tabulated lift/drag
// coefficients and the breakpoint interpolation used to evaluate them.
package aerotables

// FlapIndex selects which coefficient column a lifting element reads from.
type FlapIndex int

const (
	FlapDown    FlapIndex = -1
	FlapNeutral FlapIndex = 0
	FlapUp      FlapIndex = 1
)

// alphaBreakpoints are the angle-of-attack sample points, in degrees, shared
// by every cambered-wing table.
var alphaBreakpoints = []float64{-8, -4, 0, 4, 8, 12, 16, 20, 24}

// rudderBreakpoints are the |alpha| sample points for the symmetric tables.
var rudderBreakpoints = []float64{0, 4, 8, 12, 16, 20, 24}

var liftTable = map[FlapIndex][]float64{
	FlapNeutral: {-0.54, -0.2, 0.2, 0.57, 0.92, 1.21, 1.43, 1.4, 1.0},
	FlapDown:    {0.0, 0.45, 0.85, 1.02, 1.39, 1.65, 1.75, 1.38, 1.17},
	FlapUp:      {-0.74, -0.4, 0.0, 0.27, 0.63, 0.92, 1.03, 1.1, 0.78},
}

var dragTable = map[FlapIndex][]float64{
	FlapNeutral: {0.01, 0.0074, 0.004, 0.009, 0.013, 0.023, 0.05, 0.12, 0.21},
	FlapDown:    {0.0065, 0.0043, 0.0055, 0.0153, 0.0221, 0.0391, 0.1, 0.195, 0.3},
	FlapUp:      {0.005, 0.0043, 0.0055, 0.02601, 0.03757, 0.06647, 0.13, 0.1, 0.25},
}

var rudderLiftTable = []float64{0.16, 0.456, 0.736, 0.968, 1.144, 1.12, 0.8}
var rudderDragTable = []float64{0.0032, 0.0072, 0.0104, 0.0184, 0.04, 0.096, 0.168}

// defaultLift and defaultDrag are returned when alpha falls outside the
// covered breakpoint range.
const (
	defaultLift = 0.0
	defaultDrag = 0.75
)

// interpolate finds the bracket x[i] <= alpha < x[i+1] and linearly
// interpolates y at alpha, returning def if alpha falls outside [x[0], x[last]].
// alpha exactly at the final breakpoint returns that breakpoint's value
// rather than falling through to the default, so the table stays exact at
// every breakpoint including the last.
func interpolate(x, y []float64, alpha, def float64) float64 {
	last := len(x) - 1
	if alpha < x[0] || alpha > x[last] {
		return def
	}
	if alpha == x[last] {
		return y[last]
	}
	for i := 0; i < last; i++ {
		if alpha >= x[i] && alpha < x[i+1] {
			t := (alpha - x[i]) / (x[i+1] - x[i])
			return y[i] + t*(y[i+1]-y[i])
		}
	}
	return def
}

// Lift returns the cambered-wing lift coefficient at the given angle of
// attack (degrees) and flap setting.
func Lift(alphaDeg float64, flap FlapIndex) float64 {
	return interpolate(alphaBreakpoints, liftTable[flap], alphaDeg, defaultLift)
}

// Drag returns the cambered-wing drag coefficient at the given angle of
// attack (degrees) and flap setting.
func Drag(alphaDeg float64, flap FlapIndex) float64 {
	return interpolate(alphaBreakpoints, dragTable[flap], alphaDeg, defaultDrag)
}

// RudderLift returns the symmetric-surface lift coefficient, odd in alpha:
// negative angles negate the magnitude looked up at |alpha|.
func RudderLift(alphaDeg float64) float64 {
	abs := alphaDeg
	if abs < 0 {
		abs = -abs
	}
	c := interpolate(rudderBreakpoints, rudderLiftTable, abs, defaultLift)
	if alphaDeg < 0 {
		return -c
	}
	return c
}

// RudderDrag returns the symmetric-surface drag coefficient, even in alpha.
func RudderDrag(alphaDeg float64) float64 {
	abs := alphaDeg
	if abs < 0 {
		abs = -abs
	}
	return interpolate(rudderBreakpoints, rudderDragTable, abs, defaultDrag)
}
