package airframe

import "github.com/chaddw/fdm/internal/mathutil"

// StockElements returns the eight-element light-aircraft airframe table
// (four wing sections, two stabilizer halves, the rudder, and the
// fuselage) that cmd/fdmsim builds the Bourg model's initial state from.
// Each call returns a fresh slice, since Build mutates its Element
// arguments in place.
func StockElements() []*Element {
	v := mathutil.NewVector3
	return []*Element{
		{Mass: 6.56, DesignPos: v(14.5, 12.0, 2.5), LocalInertia: v(13.92, 10.50, 24.00), IncidenceDeg: -3.5, Area: 31.2},
		{Mass: 7.31, DesignPos: v(14.5, 5.5, 2.5), LocalInertia: v(21.95, 12.22, 33.67), IncidenceDeg: -3.5, Area: 36.4},
		{Mass: 7.31, DesignPos: v(14.5, -5.5, 2.5), LocalInertia: v(21.95, 12.22, 33.67), IncidenceDeg: -3.5, Area: 36.4},
		{Mass: 6.56, DesignPos: v(14.5, -12.0, 2.5), LocalInertia: v(13.92, 10.50, 24.00), IncidenceDeg: -3.5, Area: 31.2},
		{Mass: 2.62, DesignPos: v(3.03, 2.5, 3.0), LocalInertia: v(0.837, 0.385, 1.206), Area: 10.8},
		{Mass: 2.62, DesignPos: v(3.03, -2.5, 3.0), LocalInertia: v(0.837, 0.385, 1.206), Area: 10.8},
		{Mass: 2.93, DesignPos: v(2.25, 0.0, 5.0), LocalInertia: v(1.262, 1.942, 0.718), DihedralDeg: 90.0, Area: 12.0},
		{Mass: 31.8, DesignPos: v(15.25, 0.0, 1.5), LocalInertia: v(66.30, 861.9, 861.9), Area: 84.0},
	}
}
