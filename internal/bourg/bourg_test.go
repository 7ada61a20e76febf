package bourg

import (
	"math"
	"testing"

	"github.com/chaddw/fdm/internal/aerotables"
	"github.com/chaddw/fdm/internal/airframe"
	"github.com/chaddw/fdm/internal/mathutil"
)

// referenceElements is the stock eight-element light-aircraft airframe used
// throughout the scenarios in spec.md section 8.
func referenceElements() []*airframe.Element {
	v := mathutil.NewVector3
	return []*airframe.Element{
		{Mass: 6.56, DesignPos: v(14.5, 12.0, 2.5), LocalInertia: v(13.92, 10.50, 24.00), IncidenceDeg: -3.5, Area: 31.2, Flap: aerotables.FlapNeutral},
		{Mass: 7.31, DesignPos: v(14.5, 5.5, 2.5), LocalInertia: v(21.95, 12.22, 33.67), IncidenceDeg: -3.5, Area: 36.4, Flap: aerotables.FlapNeutral},
		{Mass: 7.31, DesignPos: v(14.5, -5.5, 2.5), LocalInertia: v(21.95, 12.22, 33.67), IncidenceDeg: -3.5, Area: 36.4, Flap: aerotables.FlapNeutral},
		{Mass: 6.56, DesignPos: v(14.5, -12.0, 2.5), LocalInertia: v(13.92, 10.50, 24.00), IncidenceDeg: -3.5, Area: 31.2, Flap: aerotables.FlapNeutral},
		{Mass: 2.62, DesignPos: v(3.03, 2.5, 3.0), LocalInertia: v(0.837, 0.385, 1.206), Area: 10.8, Flap: aerotables.FlapNeutral},
		{Mass: 2.62, DesignPos: v(3.03, -2.5, 3.0), LocalInertia: v(0.837, 0.385, 1.206), Area: 10.8, Flap: aerotables.FlapNeutral},
		{Mass: 2.93, DesignPos: v(2.25, 0.0, 5.0), LocalInertia: v(1.262, 1.942, 0.718), DihedralDeg: 90.0, Area: 12.0, Flap: aerotables.FlapNeutral},
		{Mass: 31.8, DesignPos: v(15.25, 0.0, 1.5), LocalInertia: v(66.30, 861.9, 861.9), Area: 84.0, Flap: aerotables.FlapNeutral},
	}
}

func newTestState(t *testing.T, thrust float64) *State {
	t.Helper()
	s, err := New(referenceElements(), thrust)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestStepPreservesUnitQuaternionNorm(t *testing.T) {
	s := newTestState(t, 0)
	for i := 0; i < 60; i++ {
		ComputeForces(s)
		Step(s, DefaultTimestep)
	}
	if math.Abs(s.OrientationUnit.Magnitude()-1) > 1e-6 {
		t.Fatalf("|q_unit| = %v, want within 1e-6 of 1", s.OrientationUnit.Magnitude())
	}
}

func TestFreeFallMatchesHalfGTSquared(t *testing.T) {
	// Neutral controls, zero thrust, zero initial velocity: the only force
	// is gravity, so position should track 0.5*g*t^2 on the earth Z axis.
	s := newTestState(t, 0)
	const dt = DefaultTimestep
	steps := int(math.Floor(1.0 / dt))

	for i := 0; i < steps; i++ {
		ComputeForces(s)
		Step(s, dt)
	}

	elapsed := float64(steps) * dt
	wantZ := 0.5 * gravityFtS2 * elapsed * elapsed
	if math.Abs(s.Position.Z-wantZ) > math.Abs(wantZ)*0.05 {
		t.Fatalf("position.Z = %v after %vs free fall, want within 5%% of %v", s.Position.Z, elapsed, wantZ)
	}
}

func TestSpeedMonotonicUnderConstantThrust(t *testing.T) {
	// Level flight, non-zero thrust, neutral controls: speed should climb
	// (net thrust exceeds drag at low airspeed) and never decrease once
	// airspeed has built past the initial transient.
	s := newTestState(t, 2000)
	s.Velocity = mathutil.NewVector3(60, 0, 0)

	const dt = DefaultTimestep
	var lastSpeed float64
	var sawDecrease bool
	for i := 0; i < int(math.Floor(1.0/dt)); i++ {
		ComputeForces(s)
		Step(s, dt)
		if i > 5 && s.Speed < lastSpeed-1e-9 {
			sawDecrease = true
		}
		lastSpeed = s.Speed
	}
	if sawDecrease {
		t.Fatalf("speed decreased at some point under sustained thrust; last observed speed %v", lastSpeed)
	}
}
