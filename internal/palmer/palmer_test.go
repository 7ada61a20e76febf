package palmer

import (
	"math"
	"testing"

	"github.com/chaddw/fdm/internal/controls"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestThrustStaticFallbackNonZero(t *testing.T) {
	perf := DefaultPerformanceData()
	th := perf.Thrust(1.0, 0)
	if th <= 0 {
		t.Fatalf("Thrust(1.0, 0) = %v, want > 0", th)
	}
}

func TestThrustDecreasesWithAirspeedAtFullThrottle(t *testing.T) {
	perf := DefaultPerformanceData()
	low := perf.Thrust(1.0, 20)
	high := perf.Thrust(1.0, 60)
	if high >= low {
		t.Fatalf("thrust at 60 m/s (%v) >= thrust at 20 m/s (%v), want decreasing", high, low)
	}
}

func TestWingLiftTwoPieceContinuousAtBreak(t *testing.T) {
	perf := DefaultPerformanceData()
	below := perf.WingLift(perf.AlphaClMax - 1e-6)
	above := perf.WingLift(perf.AlphaClMax + 1e-6)
	if !almostEqual(below, above, 1e-3) {
		t.Fatalf("wing lift discontinuous at alpha_cl_max: below=%v above=%v", below, above)
	}
}

func TestDragCoefficientIncreasesWithLift(t *testing.T) {
	perf := DefaultPerformanceData()
	lowCd := perf.DragCoefficient(0.2, perf.WingArea)
	highCd := perf.DragCoefficient(1.0, perf.WingArea)
	if highCd <= lowCd {
		t.Fatalf("drag coefficient at cl=1.0 (%v) <= cl=0.2 (%v), want increasing", highCd, lowCd)
	}
}

func TestStepGroundClampHaltsDescent(t *testing.T) {
	perf := DefaultPerformanceData()
	s := New(perf, 0, 0, groundElevationM+0.01)
	s.Q[4] = -5 // descending
	s.Controls = controls.PalmerControlState{Throttle: 0, Alpha: 0, Bank: 0}

	Step(s, DefaultTimestep)

	if s.Q[5] < groundElevationM {
		t.Fatalf("altitude = %v, want clamped at >= %v", s.Q[5], groundElevationM)
	}
	if s.Q[4] < 0 {
		t.Fatalf("vertical velocity = %v after ground clamp, want >= 0", s.Q[4])
	}
}

func TestStepLevelFlightClimbsUnderExcessThrust(t *testing.T) {
	// Full throttle, modest positive alpha, wings level, starting well above
	// the ground clamp and already moving forward: net vertical force should
	// be positive (climbing) rather than falling straight into gravity.
	perf := DefaultPerformanceData()
	s := New(perf, 0, 0, groundElevationM+500)
	s.Q[0] = 40 // forward airspeed, m/s
	s.Controls = controls.PalmerControlState{Throttle: 1.0, Alpha: 6.0, Bank: 0}

	for i := 0; i < 30; i++ {
		Step(s, DefaultTimestep)
	}

	if s.Q[5] <= groundElevationM+500 {
		t.Fatalf("altitude = %v after climb, want > initial %v", s.Q[5], groundElevationM+500)
	}
}

func TestStepBankTurnsHeading(t *testing.T) {
	perf := DefaultPerformanceData()
	s := New(perf, 0, 0, groundElevationM+500)
	s.Q[0] = 40
	s.Controls = controls.PalmerControlState{Throttle: 0.6, Alpha: 4.0, Bank: 20.0}

	startHeading := s.HeadingAngle
	for i := 0; i < 60; i++ {
		Step(s, DefaultTimestep)
	}

	if almostEqual(s.HeadingAngle, startHeading, 1e-3) {
		t.Fatalf("heading did not change under sustained bank: start=%v end=%v", startHeading, s.HeadingAngle)
	}
}

func TestFrameCountIncrements(t *testing.T) {
	s := New(DefaultPerformanceData(), 0, 0, groundElevationM+500)
	for i := 0; i < 10; i++ {
		Step(s, DefaultTimestep)
	}
	if s.FrameCount != 10 {
		t.Fatalf("FrameCount = %d, want 10", s.FrameCount)
	}
}
