package controls

import "testing"

func TestApplyPalmerControlsClampsBank(t *testing.T) {
	state := &PalmerControlState{}
	for i := 0; i < 1000; i++ {
		ApplyPalmerControls(state, PalmerKeyboardState{BankLeft: true})
	}
	if state.Bank != -bankMax {
		t.Fatalf("bank = %v, want clamped to %v", state.Bank, -bankMax)
	}
}

func TestApplyPalmerControlsClampsThrottle(t *testing.T) {
	state := &PalmerControlState{}
	for i := 0; i < 1000; i++ {
		ApplyPalmerControls(state, PalmerKeyboardState{ThrottleUp: true})
	}
	if state.Throttle != 1 {
		t.Fatalf("throttle = %v, want clamped to 1", state.Throttle)
	}
}

func TestApplyPalmerControlsFlapLatch(t *testing.T) {
	state := &PalmerControlState{}
	ApplyPalmerControls(state, PalmerKeyboardState{FlapsDown: true})
	if state.Flap != PalmerFlapDown {
		t.Fatalf("flap = %v, want PalmerFlapDown", state.Flap)
	}
	ApplyPalmerControls(state, PalmerKeyboardState{})
	if state.Flap != PalmerFlapDown {
		t.Fatalf("flap reset by neutral frame: %v, want still PalmerFlapDown", state.Flap)
	}
	ApplyPalmerControls(state, PalmerKeyboardState{ZeroFlaps: true})
	if state.Flap != PalmerFlapUp {
		t.Fatalf("flap = %v, want PalmerFlapUp after zero_flaps", state.Flap)
	}
}
