package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/chaddw/fdm/internal/fdmerr"
)

func TestRunStopsOnUserExit(t *testing.T) {
	count := 0
	s := New(time.Millisecond, func() error {
		count++
		if count == 3 {
			return fdmerr.ErrUserExit
		}
		return nil
	}, nil)

	if err := s.Run(nil); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if count != 3 {
		t.Fatalf("tick count = %d, want 3", count)
	}
}

func TestRunContinuesOnRecoverableError(t *testing.T) {
	count := 0
	s := New(time.Millisecond, func() error {
		count++
		if count < 3 {
			return errors.New("transient frame error")
		}
		if count == 3 {
			return fdmerr.ErrUserExit
		}
		return nil
	}, nil)

	if err := s.Run(nil); err != nil {
		t.Fatalf("Run() = %v, want nil (recoverable errors should not stop the loop)", err)
	}
	if count != 3 {
		t.Fatalf("tick count = %d, want 3", count)
	}
}

func TestRunPropagatesConfigErrorFatally(t *testing.T) {
	s := New(time.Millisecond, func() error {
		return &fdmerr.ConfigError{Message: "boom"}
	}, nil)

	err := s.Run(nil)
	if err == nil {
		t.Fatal("Run() = nil, want a fatal ConfigError")
	}
	var cfgErr *fdmerr.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Run() error = %v, want *fdmerr.ConfigError", err)
	}
}

func TestRunStopsOnDoneChannel(t *testing.T) {
	done := make(chan struct{})
	count := 0
	s := New(time.Millisecond, func() error {
		count++
		if count == 2 {
			close(done)
		}
		return nil
	}, nil)

	if err := s.Run(done); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if count < 2 {
		t.Fatalf("tick count = %d, want at least 2", count)
	}
}

func TestRunHoldsApproximatePeriod(t *testing.T) {
	const period = 5 * time.Millisecond
	const frames = 10

	count := 0
	start := time.Now()
	s := New(period, func() error {
		count++
		if count == frames {
			return fdmerr.ErrUserExit
		}
		return nil
	}, nil)
	s.Run(nil)
	elapsed := time.Since(start)

	want := period * frames
	if elapsed < want/2 || elapsed > want*3 {
		t.Fatalf("elapsed = %v for %d frames at period %v, want roughly %v", elapsed, frames, period, want)
	}
}
