// Package scheduler runs the fixed-rate frame loop: sample input, map
// controls, integrate, encode, send — once per period, with no catch-up
// if a frame overruns.
package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/chaddw/fdm/internal/fdmerr"
)

// Tick is one frame's work: sample input, map controls, integrate the
// model, encode the wire packet, send it. Returning fdmerr.ErrUserExit
// ends the loop cleanly; a *fdmerr.ConfigError ends it and is returned
// as fatal; any other error is logged and the loop continues to the next
// frame, per spec.md's NumericError/IoError recovery policy.
type Tick func() error

// Scheduler runs Tick at a fixed period.
type Scheduler struct {
	period time.Duration
	tick   Tick
	logger *logrus.Logger
}

// New builds a Scheduler. logger may be nil, in which case a default
// logrus.Logger is used.
func New(period time.Duration, tick Tick, logger *logrus.Logger) *Scheduler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Scheduler{period: period, tick: tick, logger: logger}
}

// Run executes Tick once per period until Tick returns
// fdmerr.ErrUserExit, a *fdmerr.ConfigError propagates (fatal), or done
// is closed. Each iteration measures its own elapsed time: if it
// finished under the period, Run sleeps the remainder; if it ran at or
// over the period, Run proceeds immediately to the next frame rather
// than trying to catch up.
func (s *Scheduler) Run(done <-chan struct{}) error {
	for {
		select {
		case <-done:
			return nil
		default:
		}

		start := time.Now()
		err := s.tick()
		elapsed := time.Since(start)

		if err != nil {
			if err == fdmerr.ErrUserExit {
				return nil
			}
			if cfgErr, ok := err.(*fdmerr.ConfigError); ok {
				return cfgErr
			}
			s.logger.WithError(err).Warn("scheduler: frame error, continuing")
		}

		if elapsed < s.period {
			time.Sleep(s.period - elapsed)
		} else if elapsed > s.period {
			s.logger.WithField("elapsed_ms", elapsed.Milliseconds()).Debug("scheduler: frame overrun, no catch-up")
		}
	}
}
