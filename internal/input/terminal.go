package input

import (
	"bufio"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/chaddw/fdm/internal/fdmerr"
)

// TerminalSource reads single keypresses from stdin in raw mode: no
// line buffering, no local echo, no terminal-generated signals (Ctrl-C
// arrives as a byte, not SIGINT), one byte (or one ANSI arrow-key escape
// sequence) per keystroke. A background goroutine drains stdin into a
// channel so Poll never blocks past its timeout.
type TerminalSource struct {
	fd       int
	oldState *term.State
	keys     chan rune
}

const (
	keyArrowUp rune = iota + 0x100
	keyArrowDown
	keyArrowRight
	keyArrowLeft
)

// NewTerminalSource puts stdin into raw mode and starts the background
// reader. Callers must call Close to restore cooked mode, including on
// every error and panic exit path.
func NewTerminalSource() (*TerminalSource, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, &fdmerr.IoError{Message: "enable terminal raw mode: " + err.Error()}
	}

	ts := &TerminalSource{
		fd:       fd,
		oldState: oldState,
		keys:     make(chan rune, 32),
	}
	go ts.readLoop()
	return ts, nil
}

func (ts *TerminalSource) readLoop() {
	r := bufio.NewReader(os.Stdin)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		if b == 0x1b {
			b2, err := r.ReadByte()
			if err != nil || b2 != '[' {
				continue
			}
			b3, err := r.ReadByte()
			if err != nil {
				continue
			}
			switch b3 {
			case 'A':
				ts.push(keyArrowUp)
			case 'B':
				ts.push(keyArrowDown)
			case 'C':
				ts.push(keyArrowRight)
			case 'D':
				ts.push(keyArrowLeft)
			}
			continue
		}
		ts.push(rune(b))
	}
}

func (ts *TerminalSource) push(k rune) {
	select {
	case ts.keys <- k:
	default: // drop if the consumer has fallen behind; next poll recovers
	}
}

// Poll collects every key observed during timeout into a Snapshot.
func (ts *TerminalSource) Poll(timeout time.Duration) (Snapshot, error) {
	var snap Snapshot
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case k := <-ts.keys:
			applyKey(&snap, k)
		case <-timer.C:
			return snap, nil
		}
	}
}

func applyKey(snap *Snapshot, k rune) {
	switch k {
	case 'a', 'A':
		snap.A = true
	case 'z', 'Z':
		snap.Z = true
	case 'n', 'N':
		snap.N = true
	case 'm', 'M':
		snap.M = true
	case 'f', 'F':
		snap.F = true
	case 'g', 'G':
		snap.G = true
	case 'q', 'Q':
		snap.Q = true
	case keyArrowUp:
		snap.ArrowUp = true
	case keyArrowDown:
		snap.ArrowDown = true
	case keyArrowLeft:
		snap.ArrowLeft = true
	case keyArrowRight:
		snap.ArrowRight = true
	}
}

// Close restores the terminal's original mode.
func (ts *TerminalSource) Close() error {
	return term.Restore(ts.fd, ts.oldState)
}
