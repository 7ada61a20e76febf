package input

import (
	"time"

	"go.bug.st/serial"

	"github.com/chaddw/fdm/internal/fdmerr"
)

// SerialJoystickSource reads a compact two-byte key-state frame from a
// HOTAS/yoke-style serial device and maps it onto the same Snapshot the
// terminal source produces. The frame format (one bit per recognized key)
// is this repo's own minimal protocol — neither spec.md nor the original
// keyboard-only input system defines a wire format for an external
// controller — chosen to need nothing beyond raw byte reads, matching the
// style of the teacher's `actuators.MAVLinkProtocol` serial handling
// without adopting MAVLink itself (there is no aircraft-control telemetry
// link here, just a local joystick).
//
// Byte 0, bit 0: A, bit 1: Z, bit 2: N, bit 3: M, bit 4: F, bit 5: G, bit 6: Q.
// Byte 1, bit 0: arrow up, bit 1: arrow down, bit 2: arrow left, bit 3: arrow right.
type SerialJoystickSource struct {
	port serial.Port
}

// OpenSerialJoystickSource opens portName at baudRate with the 8N1 framing
// the device is assumed to use.
func OpenSerialJoystickSource(portName string, baudRate int) (*SerialJoystickSource, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, &fdmerr.IoError{Message: "open serial joystick " + portName + ": " + err.Error()}
	}
	if err := port.SetReadTimeout(time.Millisecond); err != nil {
		port.Close()
		return nil, &fdmerr.IoError{Message: "set serial read timeout: " + err.Error()}
	}

	return &SerialJoystickSource{port: port}, nil
}

// Poll reads the next two bytes the device delivers within timeout as one
// key-state frame; older buffered frames are not skipped. A short read
// (device idle, no frame ready) yields an all-false Snapshot rather than
// an error.
func (s *SerialJoystickSource) Poll(timeout time.Duration) (Snapshot, error) {
	deadline := time.Now().Add(timeout)
	buf := make([]byte, 2)

	var n int
	for n < 2 && time.Now().Before(deadline) {
		m, err := s.port.Read(buf[n:])
		if err != nil {
			return Snapshot{}, &fdmerr.IoError{Message: "read serial joystick: " + err.Error()}
		}
		n += m
		if m == 0 {
			break
		}
	}
	if n < 2 {
		return Snapshot{}, nil
	}

	b0, b1 := buf[0], buf[1]
	return Snapshot{
		A: b0&0x01 != 0,
		Z: b0&0x02 != 0,
		N: b0&0x04 != 0,
		M: b0&0x08 != 0,
		F: b0&0x10 != 0,
		G: b0&0x20 != 0,
		Q: b0&0x40 != 0,

		ArrowUp:    b1&0x01 != 0,
		ArrowDown:  b1&0x02 != 0,
		ArrowLeft:  b1&0x04 != 0,
		ArrowRight: b1&0x08 != 0,
	}, nil
}

// Close releases the serial port.
func (s *SerialJoystickSource) Close() error {
	return s.port.Close()
}
