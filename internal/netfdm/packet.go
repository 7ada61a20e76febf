// Package netfdm encodes aircraft state into FlightGear's native FGNetFDM
// UDP wire packet, version 24, always in big-endian byte order regardless
// of host endianness.
package netfdm

import (
	"bytes"
	"encoding/binary"
)

// PacketSize is the fixed, padded size of an FGNetFDM version-24 packet.
const PacketSize = 408

const protocolVersion = 24

// Frame is the subset of aircraft state the encoder needs, independent of
// which flight dynamics model produced it. Angles are in radians, rates in
// radians/second, velocities in the units FGNetFDM expects per field (see
// Encode).
type Frame struct {
	LonRad, LatRad float64
	AltM           float64
	AGLM           float32

	Phi, Theta, Psi             float32 // rad
	Alpha, Beta                 float32 // rad
	PhiDot, ThetaDot, PsiDot    float32 // rad/s

	Vcas      float32
	ClimbRate float32

	VNorth, VEast, VDown float32 // ft/s
	VBodyU, VBodyV, VBodyW float32

	AXPilot, AYPilot, AZPilot float32 // ft/s^2

	StallWarning float32
	SlipDeg      float32

	Elevator                  float32
	ElevatorTrimTab           float32
	LeftFlap, RightFlap       float32
	LeftAileron, RightAileron float32
	Rudder                    float32
	NoseWheel                 float32
	Speedbrake                float32
	Spoilers                  float32
}

// Encode writes f as a 408-byte FGNetFDM version-24 packet. Every
// multi-byte field is swapped to big-endian individually; engine, tank,
// and wheel blocks beyond the single reported unit are left at zero, as
// are fields this model has no data for (fuel, gear, time/warp beyond the
// fixed visibility/warp constants).
//
// The engine-status block carries ten f32[4] arrays (eng_state through
// oil_px), not eleven, and the trailing control-surface block carries all
// ten fields (elevator through spoilers), not six: both counts come
// straight from the FGNetFDM struct in original_source's bourg_as_ecs,
// which sums to exactly 408 bytes. spec.md's own layout table mistypes the
// engine block as eleven arrays, which would overcount the packet by 16
// bytes; the control-surface row is the one spec.md gets right.
func Encode(f Frame) []byte {
	buf := new(bytes.Buffer)
	buf.Grow(PacketSize)

	write := func(v any) {
		if err := binary.Write(buf, binary.BigEndian, v); err != nil {
			panic("netfdm: encoding fixed-width field: " + err.Error())
		}
	}

	write(int32(protocolVersion))
	write(int32(0)) // padding

	write(f.LonRad)
	write(f.LatRad)
	write(f.AltM)

	write(f.AGLM)
	write(f.Phi)
	write(f.Theta)
	write(f.Psi)
	write(f.Alpha)
	write(f.Beta)

	write(f.PhiDot)
	write(f.ThetaDot)
	write(f.PsiDot)

	write(f.Vcas)
	write(f.ClimbRate)

	write(f.VNorth)
	write(f.VEast)
	write(f.VDown)

	write(f.VBodyU)
	write(f.VBodyV)
	write(f.VBodyW)

	write(f.AXPilot)
	write(f.AYPilot)
	write(f.AZPilot)

	write(f.StallWarning)
	write(f.SlipDeg)

	write(int32(1)) // num_engines

	var engineBlock [10 * 4]float32 // eng_state..oil_px, 4 engines each, unused
	write(engineBlock)

	write(int32(1)) // num_tanks
	var fuelQuantity [4]float32
	write(fuelQuantity)

	write(int32(1)) // num_wheels
	var wow, gearPos, gearSteer, gearCompression [3]float32
	write(wow)
	write(gearPos)
	write(gearSteer)
	write(gearCompression)

	write(float32(0))      // cur_time
	write(float32(1.0))    // warp
	write(float32(5000.0)) // visibility

	write(f.Elevator)
	write(f.ElevatorTrimTab)
	write(f.LeftFlap)
	write(f.RightFlap)
	write(f.LeftAileron)
	write(f.RightAileron)
	write(f.Rudder)
	write(f.NoseWheel)
	write(f.Speedbrake)
	write(f.Spoilers)

	out := buf.Bytes()
	if len(out) != PacketSize {
		panic("netfdm: encoded packet is not 408 bytes")
	}
	return out
}
