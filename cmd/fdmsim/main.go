// Command fdmsim runs the flight-dynamics core: it samples keyboard or
// joystick input, steps the selected model (Bourg's element-based rigid
// body, or Palmer's whole-aircraft RK4), encodes the result as an
// FGNetFDM packet, and sends it to a running FlightGear instance over
// UDP, once per fixed frame period.
package main

import (
	"context"
	"math"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/chaddw/fdm/internal/airframe"
	"github.com/chaddw/fdm/internal/bourg"
	"github.com/chaddw/fdm/internal/config"
	"github.com/chaddw/fdm/internal/controls"
	"github.com/chaddw/fdm/internal/fdmerr"
	"github.com/chaddw/fdm/internal/geodesy"
	"github.com/chaddw/fdm/internal/input"
	"github.com/chaddw/fdm/internal/mathutil"
	"github.com/chaddw/fdm/internal/netfdm"
	"github.com/chaddw/fdm/internal/palmer"
	"github.com/chaddw/fdm/internal/scheduler"
	"github.com/chaddw/fdm/internal/telemetry"
	"github.com/chaddw/fdm/pkg/fdmlog"
)

// Wpafb runway latitude/longitude, the origin of Palmer's stock scenario.
// Bourg does not use it: its initial state is given directly in ECEF
// (near KTTS, see buildBourgTick).
const (
	stockLatDeg = 39.826
	stockLonDeg = -84.045

	deg2rad = math.Pi / 180
)

const feetToMeters = 0.3048

// inputPollTimeout is the slice of each frame period spent waiting for a
// keystroke before moving on to integration; short enough to leave the
// bulk of the 33ms frame for everything else, long enough to reliably
// pick up a key the background reader has already buffered.
const inputPollTimeout = 2 * time.Millisecond

func main() {
	cfg, err := config.Parse()
	if err != nil {
		logrus.WithError(err).Fatal("fdmsim: configuration error")
	}

	logger := fdmlog.New(cfg.LogLevel, cfg.LogOutput)
	fdmlog.Default = logger

	logger.WithFields(logrus.Fields{
		"model":       cfg.Model,
		"local_addr":  cfg.LocalAddr,
		"remote_addr": cfg.RemoteAddr,
		"timestep_ms": cfg.Timestep.Seconds() * 1000,
	}).Info("fdmsim: starting")

	laddr, err := net.ResolveUDPAddr("udp", cfg.LocalAddr)
	if err != nil {
		logger.WithError(err).Fatal("fdmsim: resolve local UDP address")
	}
	raddr, err := net.ResolveUDPAddr("udp", cfg.RemoteAddr)
	if err != nil {
		logger.WithError(err).Fatal("fdmsim: resolve remote UDP address")
	}
	conn, err := net.DialUDP("udp", laddr, raddr)
	if err != nil {
		logger.WithError(err).Fatal("fdmsim: open UDP socket")
	}
	defer conn.Close()

	source, err := openInputSource(cfg)
	if err != nil {
		logger.WithError(err).Fatal("fdmsim: open input source")
	}
	defer source.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var telemetryBroadcaster *telemetry.Broadcaster
	var telemetryServer *http.Server
	if cfg.TelemetryEnabled {
		telemetryBroadcaster = telemetry.NewBroadcaster(logger)
		go telemetryBroadcaster.Run(ctx)

		mux := http.NewServeMux()
		mux.Handle("/telemetry", telemetryBroadcaster)
		telemetryServer = &http.Server{Addr: cfg.TelemetryAddr, Handler: mux}
		go func() {
			logger.WithField("addr", cfg.TelemetryAddr).Info("fdmsim: telemetry listening")
			if err := telemetryServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.WithError(err).Error("fdmsim: telemetry server error")
			}
		}()
	}

	tick, err := buildTick(cfg, conn, source, telemetryBroadcaster, logger)
	if err != nil {
		logger.WithError(err).Fatal("fdmsim: build simulation")
	}

	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("fdmsim: shutdown signal received")
		close(done)
	}()

	sched := scheduler.New(cfg.Timestep, tick, logger)
	runErr := sched.Run(done)

	cancel()
	if telemetryServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		telemetryServer.Shutdown(shutdownCtx)
		shutdownCancel()
	}

	if runErr != nil {
		logger.WithError(runErr).Fatal("fdmsim: fatal error, exiting")
	}
	logger.Info("fdmsim: shutdown complete")
}

func openInputSource(cfg config.Config) (input.Source, error) {
	if cfg.JoystickPort != "" {
		return input.OpenSerialJoystickSource(cfg.JoystickPort, cfg.JoystickBaud)
	}
	return input.NewTerminalSource()
}

// buildTick constructs the scheduler.Tick closure for the selected model:
// sample input, map controls, integrate, encode, send. Everything the
// closure touches (model state, socket, input source) is captured once
// here rather than threaded through scheduler.Run's signature, matching
// spec.md's single-threaded frame-loop design.
func buildTick(cfg config.Config, conn *net.UDPConn, source input.Source, telem *telemetry.Broadcaster, logger *logrus.Logger) (scheduler.Tick, error) {
	switch cfg.Model {
	case config.ModelPalmer:
		return buildPalmerTick(conn, source, telem, logger), nil
	default:
		return buildBourgTick(conn, source, telem, logger)
	}
}

func buildBourgTick(conn *net.UDPConn, source input.Source, telem *telemetry.Broadcaster, logger *logrus.Logger) (scheduler.Tick, error) {
	state, err := bourg.New(airframe.StockElements(), 500.0)
	if err != nil {
		return nil, err
	}
	// Stock Bourg initial state: ECEF ~KTTS at 2000 ft, 60 ft/s earth-frame
	// velocity, identity orientation.
	state.Position = mathutil.NewVector3(907440.867577218, -5530938.88177552, 3035061.57686847)
	state.Velocity = mathutil.NewVector3(60, 0, 0)

	var flapsOn bool
	thrust := state.Thrust

	return func() error {
		snap, err := source.Poll(inputPollTimeout)
		if err != nil {
			return &fdmerr.IoError{Message: "poll input: " + err.Error()}
		}
		if snap.Q {
			return fdmerr.ErrUserExit
		}

		ks := input.ToBourg(snap)
		controls.ApplyBourgControls(state.Elements, &thrust, &flapsOn, ks)
		state.Thrust = thrust

		bourg.ComputeForces(state)
		bourg.Step(state, bourg.DefaultTimestep)

		lat, lon, alt := geodesy.ECEFToLLA(state.Position.X, state.Position.Y, state.Position.Z)

		frame := netfdm.Frame{
			LonRad: lon, LatRad: lat, AltM: alt,
			AGLM:  float32(alt),
			Phi:   float32(state.Roll), Theta: float32(state.Pitch), Psi: float32(state.Yaw),
			Vcas:      float32(state.Speed / feetToMeters),
			ClimbRate: float32(state.Velocity.Z / feetToMeters),
			VNorth:    float32(state.Velocity.X / feetToMeters),
			VEast:     float32(state.Velocity.Y / feetToMeters),
			VDown:     float32(-state.Velocity.Z / feetToMeters),
			VBodyU:    float32(state.VelocityBody.X / feetToMeters),
			VBodyV:    float32(state.VelocityBody.Y / feetToMeters),
			VBodyW:    float32(state.VelocityBody.Z / feetToMeters),
			Elevator:     float32(state.Elements[4].Flap) * 20,
			LeftFlap:     float32(state.Elements[1].Flap) * 20,
			RightFlap:    float32(state.Elements[2].Flap) * 20,
			LeftAileron:  float32(state.Elements[0].Flap) * 20,
			RightAileron: float32(state.Elements[3].Flap) * 20,
			Rudder:       float32(state.Elements[6].IncidenceDeg),
		}
		if state.Stalling {
			frame.StallWarning = 1
		}

		if _, err := conn.Write(netfdm.Encode(frame)); err != nil {
			return &fdmerr.IoError{Message: "send FGNetFDM packet: " + err.Error()}
		}

		if telem != nil {
			telem.Publish(telemetry.Frame{
				Timestamp:  time.Now(),
				Model:      string(config.ModelBourg),
				Position:   [3]float64{state.Position.X, state.Position.Y, state.Position.Z},
				Velocity:   [3]float64{state.Velocity.X, state.Velocity.Y, state.Velocity.Z},
				Attitude:   [3]float64{state.Roll, state.Pitch, state.Yaw},
				Speed:      state.Speed,
				Throttle:   state.Thrust,
				Stalling:   state.Stalling,
				FrameCount: state.FrameCount,
			})
		}

		logger.WithFields(logrus.Fields{
			"frame": state.FrameCount, "speed_kts": state.Speed / feetToMeters / 1.688,
			"position": state.Position, "stalling": state.Stalling,
		}).Debug("fdmsim: bourg frame")

		return nil
	}, nil
}

func buildPalmerTick(conn *net.UDPConn, source input.Source, telem *telemetry.Broadcaster, logger *logrus.Logger) scheduler.Tick {
	perf := palmer.DefaultPerformanceData()
	state := palmer.New(perf, 0, 0, 248.0)

	return func() error {
		snap, err := source.Poll(inputPollTimeout)
		if err != nil {
			return &fdmerr.IoError{Message: "poll input: " + err.Error()}
		}
		if snap.Q {
			return fdmerr.ErrUserExit
		}

		ks := input.ToPalmer(snap)
		controls.ApplyPalmerControls(&state.Controls, ks)

		palmer.Step(state, palmer.DefaultTimestep)

		x, y, z := state.Position()
		// Palmer's horizontal state is a local tangent-plane offset in
		// meters from the Wpafb origin (see DESIGN.md), not degrees; this
		// is an equirectangular approximation back to geodetic lat/lon
		// purely for the wire encoder, since neither spec.md nor the
		// retrieved original source define the exact conversion Palmer's
		// missing equations-of-motion file would have used.
		latRad := stockLatDeg*deg2rad + y/geodesy.EarthRadiusApproxM
		lonRad := stockLonDeg*deg2rad + x/(geodesy.EarthRadiusApproxM*math.Cos(stockLatDeg*deg2rad))

		frame := netfdm.Frame{
			LonRad: lonRad, LatRad: latRad, AltM: z,
			AGLM:  float32(z - 248.0),
			Theta: float32(state.ClimbAngle), Psi: float32(state.HeadingAngle),
			Phi:   float32(state.Controls.Bank * deg2rad),
			Alpha: float32(state.Controls.Alpha * deg2rad),
			Vcas:      float32(state.Airspeed),
			ClimbRate: float32(state.ClimbRate),
			Elevator:     float32(state.Controls.Alpha),
			LeftAileron:  float32(state.Controls.Bank),
			RightAileron: float32(-state.Controls.Bank),
			LeftFlap:     float32(state.Controls.Flap),
			RightFlap:    float32(state.Controls.Flap),
		}

		if _, err := conn.Write(netfdm.Encode(frame)); err != nil {
			return &fdmerr.IoError{Message: "send FGNetFDM packet: " + err.Error()}
		}

		if telem != nil {
			telem.Publish(telemetry.Frame{
				Timestamp:  time.Now(),
				Model:      string(config.ModelPalmer),
				Position:   [3]float64{x, y, z},
				Velocity:   [3]float64{0, 0, state.ClimbRate},
				Attitude:   [3]float64{state.Controls.Bank * deg2rad, state.ClimbAngle, state.HeadingAngle},
				Speed:      state.Airspeed,
				Throttle:   state.Controls.Throttle,
				FrameCount: state.FrameCount,
			})
		}

		logger.WithFields(logrus.Fields{
			"frame": state.FrameCount, "airspeed": state.Airspeed, "altitude": z,
		}).Debug("fdmsim: palmer frame")

		return nil
	}
}
