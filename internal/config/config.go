// Package config parses the simulator's command-line flags. Every flag
// defaults to the value spec.md hard-codes, so running with no arguments
// at all reproduces the original fixed configuration exactly; flags exist
// only to let a developer override one value at a time.
package config

import (
	"flag"
	"time"

	"github.com/chaddw/fdm/internal/fdmerr"
)

// Model selects which flight dynamics model drives the simulation.
type Model string

const (
	ModelBourg  Model = "bourg"
	ModelPalmer Model = "palmer"
)

// Config is the fully resolved, validated simulator configuration.
type Config struct {
	Model Model

	LogLevel  string
	LogOutput string

	LocalAddr  string
	RemoteAddr string

	Timestep time.Duration

	TelemetryEnabled bool
	TelemetryAddr    string

	JoystickPort string
	JoystickBaud int
}

// Parse reads os.Args[1:] (via the flag package's default CommandLine)
// into a Config and validates it. Fatal misconfiguration (an unrecognized
// model, a non-positive timestep) is reported as a ConfigError rather
// than exiting the process directly, so callers can decide how to fail.
func Parse() (Config, error) {
	model := flag.String("model", string(ModelBourg), "flight dynamics model: bourg or palmer")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	logOutput := flag.String("log-output", "stdout", "log output: stdout or a file path")
	localAddr := flag.String("local-addr", "127.0.0.1:1337", "local UDP address to bind")
	remoteAddr := flag.String("remote-addr", "127.0.0.1:5500", "remote FlightGear UDP address")
	timestepMS := flag.Float64("timestep-ms", 33.0, "fixed frame period, milliseconds")
	telemetry := flag.Bool("telemetry", false, "enable the WebSocket telemetry broadcaster")
	telemetryAddr := flag.String("telemetry-addr", "127.0.0.1:8765", "telemetry broadcaster listen address")
	joystickPort := flag.String("joystick-port", "", "serial joystick device path (empty disables it)")
	joystickBaud := flag.Int("joystick-baud", 115200, "serial joystick baud rate")

	flag.Parse()

	cfg := Config{
		Model:            Model(*model),
		LogLevel:         *logLevel,
		LogOutput:        *logOutput,
		LocalAddr:        *localAddr,
		RemoteAddr:       *remoteAddr,
		Timestep:         time.Duration(*timestepMS * float64(time.Millisecond)),
		TelemetryEnabled: *telemetry,
		TelemetryAddr:    *telemetryAddr,
		JoystickPort:     *joystickPort,
		JoystickBaud:     *joystickBaud,
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Model != ModelBourg && c.Model != ModelPalmer {
		return &fdmerr.ConfigError{Message: "unknown model " + string(c.Model) + ", want bourg or palmer"}
	}
	if c.Timestep <= 0 {
		return &fdmerr.ConfigError{Message: "timestep must be positive"}
	}
	return nil
}
