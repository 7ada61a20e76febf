// Package fdmlog provides the structured logger shared across the
// simulator: JSON output, configurable level, stdout or file sink.
package fdmlog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Default is the package-level logger used by components that don't take
// an explicit *logrus.Logger.
var Default *logrus.Logger

func init() {
	Default = New("info", "stdout")
}

// New builds a logger at the given level ("debug"|"info"|"warn"|"error"),
// writing JSON-formatted records to "stdout" or to the named file.
func New(level, output string) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(parseLevel(level))

	if output == "" || output == "stdout" {
		logger.SetOutput(os.Stdout)
	} else {
		file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logger.SetOutput(file)
		} else {
			logger.SetOutput(os.Stdout)
			logger.Warnf("failed to open log file %s, using stdout", output)
		}
	}

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	return logger
}

func parseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// SetLevel changes Default's level at runtime.
func SetLevel(level string) {
	Default.SetLevel(parseLevel(level))
}
