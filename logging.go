package cachewall

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// LogConfig holds logger configuration. Mirrors the teacher's own
// ConsoleWriter/MultiLevelWriter CLI setup, generalized into a reusable
// Config + Setup pair.
type LogConfig struct {
	// Level is the minimum log level to output.
	Level string
	// Pretty enables human-readable console output instead of JSON.
	Pretty bool
	// Output is the primary writer; additional writers (e.g. a log file)
	// may be supplied via ExtraOutputs.
	Output       io.Writer
	ExtraOutputs []io.Writer
}

// DefaultLogConfig returns a JSON-to-stderr configuration at info level.
func DefaultLogConfig() LogConfig {
	return LogConfig{Level: "info", Pretty: false, Output: os.Stderr}
}

// SetupLogging builds a zerolog.Logger from cfg. Multiple outputs (stdout
// plus an optional log file) are combined with zerolog.MultiLevelWriter,
// the same pattern the teacher's CLI entrypoint uses.
func SetupLogging(cfg LogConfig) zerolog.Logger {
	level := parseLogLevel(cfg.Level)

	var primary io.Writer = cfg.Output
	if cfg.Pretty {
		primary = zerolog.ConsoleWriter{Out: cfg.Output}
	}

	writers := append([]io.Writer{primary}, cfg.ExtraOutputs...)
	out := zerolog.MultiLevelWriter(writers...)

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
