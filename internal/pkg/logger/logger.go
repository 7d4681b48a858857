// Package logger owns the process-wide zerolog logger. Packages without an
// injected logger instance use the package-level event helpers.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel is a log level in its configuration spelling
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// Config controls the global logger output
type Config struct {
	Level  LogLevel
	Pretty bool      // console writer instead of JSON lines
	Output io.Writer // defaults to os.Stdout
}

var global zerolog.Logger

func init() {
	Configure(Config{Level: InfoLevel, Pretty: true})
}

// Configure rebuilds the global logger and mirrors it into zerolog's own
// log.Logger so both entry points share one configuration.
func Configure(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(levelFor(cfg.Level))

	writer := cfg.Output
	if cfg.Pretty {
		writer = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}

	global = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = global
}

// levelFor maps a configured level name to its zerolog level. Unknown names
// fall back to info rather than failing startup.
func levelFor(level LogLevel) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Info starts an info-level event on the global logger
func Info() *zerolog.Event {
	return global.Info()
}

// Warn starts a warn-level event on the global logger
func Warn() *zerolog.Event {
	return global.Warn()
}

// Error starts an error-level event on the global logger
func Error() *zerolog.Event {
	return global.Error()
}
