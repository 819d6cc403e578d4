// Package logging builds the zerolog loggers used by chartcfg.
//
// Library packages take a zerolog.Logger and default to zerolog.Nop();
// only the command line tool creates a real logger with New.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Formats accepted by Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config configures a logger.
type Config struct {
	// Level is one of trace, debug, info, warn, error. Empty means info.
	Level string

	// Format is "console" or "json". Empty means console.
	Format string

	// Output receives the log lines. Nil means stderr.
	Output io.Writer

	// NoColor disables colors in console output.
	NoColor bool
}

// New creates a logger from cfg.
func New(cfg Config) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	switch cfg.Format {
	case "", FormatConsole:
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor,
		}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// ParseLevel converts a level name to a zerolog level. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// Component returns a child logger tagged with a component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
