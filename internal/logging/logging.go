// Package logging adapts zerolog to the calculation engine's Logger
// interface and centralizes logger construction for the binaries.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Console output is human-readable; debug
// drops the level floor.
func New(debug bool) zerolog.Logger {
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// EngineAdapter exposes a zerolog.Logger through the engine's minimal
// printf-style interface.
type EngineAdapter struct {
	Log zerolog.Logger
}

func (a EngineAdapter) Debugf(format string, args ...any) { a.Log.Debug().Msgf(format, args...) }
func (a EngineAdapter) Infof(format string, args ...any)  { a.Log.Info().Msgf(format, args...) }
func (a EngineAdapter) Warnf(format string, args ...any)  { a.Log.Warn().Msgf(format, args...) }
func (a EngineAdapter) Errorf(format string, args ...any) { a.Log.Error().Msgf(format, args...) }
