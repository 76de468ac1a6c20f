// Package logger builds the zerolog logger shared by commands and the terminal UI.
package logger

import (
	"io"
	"strings"
	"time"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/rs/zerolog"
)

// FormatJSON selects line-delimited JSON output; anything else is console output.
const FormatJSON = "json"

// New returns a logger writing to w at the configured level. Unknown levels
// fall back to info.
func New(cfg model.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if !strings.EqualFold(cfg.Format, FormatJSON) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
