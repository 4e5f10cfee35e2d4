// Package logging builds the zerolog logger used across the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	LevelKey  = "log.level"
	FormatKey = "log.format"

	FormatText = "text"
	FormatJSON = "json"

	DefaultLevel = "warn"
)

// NewWriter returns a console writer for "text" (or "plain") and w itself
// for "json".
func NewWriter(w io.Writer, format string) (io.Writer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText, "plain":
		return newConsoleWriter(w), nil
	case FormatJSON:
		return w, nil
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}
}

func newConsoleWriter(w io.Writer) *zerolog.ConsoleWriter {
	return &zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i interface{}) string {
			if ll, ok := i.(string); ok {
				return strings.ToUpper(ll)
			}
			return "????"
		},
	}
}

// New builds a logger writing to w from the log.level and log.format keys.
func New(cfg *viper.Viper, w io.Writer) (zerolog.Logger, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if w == nil {
		w = os.Stderr
	}

	rawLevel := cfg.GetString(LevelKey)
	if rawLevel == "" {
		rawLevel = DefaultLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(rawLevel))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", rawLevel, err)
	}

	writer, err := NewWriter(w, cfg.GetString(FormatKey))
	if err != nil {
		return zerolog.Nop(), err
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), nil
}
