// Package logging builds the zerolog logger shared by the CLI and the prober.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the level and sinks. An empty File logs to the console
// writer only.
type Options struct {
	Level   string
	File    string
	Console io.Writer
}

// Rotation limits for the log file, in megabytes and days.
const (
	maxSizeMB  = 10
	maxAgeDays = 14
	maxBackups = 3
)

func New(opts Options) (zerolog.Logger, error) {
	level := zerolog.WarnLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	var out io.Writer = zerolog.ConsoleWriter{Out: console, TimeFormat: time.TimeOnly, NoColor: true}
	if opts.File != "" {
		out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSizeMB,
			MaxAge:     maxAgeDays,
			MaxBackups: maxBackups,
		})
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
