/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the CLI's leveled logger. Library packages never log;
// they return errors and skip reports, and the commands decide what to print.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var (
	// Default logs to stderr. Set to io.Discard for silent mode (tests, JSON output).
	output  io.Writer = os.Stderr
	verbose bool
	logger  zerolog.Logger
)

func init() {
	rebuild()
}

func rebuild() {
	console := zerolog.ConsoleWriter{
		Out:          output,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(console).Level(level)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	output = w
	rebuild()
}

// SetVerbose enables debug output.
func SetVerbose(v bool) {
	verbose = v
	rebuild()
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

// Debug logs a debug message. Only written when verbose.
func Debug(format string, args ...any) {
	logger.Debug().Msgf(format, args...)
}

// Error logs err with a message.
func Error(err error, format string, args ...any) {
	logger.Error().Err(err).Msgf(format, args...)
}
