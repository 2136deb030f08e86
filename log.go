package gui

import (
	"log/slog"
	"os"
)

// logLevel gates the package logger. Default is LevelInfo, which suppresses
// the per-event Debug trace.
var logLevel = new(slog.LevelVar)

// logger traces translated input and controller decisions.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables debug logging of the event pipeline.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Verbose reports whether debug logging is enabled.
func Verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}
