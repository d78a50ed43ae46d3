package controls

import (
	"log/slog"
	"os"
)

// logLevel controls debug logging for the control store.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for groups and actions.
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

// LogLevel returns the shared level variable so other packages
// (the ui layer, the OpenGL backend) can follow the same verbosity.
func LogLevel() *slog.LevelVar {
	return logLevel
}

// defaultLogger is used by groups and panels that were not given one.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
