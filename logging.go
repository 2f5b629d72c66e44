package wrapped

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// logLevel controls the level for windowing debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

// SetVerbose enables or disables debug logging for layouts and windows.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// SetLogger replaces the package logger. Terminal hosts use this to keep
// log output off the screen they draw on. A nil logger restores the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	}
	logger.Store(l)
}

// LogLevel exposes the shared level so hosts can build handlers that follow SetVerbose.
func LogLevel() *slog.LevelVar {
	return logLevel
}

// verbose returns true if debug logging is enabled.
func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

func log() *slog.Logger {
	return logger.Load()
}
