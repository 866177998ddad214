package zoom

import (
	"log/slog"
	"sync/atomic"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

// silent discards every record; Enabled reports false so Debug calls on hot
// paths such as Tracker.Move skip attribute formatting.
var silent = slog.New(slog.DiscardHandler)

func init() {
	loggerPtr.Store(silent)
}

// SetLogger configures the logger for zoom and its sub-packages.
// By default, zoom produces no log output.
//
// Pass nil to restore the silent default.
//
// Levels:
//   - [slog.LevelDebug]: gesture state transitions and per-move deltas
//   - [slog.LevelWarn]: rejected input events, skipped non-finite scale steps
//
// Example:
//
//	zoom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by zoom.
// The render and script packages log through it as well.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// pick returns l if set, otherwise the package logger.
func pick(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return Logger()
}
