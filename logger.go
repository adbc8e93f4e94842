package fontprov

import "context"
import "log/slog"
import "sync/atomic"

// nopHandler discards all log records. Enabled() returns false so
// callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Sets the logger used by fontprov and its adapters. By default
// nothing is logged. Passing nil restores the silent default.
//
// Log levels used:
//  - [slog.LevelDebug]: unrenderable glyphs, failed kerning lookups.
//  - [slog.LevelWarn]: font tables that couldn't be probed on load.
//
// Safe for concurrent use.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(nopHandler{})
	}
	loggerPtr.Store(logger)
}

// Returns the current logger. Adapters in subpackages call this to
// share the same configuration. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
