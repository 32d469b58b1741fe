package sheetfont

import "context"
import "log/slog"
import "sync/atomic"

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by sheetfont and its sub-packages.
// By default nothing is logged. Passing nil restores the silent default.
//
// Log levels in use:
//   - [slog.LevelDebug]: compilation progress (bands, glyph counts, arena size)
//   - [slog.LevelWarn]: bitmap interning anomalies detected by the self-check
//
// SetLogger is safe for concurrent use.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(nopHandler{})
	}
	loggerPtr.Store(logger)
}

// Logger returns the current logger. Sub-packages call this to share
// the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
