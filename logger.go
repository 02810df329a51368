package chartlayout

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute formatting entirely,
// which keeps logging free on the layout hot path.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while another goroutine runs a layout pass.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for chartlayout and all its sub-packages.
// By default, chartlayout produces no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by chartlayout:
//   - [slog.LevelDebug]: layout diagnostics (storage growth, dash length
//     coercion, annotation recomputation)
//
// Example:
//
//	chartlayout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by chartlayout.
// Sub-packages call this to share one configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
