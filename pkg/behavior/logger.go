package behavior

import (
	"context"
	"log/slog"
)

// nopHandler discards all records. Enabled returns false so callers skip
// building attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var logger = slog.New(nopHandler{})

// SetLogger configures the logger used by behaviors and by the undo
// history built on their edit notifications.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: ignored gestures and the reason they were ignored
//   - [slog.LevelInfo]: waypoint insertions, undo and redo
//   - [slog.LevelWarn]: undo or redo of an edge that no longer exists
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger = l
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger
}
