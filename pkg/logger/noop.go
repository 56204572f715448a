package logger

import "log/slog"

// Noop returns a logger that discards all records.
func Noop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
