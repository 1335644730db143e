// Package logging builds the service's slog loggers and carries them through
// context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "thread locked")
//
// Error records name the operation, the entity ids involved and the full
// error chain:
//
//	logger.ErrorContext(ctx, "webhook delivery failed",
//	    slog.String("operation", "Notifier.deliver"),
//	    slog.String("event", key),
//	    slog.Any("error", err),
//	)
//
// Every handler redacts private forum data (message bodies, subjects,
// e-mail addresses) and credentials before writing.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type loggerKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error in any case, with info used for anything else. format "text"
// selects the text handler and everything else JSON. Debug loggers also
// record the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
