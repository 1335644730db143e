package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/forumcore/internal/platform/telemetry"
)

// Chain composes middlewares; the first one is the outermost, so
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(middlewares) {
			h = mw(h)
		}
		return h
	}
}

// Stack returns the middlewares of the operations server, outermost first.
// Recovery wraps everything so a panic in any later layer still gets a
// response; the ids precede Logging so every log line carries them.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
	}
}
