package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/forumcore/internal/adapters/http/middleware"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{name: "generated", header: ""},
		{name: "reused", header: "req-abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = middleware.RequestIDFromContext(r.Context())
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody)
			if tt.header != "" {
				req.Header.Set("X-Request-ID", tt.header)
			}
			handler.ServeHTTP(rec, req)

			if tt.header != "" && got != tt.header {
				t.Errorf("RequestIDFromContext = %q, want %q", got, tt.header)
			}
			if tt.header == "" {
				if _, err := uuid.Parse(got); err != nil {
					t.Errorf("generated id %q is not a UUID: %v", got, err)
				}
			}
			if rec.Header().Get("X-Request-ID") != got {
				t.Errorf("response X-Request-ID = %q, want %q", rec.Header().Get("X-Request-ID"), got)
			}
		})
	}
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requestID string
		header    string
		want      string
	}{
		{name: "from header", requestID: "req-1", header: "corr-abc", want: "corr-abc"},
		{name: "falls back to request id", requestID: "req-1", want: "req-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			handler := middleware.RequestID()(middleware.CorrelationID()(
				http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					got = middleware.CorrelationIDFromContext(r.Context())
				})))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody)
			req.Header.Set("X-Request-ID", tt.requestID)
			if tt.header != "" {
				req.Header.Set("X-Correlation-ID", tt.header)
			}
			handler.ServeHTTP(rec, req)

			if got != tt.want {
				t.Errorf("CorrelationIDFromContext = %q, want %q", got, tt.want)
			}
			if rec.Header().Get("X-Correlation-ID") != tt.want {
				t.Errorf("response X-Correlation-ID = %q, want %q", rec.Header().Get("X-Correlation-ID"), tt.want)
			}
		})
	}
}

func TestIDsFromBareContext(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty", id)
	}
	if id := middleware.CorrelationIDFromContext(context.Background()); id != "" {
		t.Errorf("CorrelationIDFromContext = %q, want empty", id)
	}
}
