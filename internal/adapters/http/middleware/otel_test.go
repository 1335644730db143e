package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/forumcore/internal/adapters/http/middleware"
)

// The tracing tests swap the global TracerProvider and must not run in
// parallel with each other.

func installTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	return exp
}

func onlySpan(t *testing.T, exp *tracetest.InMemoryExporter) tracetest.SpanStub {
	t.Helper()
	spans := exp.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	return spans[0]
}

func TestOpenTelemetry(t *testing.T) {
	tests := []struct {
		name       string
		routed     bool
		method     string
		target     string
		status     int
		wantName   string
		wantRoute  string
		wantErrSts bool
	}{
		{
			name:      "chi pattern names the span",
			routed:    true,
			method:    http.MethodGet,
			target:    "/api/v1/i18n/pl",
			status:    http.StatusOK,
			wantName:  "HTTP GET /api/v1/i18n/{lang}",
			wantRoute: "/api/v1/i18n/{lang}",
		},
		{
			name:      "unrouted request uses the path",
			method:    http.MethodGet,
			target:    "/health/live",
			status:    http.StatusOK,
			wantName:  "HTTP GET /health/live",
			wantRoute: "/health/live",
		},
		{
			name:      "client error leaves status unset",
			routed:    true,
			method:    http.MethodGet,
			target:    "/api/v1/i18n/xx",
			status:    http.StatusNotFound,
			wantName:  "HTTP GET /api/v1/i18n/{lang}",
			wantRoute: "/api/v1/i18n/{lang}",
		},
		{
			name:       "server error marks the span",
			method:     http.MethodPost,
			target:     "/health/ready",
			status:     http.StatusServiceUnavailable,
			wantName:   "HTTP POST /health/ready",
			wantRoute:  "/health/ready",
			wantErrSts: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := installTracer(t)

			leaf := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			var h http.Handler
			if tt.routed {
				r := chi.NewRouter()
				r.Use(middleware.OpenTelemetry(nil))
				r.Get("/api/v1/i18n/{lang}", leaf)
				h = r
			} else {
				h = middleware.OpenTelemetry(nil)(leaf)
			}

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.target, http.NoBody))

			span := onlySpan(t, exp)
			if span.Name != tt.wantName {
				t.Errorf("span name = %q, want %q", span.Name, tt.wantName)
			}

			attrs := make(map[string]any, len(span.Attributes))
			for _, a := range span.Attributes {
				attrs[string(a.Key)] = a.Value.AsInterface()
			}
			if attrs["http.route"] != tt.wantRoute {
				t.Errorf("http.route = %v, want %q", attrs["http.route"], tt.wantRoute)
			}
			if attrs["http.method"] != tt.method {
				t.Errorf("http.method = %v, want %q", attrs["http.method"], tt.method)
			}
			if attrs["http.status_code"] != int64(tt.status) {
				t.Errorf("http.status_code = %v, want %d", attrs["http.status_code"], tt.status)
			}

			if got := span.Status.Code == codes.Error; got != tt.wantErrSts {
				t.Errorf("span status = %v, want error=%v", span.Status.Code, tt.wantErrSts)
			}
		})
	}
}

func TestOpenTelemetry_ContinuesCallerTrace(t *testing.T) {
	exp := installTracer(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"

	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")
	h.ServeHTTP(httptest.NewRecorder(), req)

	span := onlySpan(t, exp)
	if got := span.SpanContext.TraceID().String(); got != traceID {
		t.Errorf("trace id = %s, want %s", got, traceID)
	}
	if !span.Parent.IsRemote() {
		t.Error("parent span context should be remote")
	}
}
