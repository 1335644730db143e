package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/forumcore/internal/platform/config"
	"github.com/jsamuelsen11/forumcore/internal/platform/httpclient"
)

func testConfig(url string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: url,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Hour,
			HalfOpenLimit: 1,
		},
	}
}

func newClient(cfg *config.ClientConfig) *httpclient.Client {
	return httpclient.New(cfg, "webhook:test", nil, slog.New(slog.DiscardHandler))
}

// statusServer answers with the given statuses in order, then repeats the last.
func statusServer(t *testing.T, statuses ...int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := int(calls.Add(1)) - 1
		w.WriteHeader(statuses[min(n, len(statuses)-1)])
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestDeliver_PostsPayloadWithHeaders(t *testing.T) {
	t.Parallel()

	type seen struct {
		method, contentType, event, delivery, body string
	}
	got := make(chan seen, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got <- seen{
			method:      r.Method,
			contentType: r.Header.Get("Content-Type"),
			event:       r.Header.Get(httpclient.HeaderEvent),
			delivery:    r.Header.Get(httpclient.HeaderDelivery),
			body:        string(body),
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	err := newClient(testConfig(srv.URL)).Deliver(context.Background(), "post.thumbing-up.after", []byte(`{"id":1}`))
	if err != nil {
		t.Fatalf("Deliver() error = %v", err)
	}

	s := <-got
	if s.method != http.MethodPost {
		t.Errorf("method = %s, want POST", s.method)
	}
	if s.contentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", s.contentType)
	}
	if s.event != "post.thumbing-up.after" {
		t.Errorf("%s = %q, want the event key", httpclient.HeaderEvent, s.event)
	}
	if s.delivery == "" {
		t.Errorf("%s is empty", httpclient.HeaderDelivery)
	}
	if s.body != `{"id":1}` {
		t.Errorf("body = %q, want the payload", s.body)
	}
}

func TestDeliver_Retries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		statuses  []int
		wantCalls int32
		wantErr   bool
	}{
		{name: "recovers after 503", statuses: []int{503, 200}, wantCalls: 2},
		{name: "recovers after 429", statuses: []int{429, 429, 204}, wantCalls: 3},
		{name: "no retry on 400", statuses: []int{400}, wantCalls: 1, wantErr: true},
		{name: "exhausts on 500", statuses: []int{500}, wantCalls: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, calls := statusServer(t, tt.statuses...)
			err := newClient(testConfig(srv.URL)).Deliver(context.Background(), "e", []byte("{}"))

			if (err != nil) != tt.wantErr {
				t.Fatalf("Deliver() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, httpclient.ErrRejected) {
				t.Errorf("Deliver() error = %v, want ErrRejected", err)
			}
			if got := calls.Load(); got != tt.wantCalls {
				t.Errorf("calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestDeliver_CircuitBreakerOpens(t *testing.T) {
	t.Parallel()

	srv, calls := statusServer(t, http.StatusBadRequest)
	cfg := testConfig(srv.URL)
	cfg.Retry.MaxAttempts = 1
	client := newClient(cfg)

	for range cfg.CircuitBreaker.MaxFailures {
		_ = client.Deliver(context.Background(), "e", nil)
	}
	err := client.Deliver(context.Background(), "e", nil)

	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Deliver() error = %v, want ErrOpenState", err)
	}
	if got := calls.Load(); got != int32(cfg.CircuitBreaker.MaxFailures) {
		t.Errorf("calls = %d, want %d (open breaker fails fast)", got, cfg.CircuitBreaker.MaxFailures)
	}
	if err := client.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() = nil with open breaker, want error")
	}
}

func TestDeliver_RateLimitHonoursContext(t *testing.T) {
	t.Parallel()

	srv, _ := statusServer(t, http.StatusOK)
	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}
	client := newClient(cfg)

	if err := client.Deliver(context.Background(), "e", nil); err != nil {
		t.Fatalf("first Deliver() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := client.Deliver(ctx, "e", nil); err == nil {
		t.Error("second Deliver() = nil, want rate limiter error")
	}
}

func TestClient_NameAndHealth(t *testing.T) {
	t.Parallel()

	client := newClient(testConfig("http://localhost"))

	if client.Name() != "webhook:test" {
		t.Errorf("Name() = %q, want webhook:test", client.Name())
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil with closed breaker", err)
	}
}
