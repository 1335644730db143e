// Package httpclient delivers webhook events to one receiver. Every delivery
// passes a circuit breaker and an optional rate limiter, is traced as a
// client span and is retried with exponential backoff on transient failures.
//
//	client := httpclient.New(&cfg.Notify.Client, "webhook:audit", metrics, logger)
//	err := client.Deliver(ctx, "post.thumbing-up.after", payload)
package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/forumcore/internal/platform/config"
	"github.com/jsamuelsen11/forumcore/internal/platform/telemetry"
)

// Headers set on every delivery. The delivery id is stable across retries so
// receivers can drop duplicates.
const (
	HeaderEvent    = "X-Forum-Event"
	HeaderDelivery = "X-Forum-Delivery"
)

// ErrRejected is returned when the receiver still answers non-2xx after the
// last attempt.
var ErrRejected = errors.New("httpclient: delivery rejected")

const tracerName = "github.com/jsamuelsen11/forumcore/internal/platform/httpclient"

// Client delivers to a single receiver URL.
type Client struct {
	name    string
	url     string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[int]
	limiter *rate.Limiter
	policy  retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a client for cfg.BaseURL. name labels the receiver in spans,
// metrics and readiness output. metrics may be nil.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		name: name,
		url:  cfg.BaseURL,
		http: &http.Client{Timeout: cfg.Timeout},
		policy: retryPolicy{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
	c.breaker = c.newBreaker(cfg.CircuitBreaker)
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

func (c *Client) newBreaker(cfg config.CircuitBreakerConfig) *gobreaker.CircuitBreaker[int] {
	return gobreaker.NewCircuitBreaker[int](gobreaker.Settings{
		Name:        c.name,
		MaxRequests: clampUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("webhook circuit breaker changed state",
				slog.String("peer_service", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Deliver POSTs payload as JSON, labelled with event. A 2xx answer is
// success. Network errors, 429 and 5xx are retried; an open breaker fails
// immediately with gobreaker.ErrOpenState.
func (c *Client) Deliver(ctx context.Context, event string, payload []byte) error {
	start := time.Now()

	status, err := c.breaker.Execute(func() (int, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return 0, err
			}
		}
		return c.traced(ctx, event, payload)
	})

	c.record(ctx, status, time.Since(start), err)
	return err
}

// traced runs the retry loop inside one client span and propagates the span
// context to the receiver.
func (c *Client) traced(ctx context.Context, event string, payload []byte) (int, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "POST "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrHTTPMethod.String(http.MethodPost),
			telemetry.AttrPeerService.String(c.name),
			attribute.String("forum.event", event),
		),
	)
	defer span.End()

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set(HeaderEvent, event)
	header.Set(HeaderDelivery, uuid.NewString())
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(header))

	var status int
	err := c.policy.run(ctx, c.name, func() (bool, error) {
		var err error
		status, err = c.post(ctx, header, payload)
		switch {
		case err != nil:
			return isRetryable(err), err
		case status < http.StatusOK || status >= http.StatusMultipleChoices:
			return isRetryableStatus(status), fmt.Errorf("%w: HTTP %d from %s", ErrRejected, status, c.name)
		default:
			return false, nil
		}
	})

	if status != 0 {
		span.SetAttributes(telemetry.AttrHTTPStatus.Int(status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return status, err
}

// post makes one attempt and drains the response body.
func (c *Client) post(ctx context.Context, header http.Header, payload []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	req.Header = header.Clone()

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// Name returns the receiver label, e.g. "webhook:audit".
func (c *Client) Name() string { return c.name }

// HealthCheck derives the receiver's health from the breaker alone, without
// a network call.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen, gobreaker.StateOpen:
		return fmt.Errorf("%s: circuit breaker %s", c.name, state)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.name, state)
	}
}

// record runs outside the breaker so that open-circuit rejections are
// counted as well.
func (c *Client) record(ctx context.Context, status int, elapsed time.Duration, err error) {
	if c.metrics == nil {
		return
	}

	result := "success"
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	} else if err != nil {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(http.MethodPost),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	return uint32(max(0, min(v, math.MaxUint32)))
}
