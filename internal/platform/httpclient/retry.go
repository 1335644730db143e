package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jsamuelsen11/forumcore/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// retryPolicy is exponential backoff with jitter, extracted from
// config.RetryConfig.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// run calls attempt until it succeeds, reports a non-retryable failure, or
// the attempts are used up. It returns the last error.
func (p retryPolicy) run(ctx context.Context, peer string, attempt func() (retry bool, err error)) error {
	if p.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", p.maxAttempts)
	}

	var lastErr error
	for n := range p.maxAttempts {
		if n > 0 {
			delay := p.backoff(n)
			logging.FromContext(ctx).WarnContext(ctx, "retrying webhook delivery",
				slog.String("operation", "httpclient.Deliver"),
				slog.String("peer_service", peer),
				slog.Int("attempt", n+1),
				slog.Int("max_attempts", p.maxAttempts),
				slog.Duration("backoff", delay),
				slog.Any("error", lastErr),
			)
			if err := sleep(ctx, delay); err != nil {
				return err
			}
		}

		retry, err := attempt()
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry {
			return err
		}
	}
	return lastErr
}

// backoff returns the delay before retry n (1-indexed): exponential growth
// capped at maxInterval, then ±25% jitter.
func (p retryPolicy) backoff(n int) time.Duration {
	delay := float64(p.initialInterval) * math.Pow(p.multiplier, float64(n-1))
	delay = math.Min(delay, float64(p.maxInterval))

	jitter := delay * jitterFraction
	delay += jitter * (2*rand.Float64() - 1)

	return time.Duration(math.Max(delay, 0))
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final; everything else is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether a status is worth another attempt:
// 429 and every 5xx.
func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
