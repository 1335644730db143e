// Package webhook forwards completed forum actions to external receivers.
// It taps every after-hook of the action pipeline, encodes the event as JSON
// and delivers it asynchronously to each endpoint subscribed to the event
// key. Delivery failures are logged and never affect the action's Result.
package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/app/fanout"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

var _ ports.Notifier = (*Notifier)(nil)

// Deliverer sends one encoded event to one receiver. *httpclient.Client
// implements it.
type Deliverer interface {
	Name() string
	Deliver(ctx context.Context, event string, payload []byte) error
}

// Endpoint is a receiver and the hook key prefixes it subscribes to. An
// empty Events list subscribes to every completed action.
type Endpoint struct {
	Deliverer
	Events []string
}

func (e Endpoint) accepts(key string) bool {
	if len(e.Events) == 0 {
		return true
	}
	for _, prefix := range e.Events {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// Payload is the JSON body of a delivery.
type Payload struct {
	Event      string    `json:"event"`
	Kind       string    `json:"kind"`
	Action     string    `json:"action"`
	EntityID   *int64    `json:"entity_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type delivery struct {
	event     string
	body      []byte
	endpoints []Endpoint
}

// Notifier queues after-hook events and delivers them from Run.
type Notifier struct {
	endpoints []Endpoint
	workers   int
	queue     chan delivery
	dropped   atomic.Int64
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithClock replaces the time source stamped on payloads.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) { n.now = now }
}

// New creates a Notifier delivering to endpoints with at most workers
// concurrent requests per event. Up to queueSize events wait for delivery;
// further events are dropped.
func New(endpoints []Endpoint, workers, queueSize int, logger *slog.Logger, opts ...Option) *Notifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	n := &Notifier{
		endpoints: endpoints,
		workers:   max(workers, 1),
		queue:     make(chan delivery, max(queueSize, 1)),
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Attach taps every hook of h and returns the registration id.
func (n *Notifier) Attach(h *action.Hooks) action.HandlerID {
	return h.Tap(n.observe)
}

// Dropped reports how many events were discarded on a full queue.
func (n *Notifier) Dropped() int64 { return n.dropped.Load() }

func (n *Notifier) observe(ctx context.Context, e *action.Event) {
	kind, verb, phase, ok := splitKey(e.Key)
	if !ok || phase != action.PhaseAfter {
		return
	}

	var targets []Endpoint
	for _, ep := range n.endpoints {
		if ep.accepts(e.Key) {
			targets = append(targets, ep)
		}
	}
	if len(targets) == 0 {
		return
	}

	p := Payload{Event: e.Key, Kind: kind, Action: verb, OccurredAt: n.now().UTC()}
	if r, ok := e.Entity.(forum.Repository); ok && action.Present(e.Entity) {
		id := r.ID()
		p.EntityID = &id
	}
	body, err := json.Marshal(p)
	if err != nil {
		n.logger.ErrorContext(ctx, "encoding webhook payload",
			slog.String("operation", "Notifier.observe"),
			slog.String("event", e.Key),
			slog.Any("error", err),
		)
		return
	}

	select {
	case n.queue <- delivery{event: e.Key, body: body, endpoints: targets}:
	default:
		n.dropped.Add(1)
		n.logger.WarnContext(ctx, "webhook queue full, event dropped",
			slog.String("operation", "Notifier.observe"),
			slog.String("event", e.Key),
		)
	}
}

// Run delivers queued events until ctx ends. Events still queued at that
// point are discarded.
func (n *Notifier) Run(ctx context.Context) error {
	for {
		select {
		case d := <-n.queue:
			n.deliver(ctx, d)
		case <-ctx.Done():
			if left := len(n.queue); left > 0 {
				n.logger.Warn("webhook notifier stopped with pending events", slog.Int("pending", left))
			}
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		}
	}
}

func (n *Notifier) deliver(ctx context.Context, d delivery) {
	results := fanout.Run(ctx, n.workers, d.endpoints, func(ctx context.Context, ep Endpoint) (struct{}, error) {
		return struct{}{}, ep.Deliver(ctx, d.event, d.body)
	})
	for i, r := range results {
		if r.Err != nil {
			n.logger.ErrorContext(ctx, "webhook delivery failed",
				slog.String("operation", "Notifier.deliver"),
				slog.String("endpoint", d.endpoints[i].Name()),
				slog.String("event", d.event),
				slog.Any("error", r.Err),
			)
		}
	}
}

// splitKey breaks "post.thumbing-up.after" into its parts.
func splitKey(key string) (kind, verb, phase string, ok bool) {
	first := strings.IndexByte(key, '.')
	last := strings.LastIndexByte(key, '.')
	if first < 0 || first == last {
		return "", "", "", false
	}
	return key[:first], key[first+1 : last], key[last+1:], true
}
