package webhook_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/forumcore/internal/adapters/notify/webhook"
	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/platform/config"
	"github.com/jsamuelsen11/forumcore/internal/platform/httpclient"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type sent struct {
	endpoint string
	event    string
	payload  webhook.Payload
}

// recorder is a Deliverer reporting every call on a shared channel.
type recorder struct {
	name string
	out  chan<- sent
	err  error
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) Deliver(_ context.Context, event string, payload []byte) error {
	var p webhook.Payload
	if err := json.Unmarshal(payload, &p); err != nil {
		return err
	}
	r.out <- sent{endpoint: r.name, event: event, payload: p}
	return r.err
}

type entity struct{ id int64 }

func (e *entity) ID() int64 { return e.id }

func startNotifier(t *testing.T, n *webhook.Notifier) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- n.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Run() error = %v", err)
		}
	})
}

func receive(t *testing.T, ch <-chan sent, n int) []sent {
	t.Helper()
	var got []sent
	for range n {
		select {
		case s := <-ch:
			got = append(got, s)
		case <-time.After(2 * time.Second):
			t.Fatalf("received %d deliveries, want %d", len(got), n)
		}
	}
	return got
}

func TestNotifier_RoutesAfterEventsByPrefix(t *testing.T) {
	t.Parallel()

	ch := make(chan sent, 10)
	n := webhook.New([]webhook.Endpoint{
		{Deliverer: &recorder{name: "audit", out: ch}},
		{Deliverer: &recorder{name: "search", out: ch}, Events: []string{"post."}},
	}, 2, 8, nil, webhook.WithClock(func() time.Time { return fixedNow }))

	hooks := action.NewHooks()
	n.Attach(hooks)
	startNotifier(t, n)

	ctx := context.Background()
	hooks.Trigger(ctx, "post.thumbing-up.before", &entity{id: 7})
	hooks.Trigger(ctx, "post.thumbing-up.after", &entity{id: 7})
	hooks.Trigger(ctx, "member.banning.after", &entity{id: 3})

	got := receive(t, ch, 3)

	byEndpoint := map[string][]sent{}
	for _, s := range got {
		byEndpoint[s.endpoint] = append(byEndpoint[s.endpoint], s)
	}
	if len(byEndpoint["audit"]) != 2 {
		t.Errorf("audit deliveries = %d, want 2", len(byEndpoint["audit"]))
	}
	if len(byEndpoint["search"]) != 1 {
		t.Fatalf("search deliveries = %d, want 1", len(byEndpoint["search"]))
	}

	s := byEndpoint["search"][0]
	if s.event != "post.thumbing-up.after" {
		t.Errorf("event = %q, want post.thumbing-up.after", s.event)
	}
	want := webhook.Payload{Event: "post.thumbing-up.after", Kind: "post", Action: "thumbing-up", OccurredAt: fixedNow}
	if s.payload.EntityID == nil || *s.payload.EntityID != 7 {
		t.Errorf("EntityID = %v, want 7", s.payload.EntityID)
	}
	if !s.payload.OccurredAt.Equal(want.OccurredAt) || s.payload.Event != want.Event ||
		s.payload.Kind != want.Kind || s.payload.Action != want.Action {
		t.Errorf("payload = %+v, want %+v", s.payload, want)
	}
}

func TestNotifier_EntityWithoutIDOmitsIt(t *testing.T) {
	t.Parallel()

	ch := make(chan sent, 1)
	n := webhook.New([]webhook.Endpoint{{Deliverer: &recorder{name: "audit", out: ch}}}, 1, 1, nil)
	hooks := action.NewHooks()
	n.Attach(hooks)
	startNotifier(t, n)

	hooks.Trigger(context.Background(), "bookmark.marking.after", struct{}{})

	got := receive(t, ch, 1)
	if got[0].payload.EntityID != nil {
		t.Errorf("EntityID = %v, want nil", *got[0].payload.EntityID)
	}
}

func TestNotifier_FailedDeliveryDoesNotBlockOthers(t *testing.T) {
	t.Parallel()

	ch := make(chan sent, 4)
	n := webhook.New([]webhook.Endpoint{
		{Deliverer: &recorder{name: "down", out: ch, err: errors.New("connection refused")}},
		{Deliverer: &recorder{name: "up", out: ch}},
	}, 1, 4, nil)
	hooks := action.NewHooks()
	n.Attach(hooks)
	startNotifier(t, n)

	hooks.Trigger(context.Background(), "thread.locking.after", &entity{id: 1})
	hooks.Trigger(context.Background(), "thread.unlocking.after", &entity{id: 1})

	if got := receive(t, ch, 4); len(got) != 4 {
		t.Errorf("deliveries = %d, want 4", len(got))
	}
}

func TestNotifier_DropsWhenQueueFull(t *testing.T) {
	t.Parallel()

	n := webhook.New([]webhook.Endpoint{{Deliverer: &recorder{name: "audit", out: make(chan sent)}}}, 1, 1, nil)
	hooks := action.NewHooks()
	n.Attach(hooks)

	// Not running: the first event fills the queue.
	for range 3 {
		e := hooks.Trigger(context.Background(), "forum.moving.after", &entity{id: 2})
		if !e.Allowed() {
			t.Fatal("after event gate closed, want the notifier to never prevent")
		}
	}

	if got := n.Dropped(); got != 2 {
		t.Errorf("Dropped() = %d, want 2", got)
	}
}

func TestNotifier_NoMatchingEndpointSkipsQueue(t *testing.T) {
	t.Parallel()

	n := webhook.New([]webhook.Endpoint{
		{Deliverer: &recorder{name: "search", out: make(chan sent)}, Events: []string{"post."}},
	}, 1, 1, nil)
	hooks := action.NewHooks()
	n.Attach(hooks)

	for range 3 {
		hooks.Trigger(context.Background(), "member.banning.after", &entity{id: 2})
	}

	if got := n.Dropped(); got != 0 {
		t.Errorf("Dropped() = %d, want 0", got)
	}
}

func TestFromConfig_DeliversOverHTTP(t *testing.T) {
	t.Parallel()

	type request struct {
		event string
		body  []byte
	}
	reqs := make(chan request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		reqs <- request{event: r.Header.Get(httpclient.HeaderEvent), body: body}
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.NotifyConfig{
		Enabled:   true,
		Workers:   1,
		QueueSize: 4,
		Endpoints: []config.EndpointConfig{{Name: "audit", URL: srv.URL}},
		Client: config.ClientConfig{
			Timeout: 5 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     1,
				InitialInterval: 10 * time.Millisecond,
				MaxInterval:     10 * time.Millisecond,
				Multiplier:      2,
			},
			CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 3, Timeout: time.Hour, HalfOpenLimit: 1},
		},
	}

	n, checkers := webhook.FromConfig(cfg, nil, nil)
	if len(checkers) != 1 || checkers[0].Name() != "webhook:audit" {
		t.Fatalf("checkers = %v, want one named webhook:audit", checkers)
	}
	if err := checkers[0].HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}

	hooks := action.NewHooks()
	n.Attach(hooks)
	startNotifier(t, n)

	hooks.Trigger(context.Background(), "category.archiving.after", &entity{id: 11})

	select {
	case r := <-reqs:
		if r.event != "category.archiving.after" {
			t.Errorf("%s = %q, want category.archiving.after", httpclient.HeaderEvent, r.event)
		}
		var p webhook.Payload
		if err := json.Unmarshal(r.body, &p); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if p.Kind != "category" || p.Action != "archiving" || p.EntityID == nil || *p.EntityID != 11 {
			t.Errorf("payload = %+v, want category archiving of 11", p)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no request reached the receiver")
	}
}
