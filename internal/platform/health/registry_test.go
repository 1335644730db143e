package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/forumcore/internal/platform/health"
	"github.com/jsamuelsen11/forumcore/mocks"
)

func newChecker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestRegistry_CheckAll(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")

	tests := []struct {
		name   string
		checks map[string]error
	}{
		{name: "no checkers", checks: map[string]error{}},
		{name: "store healthy", checks: map[string]error{"sqlite": nil}},
		{
			name: "receiver down",
			checks: map[string]error{
				"sqlite":        nil,
				"webhook:audit": refused,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for name, err := range tt.checks {
				r.Register(newChecker(t, name, err))
			}

			got := r.CheckAll(context.Background())

			if got == nil {
				t.Fatal("CheckAll() = nil, want a map")
			}
			if len(got) != len(tt.checks) {
				t.Fatalf("len(CheckAll()) = %d, want %d", len(got), len(tt.checks))
			}
			for name, want := range tt.checks {
				if !errors.Is(got[name], want) {
					t.Errorf("CheckAll()[%q] = %v, want %v", name, got[name], want)
				}
			}
		})
	}
}

func TestRegistry_CancelledProbe(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("sqlite")
	c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		return ctx.Err()
	}).Maybe()

	r := health.New()
	r.Register(c)

	if err := r.CheckAll(ctx)["sqlite"]; !errors.Is(err, context.Canceled) {
		t.Errorf("CheckAll()[sqlite] = %v, want context.Canceled", err)
	}
}

func TestRegistry_CheckTimeout(t *testing.T) {
	t.Parallel()

	slow := mocks.NewMockHealthChecker(t)
	slow.EXPECT().Name().Return("webhook:search")
	slow.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(10 * time.Millisecond))
	r.Register(slow)
	r.Register(newChecker(t, "sqlite", nil))

	got := r.CheckAll(context.Background())

	if !errors.Is(got["webhook:search"], context.DeadlineExceeded) {
		t.Errorf("slow check = %v, want context.DeadlineExceeded", got["webhook:search"])
	}
	if got["sqlite"] != nil {
		t.Errorf("sqlite check = %v, want nil", got["sqlite"])
	}
}

func TestRegistry_PanickingCheck(t *testing.T) {
	t.Parallel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("webhook:audit")
	c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(context.Context) error {
		panic("breaker state corrupted")
	})

	r := health.New()
	r.Register(c)

	if err := r.CheckAll(context.Background())["webhook:audit"]; err == nil {
		t.Error("CheckAll()[webhook:audit] = nil, want the recovered panic")
	}
}

func TestRegistry_DuplicateNameLastWins(t *testing.T) {
	t.Parallel()

	second := errors.New("second failure")

	r := health.New()
	r.Register(newChecker(t, "sqlite", nil))
	r.Register(newChecker(t, "sqlite", second))

	got := r.CheckAll(context.Background())

	if len(got) != 1 {
		t.Fatalf("len(CheckAll()) = %d, want 1", len(got))
	}
	if !errors.Is(got["sqlite"], second) {
		t.Errorf("CheckAll()[sqlite] = %v, want %v", got["sqlite"], second)
	}
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 50 {
		if i%2 == 0 {
			wg.Go(func() {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("webhook").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			})
			continue
		}
		wg.Go(func() { r.CheckAll(context.Background()) })
	}
	wg.Wait()
}
