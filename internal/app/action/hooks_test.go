package action

import (
	"context"
	"testing"

	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
)

func TestHookKey(t *testing.T) {
	t.Parallel()

	if got := HookKey(forum.KindCategory, "archiving", PhaseBefore); got != "category.archiving.before" {
		t.Errorf("HookKey() = %q, want category.archiving.before", got)
	}
}

func TestHooks_TriggerOrderAndGate(t *testing.T) {
	t.Parallel()

	h := NewHooks()
	var order []string

	h.Tap(func(_ context.Context, e *Event) { order = append(order, "tap:"+e.Key) })
	h.On("post.pinning.before", func(_ context.Context, _ *Event) { order = append(order, "first") })
	h.On("post.pinning.before", func(_ context.Context, e *Event) {
		order = append(order, "second")
		e.Prevent()
	})
	h.On("post.unpinning.before", func(_ context.Context, _ *Event) { order = append(order, "other") })

	e := h.Trigger(context.Background(), "post.pinning.before", "subject")

	if e.Allowed() {
		t.Error("Allowed() = true, want false after Prevent")
	}
	if e.Entity != "subject" {
		t.Errorf("Entity = %v, want subject", e.Entity)
	}
	want := []string{"first", "second", "tap:post.pinning.before"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestHooks_GateDefaultsOpen(t *testing.T) {
	t.Parallel()

	e := NewHooks().Trigger(context.Background(), "thread.locking.before", nil)
	if !e.Allowed() {
		t.Error("Allowed() = false with no observers, want true")
	}
}

func TestHooks_Off(t *testing.T) {
	t.Parallel()

	h := NewHooks()
	calls := 0
	id := h.On("member.banning.before", func(context.Context, *Event) { calls++ })
	tap := h.Tap(func(context.Context, *Event) { calls++ })

	if !h.Off(id) || !h.Off(tap) {
		t.Fatal("Off() = false for registered handlers")
	}
	if h.Off(id) {
		t.Error("Off() = true for an already removed handler")
	}

	h.Trigger(context.Background(), "member.banning.before", nil)
	if calls != 0 {
		t.Errorf("calls = %d after Off, want 0", calls)
	}
}

func TestHooks_PanickingHandlerClosesGate(t *testing.T) {
	t.Parallel()

	h := NewHooks()
	reached := false
	h.On("forum.moving.before", func(context.Context, *Event) { panic("observer bug") })
	h.On("forum.moving.before", func(context.Context, *Event) { reached = true })

	e := h.Trigger(context.Background(), "forum.moving.before", nil)

	if e.Allowed() {
		t.Error("Allowed() = true after panicking handler, want false")
	}
	if !reached {
		t.Error("later handler was skipped after a panic")
	}
}
