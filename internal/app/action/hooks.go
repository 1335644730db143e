package action

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/internal/platform/logging"
)

// Hook phases.
const (
	PhaseBefore = "before"
	PhaseAfter  = "after"
)

// HookKey builds the notification key of a kind, verb and phase,
// e.g. HookKey(forum.KindCategory, "archiving", PhaseBefore) is
// "category.archiving.before".
func HookKey(kind forum.Kind, verb, phase string) string {
	return fmt.Sprintf("%s.%s.%s", kind, verb, phase)
}

// Event is the signal handed to observers of one dispatch. Before events
// carry the subject and an open gate that any observer may close; after
// events carry the mutated entity.
type Event struct {
	Key    string
	Entity any

	prevented bool
}

// Prevent closes the gate. The action aborts once dispatch finishes.
func (e *Event) Prevent() { e.prevented = true }

// Allowed reports whether every observer left the gate open.
func (e *Event) Allowed() bool { return !e.prevented }

// Handler observes an event. Handlers run synchronously on the caller's
// goroutine, in registration order.
type Handler func(ctx context.Context, e *Event)

// HandlerID identifies a registration for Off.
type HandlerID uint64

type registration struct {
	id HandlerID
	fn Handler
}

// Hooks is the registry observers attach to. It is safe for concurrent use;
// dispatch works on a snapshot so handlers may register or detach others.
type Hooks struct {
	mu    sync.RWMutex
	next  HandlerID
	byKey map[string][]registration
	taps  []registration
}

// NewHooks creates an empty registry.
func NewHooks() *Hooks {
	return &Hooks{byKey: make(map[string][]registration)}
}

// On attaches fn to a single key.
func (h *Hooks) On(key string, fn Handler) HandlerID {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	h.byKey[key] = append(h.byKey[key], registration{id: h.next, fn: fn})
	return h.next
}

// Tap attaches fn to every key. Taps run after the key's own handlers.
func (h *Hooks) Tap(fn Handler) HandlerID {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	h.taps = append(h.taps, registration{id: h.next, fn: fn})
	return h.next
}

// Off detaches a registration. It reports whether the id was found.
func (h *Hooks) Off(id HandlerID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	match := func(r registration) bool { return r.id == id }

	for key, regs := range h.byKey {
		if i := slices.IndexFunc(regs, match); i >= 0 {
			h.byKey[key] = slices.Delete(regs, i, i+1)
			return true
		}
	}
	if i := slices.IndexFunc(h.taps, match); i >= 0 {
		h.taps = slices.Delete(h.taps, i, i+1)
		return true
	}
	return false
}

// Trigger dispatches a fresh Event under key and returns it once every
// handler has run. A panicking handler is logged and closes the gate.
func (h *Hooks) Trigger(ctx context.Context, key string, entity any) *Event {
	h.mu.RLock()
	regs := make([]registration, 0, len(h.byKey[key])+len(h.taps))
	regs = append(regs, h.byKey[key]...)
	regs = append(regs, h.taps...)
	h.mu.RUnlock()

	e := &Event{Key: key, Entity: entity}
	for _, r := range regs {
		h.call(ctx, r.fn, e)
	}
	return e
}

func (h *Hooks) call(ctx context.Context, fn Handler, e *Event) {
	defer func() {
		if v := recover(); v != nil {
			e.Prevent()
			logging.FromContext(ctx).WarnContext(ctx, "hook handler panicked",
				slog.String("operation", "Hooks.Trigger"),
				slog.String("hook", e.Key),
				slog.String("panic", fmt.Sprint(v)),
			)
		}
	}()
	fn(ctx, e)
}
