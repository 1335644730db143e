// Package memory is a process-local storage backend. Every write is recorded
// as a compensable action; a unit of work that fails replays the undos in
// reverse order. Units of work are serialised, so they observe each other's
// writes only after completion.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/forumcore/internal/domain"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

var _ ports.Transactor = (*Store)(nil)

// pair keys per-member records such as votes and bookmarks.
type pair struct {
	member int64
	target int64
}

// Store holds every entity. All entity fields are guarded by mu.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	now  func() time.Time

	nextID        int64
	categories    map[int64]*Category
	forums        map[int64]*Forum
	threads       map[int64]*Thread
	posts         map[int64]*Post
	members       map[int64]*Member
	messages      map[int64]*messageRow
	thumbs        map[pair]*thumbRow
	bookmarks     map[pair]time.Time
	subscriptions map[pair]struct{}
	ignores       map[pair]struct{}
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		now:           time.Now,
		categories:    make(map[int64]*Category),
		forums:        make(map[int64]*Forum),
		threads:       make(map[int64]*Thread),
		posts:         make(map[int64]*Post),
		members:       make(map[int64]*Member),
		messages:      make(map[int64]*messageRow),
		thumbs:        make(map[pair]*thumbRow),
		bookmarks:     make(map[pair]time.Time),
		subscriptions: make(map[pair]struct{}),
		ignores:       make(map[pair]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InTx runs fn as one unit of work. A nested call joins the outer unit.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if journalFrom(ctx) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	j := &journal{}
	committed := false
	defer func() {
		// A panicking fn still gets its writes undone.
		if !committed {
			j.rollback(ctx)
		}
	}()

	if err := fn(context.WithValue(ctx, journalKey{}, j)); err != nil {
		return err
	}
	committed = true
	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "memory" }

// HealthCheck implements ports.HealthChecker. The store is always available.
func (s *Store) HealthCheck(ctx context.Context) error { return ctx.Err() }

// write applies a compensable change under the store lock.
func (s *Store) write(ctx context.Context, desc string, do func() error, undo func()) error {
	return apply(ctx, &change{
		desc: desc,
		do: func() error {
			s.mu.Lock()
			defer s.mu.Unlock()
			return do()
		},
		undo: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			undo()
		},
	})
}

// assign sets *field to v as a compensable change.
func assign[T any](ctx context.Context, s *Store, desc string, field *T, v T) error {
	var old T
	return s.write(ctx, desc,
		func() error { old, *field = *field, v; return nil },
		func() { *field = old },
	)
}

// bump adds delta to each counter. Counters never go negative.
func bump(ctx context.Context, s *Store, desc string, counters []*int, deltas ...int) error {
	return s.write(ctx, desc,
		func() error {
			for i, c := range counters {
				if *c+deltas[i] < 0 {
					return domain.NewValidationError("counters", "cannot be negative")
				}
			}
			for i, c := range counters {
				*c += deltas[i]
			}
			return nil
		},
		func() {
			for i, c := range counters {
				*c -= deltas[i]
			}
		},
	)
}

// insert stores a new row under a fresh id.
func insert[T any](ctx context.Context, s *Store, desc string, table map[int64]T, row T, setID func(int64)) error {
	var id int64
	return s.write(ctx, desc,
		func() error {
			s.nextID++
			id = s.nextID
			setID(id)
			table[id] = row
			return nil
		},
		func() {
			delete(table, id)
			setID(0)
		},
	)
}

// remove deletes the row stored under id.
func remove[T any](ctx context.Context, s *Store, desc string, table map[int64]T, id int64) error {
	var old T
	return s.write(ctx, desc,
		func() error {
			row, ok := table[id]
			if !ok {
				return domain.ErrNotFound
			}
			old = row
			delete(table, id)
			return nil
		},
		func() { table[id] = old },
	)
}

func (s *Store) read(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}
