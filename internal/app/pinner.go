package app

import (
	"context"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

var (
	_ ports.Pinner = (*Pinner)(nil)
	_ ports.Locker = (*Locker)(nil)
)

// Pinner pins and unpins threads or posts. Both are single writes.
type Pinner struct {
	pipeline *action.Pipeline
	kind     forum.Kind
}

// NewPinner creates a Pinner for kind.
func NewPinner(p *action.Pipeline, kind forum.Kind) *Pinner {
	return &Pinner{pipeline: p, kind: kind}
}

// Pin keeps entity on top of its listing.
func (s *Pinner) Pin(ctx context.Context, entity forum.Pinnable) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:     s.kind,
		Verb:     "pinning",
		Subject:  entity,
		Requires: []func() error{action.Capability[forum.Pinnable](string(s.kind), entity)},
		Run: func(ctx context.Context) (any, error) {
			return entity, entity.Pin(ctx)
		},
	})
}

// Unpin releases entity.
func (s *Pinner) Unpin(ctx context.Context, entity forum.Pinnable) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:     s.kind,
		Verb:     "unpinning",
		Subject:  entity,
		Requires: []func() error{action.Capability[forum.Pinnable](string(s.kind), entity)},
		Run: func(ctx context.Context) (any, error) {
			return entity, entity.Unpin(ctx)
		},
	})
}

// Locker locks and unlocks threads.
type Locker struct {
	pipeline *action.Pipeline
}

// NewLocker creates a Locker.
func NewLocker(p *action.Pipeline) *Locker {
	return &Locker{pipeline: p}
}

// Lock closes thread for new posts.
func (s *Locker) Lock(ctx context.Context, thread forum.Thread) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:     forum.KindThread,
		Verb:     "locking",
		Subject:  thread,
		Requires: []func() error{action.Capability[forum.Thread]("thread", thread)},
		Run: func(ctx context.Context) (any, error) {
			if err := action.Check(ctx, action.Deny(thread.IsLocked(), CodeThreadAlreadyLocked)); err != nil {
				return nil, err
			}
			return thread, thread.Lock(ctx)
		},
	})
}

// Unlock reopens thread.
func (s *Locker) Unlock(ctx context.Context, thread forum.Thread) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:     forum.KindThread,
		Verb:     "unlocking",
		Subject:  thread,
		Requires: []func() error{action.Capability[forum.Thread]("thread", thread)},
		Run: func(ctx context.Context) (any, error) {
			if err := action.Check(ctx, action.Deny(!thread.IsLocked(), CodeThreadNotLocked)); err != nil {
				return nil, err
			}
			return thread, thread.Unlock(ctx)
		},
	})
}
