package app

import (
	"context"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

var _ ports.Archiver = (*Archiver)(nil)

// Archiver archives and revives entities of one kind. Categories and forums
// are archived inside a unit of work; the other kinds are single writes.
type Archiver struct {
	pipeline *action.Pipeline
	kind     forum.Kind
}

// NewArchiver creates an Archiver for kind.
func NewArchiver(p *action.Pipeline, kind forum.Kind) *Archiver {
	return &Archiver{pipeline: p, kind: kind}
}

// Archive hides the entity. It fails with "<kind>.already.archived" when
// the entity is archived already.
func (s *Archiver) Archive(ctx context.Context, entity forum.Archivable) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:     s.kind,
		Verb:     "archiving",
		Subject:  entity,
		Requires: []func() error{action.Capability[forum.Archivable](string(s.kind), entity)},
		Atomic:   s.atomic(),
		Run: func(ctx context.Context) (any, error) {
			if err := action.Check(ctx,
				action.Deny(entity.IsArchived(), kindCode(s.kind, "already.archived")),
			); err != nil {
				return nil, err
			}
			return entity, entity.Archive(ctx)
		},
	})
}

// Revive brings an archived entity back. It fails with "<kind>.not.archived"
// when the entity is not archived.
func (s *Archiver) Revive(ctx context.Context, entity forum.Archivable) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:     s.kind,
		Verb:     "reviving",
		Subject:  entity,
		Requires: []func() error{action.Capability[forum.Archivable](string(s.kind), entity)},
		Atomic:   s.atomic(),
		Run: func(ctx context.Context) (any, error) {
			if err := action.Check(ctx,
				action.Deny(!entity.IsArchived(), kindCode(s.kind, "not.archived")),
			); err != nil {
				return nil, err
			}
			return entity, entity.Revive(ctx)
		},
	})
}

func (s *Archiver) atomic() bool {
	return s.kind == forum.KindCategory || s.kind == forum.KindForum
}
