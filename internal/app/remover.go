package app

import (
	"context"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

var _ ports.Remover = (*Remover)(nil)

// RemoverOption configures a Remover.
type RemoverOption func(*Remover)

// WithArchivedOnly makes the Remover refuse entities that are not archived.
// Categories and forums always require it.
func WithArchivedOnly() RemoverOption {
	return func(r *Remover) { r.archivedOnly = true }
}

// Remover deletes entities of one kind. Removing a thread or a post also
// subtracts it from its parents' counters in the same unit of work.
type Remover struct {
	pipeline     *action.Pipeline
	kind         forum.Kind
	archivedOnly bool
}

// NewRemover creates a Remover for kind.
func NewRemover(p *action.Pipeline, kind forum.Kind, opts ...RemoverOption) *Remover {
	r := &Remover{
		pipeline:     p,
		kind:         kind,
		archivedOnly: kind == forum.KindCategory || kind == forum.KindForum,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Remove deletes entity. When the archived-only rule applies, an entity that
// is still live fails with "<kind>.must.be.archived".
func (s *Remover) Remove(ctx context.Context, entity forum.Removable) action.Result {
	param := string(s.kind)
	requires := []func() error{action.Capability[forum.Removable](param, entity)}
	if s.archivedOnly {
		requires = append(requires, action.Capability[forum.Archivable](param, entity))
	}
	switch s.kind {
	case forum.KindThread:
		requires = append(requires, action.Capability[forum.Thread](param, entity))
	case forum.KindPost:
		requires = append(requires, action.Capability[forum.Post](param, entity))
	}

	return s.pipeline.Execute(ctx, action.Op{
		Kind:        s.kind,
		Verb:        "removing",
		Description: "deleting " + param,
		Subject:     entity,
		Requires:    requires,
		Atomic:      true,
		Run: func(ctx context.Context) (any, error) {
			if s.archivedOnly {
				archived := entity.(forum.Archivable).IsArchived()
				if err := action.Check(ctx,
					action.Deny(!archived, kindCode(s.kind, "must.be.archived")),
				); err != nil {
					return nil, err
				}
			}
			if err := s.detach(ctx, entity); err != nil {
				return nil, err
			}
			return entity, entity.Delete(ctx)
		},
	})
}

// detach subtracts entity from its parents' counters.
func (s *Remover) detach(ctx context.Context, entity forum.Removable) error {
	switch s.kind {
	case forum.KindThread:
		thread := entity.(forum.Thread)
		f, err := thread.Forum(ctx)
		if err != nil {
			return err
		}
		if err := f.UpdateCounters(ctx, -1, -thread.PostsCount()); err != nil {
			return action.NewFault(MsgForumCounters, err)
		}
	case forum.KindPost:
		thread, err := entity.(forum.Post).Thread(ctx)
		if err != nil {
			return err
		}
		return bumpPosts(ctx, thread, -1)
	}
	return nil
}
