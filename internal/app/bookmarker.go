package app

import (
	"context"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

var _ ports.Bookmarker = (*Bookmarker)(nil)

// Bookmarker moves a member's read marker in a thread forward.
type Bookmarker struct {
	pipeline *action.Pipeline
}

// NewBookmarker creates a Bookmarker.
func NewBookmarker(p *action.Pipeline) *Bookmarker {
	return &Bookmarker{pipeline: p}
}

// Mark records that member has seen post. The bookmark of the post's thread
// is created when missing and only written when it is older than the post;
// marking an up-to-date bookmark succeeds without a write.
func (s *Bookmarker) Mark(ctx context.Context, bookmark forum.Bookmark, member forum.Member, post forum.Post) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:    forum.KindBookmark,
		Verb:    "marking",
		Subject: post,
		Requires: []func() error{
			action.Capability[forum.Bookmark]("bookmark", bookmark),
			action.Capability[forum.Member]("member", member),
			action.Capability[forum.Post]("post", post),
		},
		Run: func(ctx context.Context) (any, error) {
			thread, err := post.Thread(ctx)
			if err != nil {
				return nil, err
			}

			found, err := bookmark.FetchOne(ctx, member, thread)
			if err != nil {
				return nil, err
			}
			if !found {
				bookmark.Prepare(member, thread)
			}

			if created := post.CreatedAt(); bookmark.LastSeen().Before(created) {
				if err := bookmark.Mark(ctx, created); err != nil {
					return nil, err
				}
			}
			return bookmark, nil
		},
	})
}
