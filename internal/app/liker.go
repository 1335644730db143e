package app

import (
	"context"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

var _ ports.Liker = (*Liker)(nil)

// Liker records thumb votes. The vote record write and the post counter
// update share one unit of work, so counters always equal the sum of the
// non-empty votes on the post.
type Liker struct {
	pipeline *action.Pipeline
}

// NewLiker creates a Liker.
func NewLiker(p *action.Pipeline) *Liker {
	return &Liker{pipeline: p}
}

// ThumbUp votes post up. Fails with "post.already.liked" on a repeated vote.
func (s *Liker) ThumbUp(ctx context.Context, thumb forum.Thumb, member forum.Member, post forum.Post) action.Result {
	return s.vote(ctx, thumb, member, post, forum.ThumbUp)
}

// ThumbDown votes post down. Fails with "post.already.disliked" on a
// repeated vote.
func (s *Liker) ThumbDown(ctx context.Context, thumb forum.Thumb, member forum.Member, post forum.Post) action.Result {
	return s.vote(ctx, thumb, member, post, forum.ThumbDown)
}

// ThumbReset withdraws member's vote. Fails with "post.not.rated" when there
// is nothing to withdraw.
func (s *Liker) ThumbReset(ctx context.Context, thumb forum.Thumb, member forum.Member, post forum.Post) action.Result {
	return s.vote(ctx, thumb, member, post, forum.ThumbNone)
}

// votes maps each requested state to its hook verb, fault description,
// rejection code and record mutator.
var votes = map[forum.ThumbState]struct {
	verb, description, code string
	apply                   func(forum.Thumb, context.Context) error
}{
	forum.ThumbUp:   {"thumbing-up", "giving thumb up", CodePostAlreadyLiked, forum.Thumb.Up},
	forum.ThumbDown: {"thumbing-down", "giving thumb down", CodePostAlreadyDisliked, forum.Thumb.Down},
	forum.ThumbNone: {"thumbing-reset", "resetting thumb", CodePostNotRated, forum.Thumb.Reset},
}

func (s *Liker) vote(ctx context.Context, thumb forum.Thumb, member forum.Member, post forum.Post, want forum.ThumbState) action.Result {
	v := votes[want]

	return s.pipeline.Execute(ctx, action.Op{
		Kind:        forum.KindPost,
		Verb:        v.verb,
		Description: v.description,
		Subject:     post,
		Requires: []func() error{
			action.Capability[forum.Thumb]("thumb", thumb),
			action.Capability[forum.Member]("member", member),
			action.Capability[forum.Post]("post", post),
		},
		Atomic: true,
		Run: func(ctx context.Context) (any, error) {
			if err := action.Check(ctx, action.Deny(member.IsBanned(), CodeMemberBanned)); err != nil {
				return nil, err
			}

			found, err := thumb.FetchOne(ctx, member, post)
			if err != nil {
				return nil, err
			}
			if !found {
				thumb.Prepare(member, post)
			}

			delta, ok := forum.StateOf(thumb).Transition(want)
			if !ok {
				return nil, action.Reject(v.code)
			}

			if err := v.apply(thumb, ctx); err != nil {
				return nil, err
			}
			if err := post.UpdateCounters(ctx, delta.Likes, delta.Dislikes); err != nil {
				return nil, action.NewFault(MsgPostCounters, err)
			}
			return post, nil
		},
	})
}
