package app

import (
	"context"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

var (
	_ ports.ForumMover  = (*ForumMover)(nil)
	_ ports.ThreadMover = (*ThreadMover)(nil)
	_ ports.PostMover   = (*PostMover)(nil)
)

// ForumMover moves forums between categories. Categories keep no counters,
// so the move is a single write.
type ForumMover struct {
	pipeline *action.Pipeline
}

// NewForumMover creates a ForumMover.
func NewForumMover(p *action.Pipeline) *ForumMover {
	return &ForumMover{pipeline: p}
}

// Move puts f into category.
func (s *ForumMover) Move(ctx context.Context, f forum.Forum, category forum.Category) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:    forum.KindForum,
		Verb:    "moving",
		Subject: f,
		Requires: []func() error{
			action.Capability[forum.Forum]("forum", f),
			action.Capability[forum.Category]("category", category),
		},
		Run: func(ctx context.Context) (any, error) {
			return f, f.Move(ctx, category)
		},
	})
}

// ThreadMover moves threads between forums and transfers their counters.
type ThreadMover struct {
	pipeline *action.Pipeline
}

// NewThreadMover creates a ThreadMover.
func NewThreadMover(p *action.Pipeline) *ThreadMover {
	return &ThreadMover{pipeline: p}
}

// Move puts thread into target. The thread and its posts are subtracted from
// the old forum's counters and added to the target's in one unit of work.
func (s *ThreadMover) Move(ctx context.Context, thread forum.Thread, target forum.Forum) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:    forum.KindThread,
		Verb:    "moving",
		Subject: thread,
		Requires: []func() error{
			action.Capability[forum.Thread]("thread", thread),
			action.Capability[forum.Forum]("forum", target),
		},
		Atomic: true,
		Run: func(ctx context.Context) (any, error) {
			source, err := thread.Forum(ctx)
			if err != nil {
				return nil, err
			}
			if err := thread.Move(ctx, target); err != nil {
				return nil, err
			}
			if source.ID() == target.ID() {
				return thread, nil
			}

			posts := thread.PostsCount()
			if err := source.UpdateCounters(ctx, -1, -posts); err != nil {
				return nil, action.NewFault(MsgForumCounters, err)
			}
			if err := target.UpdateCounters(ctx, 1, posts); err != nil {
				return nil, action.NewFault(MsgForumCounters, err)
			}
			return thread, nil
		},
	})
}

// PostMover moves posts between threads and transfers their counters.
type PostMover struct {
	pipeline *action.Pipeline
}

// NewPostMover creates a PostMover.
func NewPostMover(p *action.Pipeline) *PostMover {
	return &PostMover{pipeline: p}
}

// Move puts post into target and shifts one post from the old thread's
// counters (and its forum's) to the target's.
func (s *PostMover) Move(ctx context.Context, post forum.Post, target forum.Thread) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:    forum.KindPost,
		Verb:    "moving",
		Subject: post,
		Requires: []func() error{
			action.Capability[forum.Post]("post", post),
			action.Capability[forum.Thread]("thread", target),
		},
		Atomic: true,
		Run: func(ctx context.Context) (any, error) {
			source, err := post.Thread(ctx)
			if err != nil {
				return nil, err
			}
			if err := post.Move(ctx, target); err != nil {
				return nil, err
			}
			if source.ID() == target.ID() {
				return post, nil
			}
			if err := bumpPosts(ctx, source, -1); err != nil {
				return nil, err
			}
			if err := bumpPosts(ctx, target, 1); err != nil {
				return nil, err
			}
			return post, nil
		},
	})
}
