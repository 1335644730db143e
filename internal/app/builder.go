package app

import (
	"context"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

var (
	_ ports.CategoryBuilder = (*CategoryBuilder)(nil)
	_ ports.ForumBuilder    = (*ForumBuilder)(nil)
	_ ports.ThreadBuilder   = (*ThreadBuilder)(nil)
	_ ports.PostBuilder     = (*PostBuilder)(nil)
)

// Payloads are normalised and validated inside the unit of work. An invalid
// payload fails with field errors, the same shape as a storage refusal.

// CategoryBuilder creates and edits categories.
type CategoryBuilder struct {
	pipeline *action.Pipeline
}

// NewCategoryBuilder creates a CategoryBuilder.
func NewCategoryBuilder(p *action.Pipeline) *CategoryBuilder {
	return &CategoryBuilder{pipeline: p}
}

// Create stores a new category authored by author.
func (s *CategoryBuilder) Create(ctx context.Context, category forum.Category, author forum.Member, data forum.CategoryData) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:    forum.KindCategory,
		Verb:    "creating",
		Subject: category,
		Requires: []func() error{
			action.Capability[forum.Category]("category", category),
			action.Capability[forum.Member]("author", author),
		},
		Atomic: true,
		Run: func(ctx context.Context) (any, error) {
			data = data.Normalize()
			if err := action.Check(ctx,
				action.Deny(author.IsBanned(), CodeMemberBanned),
				valid(data),
			); err != nil {
				return nil, err
			}
			return category, category.Create(ctx, author, data)
		},
	})
}

// Edit updates a category.
func (s *CategoryBuilder) Edit(ctx context.Context, category forum.Category, data forum.CategoryData) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:     forum.KindCategory,
		Verb:     "editing",
		Subject:  category,
		Requires: []func() error{action.Capability[forum.Category]("category", category)},
		Atomic:   true,
		Run: func(ctx context.Context) (any, error) {
			data = data.Normalize()
			if err := action.Check(ctx, valid(data)); err != nil {
				return nil, err
			}
			return category, category.Edit(ctx, data)
		},
	})
}

// ForumBuilder creates and edits forums.
type ForumBuilder struct {
	pipeline *action.Pipeline
}

// NewForumBuilder creates a ForumBuilder.
func NewForumBuilder(p *action.Pipeline) *ForumBuilder {
	return &ForumBuilder{pipeline: p}
}

// Create stores a new forum inside category.
func (s *ForumBuilder) Create(ctx context.Context, f forum.Forum, author forum.Member, category forum.Category, data forum.ForumData) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:    forum.KindForum,
		Verb:    "creating",
		Subject: f,
		Requires: []func() error{
			action.Capability[forum.Forum]("forum", f),
			action.Capability[forum.Member]("author", author),
			action.Capability[forum.Category]("category", category),
		},
		Atomic: true,
		Run: func(ctx context.Context) (any, error) {
			data = data.Normalize()
			if err := action.Check(ctx,
				action.Deny(author.IsBanned(), CodeMemberBanned),
				valid(data),
			); err != nil {
				return nil, err
			}
			return f, f.Create(ctx, author, category, data)
		},
	})
}

// Edit updates a forum.
func (s *ForumBuilder) Edit(ctx context.Context, f forum.Forum, data forum.ForumData) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:     forum.KindForum,
		Verb:     "editing",
		Subject:  f,
		Requires: []func() error{action.Capability[forum.Forum]("forum", f)},
		Atomic:   true,
		Run: func(ctx context.Context) (any, error) {
			data = data.Normalize()
			if err := action.Check(ctx, valid(data)); err != nil {
				return nil, err
			}
			return f, f.Edit(ctx, data)
		},
	})
}

// ThreadBuilder creates and edits threads.
type ThreadBuilder struct {
	pipeline *action.Pipeline
}

// NewThreadBuilder creates a ThreadBuilder.
func NewThreadBuilder(p *action.Pipeline) *ThreadBuilder {
	return &ThreadBuilder{pipeline: p}
}

// Create stores a new thread and bumps the forum's thread counter in the
// same unit of work.
func (s *ThreadBuilder) Create(ctx context.Context, thread forum.Thread, author forum.Member, f forum.Forum, data forum.ThreadData) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:    forum.KindThread,
		Verb:    "creating",
		Subject: thread,
		Requires: []func() error{
			action.Capability[forum.Thread]("thread", thread),
			action.Capability[forum.Member]("author", author),
			action.Capability[forum.Forum]("forum", f),
		},
		Atomic: true,
		Run: func(ctx context.Context) (any, error) {
			data = data.Normalize()
			if err := action.Check(ctx,
				action.Deny(author.IsBanned(), CodeMemberBanned),
				valid(data),
			); err != nil {
				return nil, err
			}
			if err := thread.Create(ctx, author, f, data); err != nil {
				return nil, err
			}
			if err := f.UpdateCounters(ctx, 1, 0); err != nil {
				return nil, action.NewFault(MsgForumCounters, err)
			}
			return thread, nil
		},
	})
}

// Edit updates a thread.
func (s *ThreadBuilder) Edit(ctx context.Context, thread forum.Thread, data forum.ThreadData) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:     forum.KindThread,
		Verb:     "editing",
		Subject:  thread,
		Requires: []func() error{action.Capability[forum.Thread]("thread", thread)},
		Atomic:   true,
		Run: func(ctx context.Context) (any, error) {
			data = data.Normalize()
			if err := action.Check(ctx, valid(data)); err != nil {
				return nil, err
			}
			return thread, thread.Edit(ctx, data)
		},
	})
}

// PostBuilder creates and edits posts.
type PostBuilder struct {
	pipeline *action.Pipeline
}

// NewPostBuilder creates a PostBuilder.
func NewPostBuilder(p *action.Pipeline) *PostBuilder {
	return &PostBuilder{pipeline: p}
}

// Create stores a new post. Locked threads accept no posts. The thread's and
// the forum's post counters are bumped in the same unit of work.
func (s *PostBuilder) Create(ctx context.Context, post forum.Post, author forum.Member, thread forum.Thread, data forum.PostData) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:    forum.KindPost,
		Verb:    "creating",
		Subject: post,
		Requires: []func() error{
			action.Capability[forum.Post]("post", post),
			action.Capability[forum.Member]("author", author),
			action.Capability[forum.Thread]("thread", thread),
		},
		Atomic: true,
		Run: func(ctx context.Context) (any, error) {
			data = data.Normalize()
			if err := action.Check(ctx,
				action.Deny(author.IsBanned(), CodeMemberBanned),
				action.Deny(thread.IsLocked(), CodeThreadLocked),
				valid(data),
			); err != nil {
				return nil, err
			}
			if err := post.Create(ctx, author, thread, data); err != nil {
				return nil, err
			}
			if err := bumpPosts(ctx, thread, 1); err != nil {
				return nil, err
			}
			return post, nil
		},
	})
}

// Edit updates a post.
func (s *PostBuilder) Edit(ctx context.Context, post forum.Post, data forum.PostData) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:     forum.KindPost,
		Verb:     "editing",
		Subject:  post,
		Requires: []func() error{action.Capability[forum.Post]("post", post)},
		Atomic:   true,
		Run: func(ctx context.Context) (any, error) {
			data = data.Normalize()
			if err := action.Check(ctx, valid(data)); err != nil {
				return nil, err
			}
			return post, post.Edit(ctx, data)
		},
	})
}

// validator is satisfied by every input payload.
type validator interface {
	Validate() error
}

func valid(v validator) action.Guard {
	return func(context.Context) error { return v.Validate() }
}

// bumpPosts adds n to the post counters of thread and of its forum.
func bumpPosts(ctx context.Context, thread forum.Thread, n int) error {
	if err := thread.UpdateCounters(ctx, n); err != nil {
		return action.NewFault(MsgThreadCounters, err)
	}
	f, err := thread.Forum(ctx)
	if err != nil {
		return err
	}
	if err := f.UpdateCounters(ctx, 0, n); err != nil {
		return action.NewFault(MsgForumCounters, err)
	}
	return nil
}
