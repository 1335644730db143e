package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
)

// flag sets a boolean column and mirrors it into the handle.
func (s *Store) flag(ctx context.Context, model any, id int64, column string, on bool, field *bool) error {
	if err := s.set(ctx, model, id, map[string]any{column: on}); err != nil {
		return fmt.Errorf("setting %s: %w", column, err)
	}
	keep(ctx, field)
	*field = on
	return nil
}

// counter bumps counter columns and mirrors the deltas into the handle.
func (s *Store) counter(ctx context.Context, model any, id int64, fields []*int, deltas ...delta) error {
	if err := s.bump(ctx, model, id, deltas...); err != nil {
		return err
	}
	for i, f := range fields {
		keep(ctx, f)
		*f += deltas[i].by
	}
	return nil
}

// Category is a category row handle.
type Category struct {
	store *Store
	m     CategoryModel
}

var _ forum.Category = (*Category)(nil)

// NewCategory returns an unsaved category handle.
func (s *Store) NewCategory() *Category { return &Category{store: s} }

// Category loads the category stored under id.
func (s *Store) Category(ctx context.Context, id int64) (*Category, error) {
	m, err := load[CategoryModel](ctx, s, forum.KindCategory, id)
	if err != nil {
		return nil, err
	}
	return &Category{store: s, m: m}, nil
}

func (c *Category) ID() int64            { return c.m.ID }
func (c *Category) Model() CategoryModel { return c.m }
func (c *Category) IsArchived() bool     { return c.m.Archived }

func (c *Category) Archive(ctx context.Context) error {
	return c.store.flag(ctx, &CategoryModel{}, c.m.ID, "archived", true, &c.m.Archived)
}

func (c *Category) Revive(ctx context.Context) error {
	return c.store.flag(ctx, &CategoryModel{}, c.m.ID, "archived", false, &c.m.Archived)
}

func (c *Category) Create(ctx context.Context, author forum.Member, data forum.CategoryData) error {
	if err := c.store.require(ctx, &MemberModel{}, "author_id", author); err != nil {
		return err
	}

	now := c.store.now()
	m := CategoryModel{
		AuthorID:    author.ID(),
		Name:        data.Name,
		Description: data.Description,
		Visible:     data.Visible,
		Sort:        data.Sort,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.store.conn(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("creating category: %w", err)
	}
	keep(ctx, &c.m)
	c.m = m
	return nil
}

func (c *Category) Edit(ctx context.Context, data forum.CategoryData) error {
	err := c.store.set(ctx, &CategoryModel{}, c.m.ID, map[string]any{
		"name":        data.Name,
		"description": data.Description,
		"visible":     data.Visible,
		"sort":        data.Sort,
	})
	if err != nil {
		return fmt.Errorf("editing category: %w", err)
	}
	keep(ctx, &c.m)
	c.m.Name, c.m.Description, c.m.Visible, c.m.Sort = data.Name, data.Description, data.Visible, data.Sort
	return nil
}

func (c *Category) Delete(ctx context.Context) error {
	return c.store.remove(ctx, &CategoryModel{}, c.m.ID)
}

// Forum is a forum row handle.
type Forum struct {
	store *Store
	m     ForumModel
}

var _ forum.Forum = (*Forum)(nil)

// NewForum returns an unsaved forum handle.
func (s *Store) NewForum() *Forum { return &Forum{store: s} }

// Forum loads the forum stored under id.
func (s *Store) Forum(ctx context.Context, id int64) (*Forum, error) {
	m, err := load[ForumModel](ctx, s, forum.KindForum, id)
	if err != nil {
		return nil, err
	}
	return &Forum{store: s, m: m}, nil
}

func (f *Forum) ID() int64         { return f.m.ID }
func (f *Forum) Model() ForumModel { return f.m }
func (f *Forum) IsArchived() bool  { return f.m.Archived }

func (f *Forum) Archive(ctx context.Context) error {
	return f.store.flag(ctx, &ForumModel{}, f.m.ID, "archived", true, &f.m.Archived)
}

func (f *Forum) Revive(ctx context.Context) error {
	return f.store.flag(ctx, &ForumModel{}, f.m.ID, "archived", false, &f.m.Archived)
}

func (f *Forum) Create(ctx context.Context, author forum.Member, category forum.Category, data forum.ForumData) error {
	if err := f.store.require(ctx, &MemberModel{}, "author_id", author); err != nil {
		return err
	}
	if err := f.store.require(ctx, &CategoryModel{}, "category_id", category); err != nil {
		return err
	}

	now := f.store.now()
	m := ForumModel{
		CategoryID:  category.ID(),
		AuthorID:    author.ID(),
		Name:        data.Name,
		Description: data.Description,
		Visible:     data.Visible,
		Sort:        data.Sort,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := f.store.conn(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("creating forum: %w", err)
	}
	keep(ctx, &f.m)
	f.m = m
	return nil
}

func (f *Forum) Edit(ctx context.Context, data forum.ForumData) error {
	err := f.store.set(ctx, &ForumModel{}, f.m.ID, map[string]any{
		"name":        data.Name,
		"description": data.Description,
		"visible":     data.Visible,
		"sort":        data.Sort,
	})
	if err != nil {
		return fmt.Errorf("editing forum: %w", err)
	}
	keep(ctx, &f.m)
	f.m.Name, f.m.Description, f.m.Visible, f.m.Sort = data.Name, data.Description, data.Visible, data.Sort
	return nil
}

func (f *Forum) Move(ctx context.Context, category forum.Category) error {
	if err := f.store.require(ctx, &CategoryModel{}, "category_id", category); err != nil {
		return err
	}
	if err := f.store.set(ctx, &ForumModel{}, f.m.ID, map[string]any{"category_id": category.ID()}); err != nil {
		return fmt.Errorf("moving forum: %w", err)
	}
	keep(ctx, &f.m.CategoryID)
	f.m.CategoryID = category.ID()
	return nil
}

func (f *Forum) UpdateCounters(ctx context.Context, threads, posts int) error {
	return f.store.counter(ctx, &ForumModel{}, f.m.ID,
		[]*int{&f.m.ThreadsCount, &f.m.PostsCount},
		delta{column: "threads_count", by: threads},
		delta{column: "posts_count", by: posts},
	)
}

// Counters returns the thread and post counters as last read or written.
func (f *Forum) Counters() (threads, posts int) { return f.m.ThreadsCount, f.m.PostsCount }

func (f *Forum) Delete(ctx context.Context) error {
	return f.store.remove(ctx, &ForumModel{}, f.m.ID)
}

// Thread is a thread row handle.
type Thread struct {
	store *Store
	m     ThreadModel
}

var _ forum.Thread = (*Thread)(nil)

// NewThread returns an unsaved thread handle.
func (s *Store) NewThread() *Thread { return &Thread{store: s} }

// Thread loads the thread stored under id.
func (s *Store) Thread(ctx context.Context, id int64) (*Thread, error) {
	m, err := load[ThreadModel](ctx, s, forum.KindThread, id)
	if err != nil {
		return nil, err
	}
	return &Thread{store: s, m: m}, nil
}

func (t *Thread) ID() int64          { return t.m.ID }
func (t *Thread) Model() ThreadModel { return t.m }
func (t *Thread) IsArchived() bool   { return t.m.Archived }
func (t *Thread) IsPinned() bool     { return t.m.Pinned }
func (t *Thread) IsLocked() bool     { return t.m.Locked }
func (t *Thread) PostsCount() int    { return t.m.PostsCount }

func (t *Thread) Archive(ctx context.Context) error {
	return t.store.flag(ctx, &ThreadModel{}, t.m.ID, "archived", true, &t.m.Archived)
}

func (t *Thread) Revive(ctx context.Context) error {
	return t.store.flag(ctx, &ThreadModel{}, t.m.ID, "archived", false, &t.m.Archived)
}

func (t *Thread) Pin(ctx context.Context) error {
	return t.store.flag(ctx, &ThreadModel{}, t.m.ID, "pinned", true, &t.m.Pinned)
}

func (t *Thread) Unpin(ctx context.Context) error {
	return t.store.flag(ctx, &ThreadModel{}, t.m.ID, "pinned", false, &t.m.Pinned)
}

func (t *Thread) Lock(ctx context.Context) error {
	return t.store.flag(ctx, &ThreadModel{}, t.m.ID, "locked", true, &t.m.Locked)
}

func (t *Thread) Unlock(ctx context.Context) error {
	return t.store.flag(ctx, &ThreadModel{}, t.m.ID, "locked", false, &t.m.Locked)
}

func (t *Thread) Create(ctx context.Context, author forum.Member, f forum.Forum, data forum.ThreadData) error {
	if err := t.store.require(ctx, &MemberModel{}, "author_id", author); err != nil {
		return err
	}
	if err := t.store.require(ctx, &ForumModel{}, "forum_id", f); err != nil {
		return err
	}

	now := t.store.now()
	m := ThreadModel{
		ForumID:   f.ID(),
		AuthorID:  author.ID(),
		Name:      data.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.store.conn(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("creating thread: %w", err)
	}
	keep(ctx, &t.m)
	t.m = m
	return nil
}

func (t *Thread) Edit(ctx context.Context, data forum.ThreadData) error {
	if err := t.store.set(ctx, &ThreadModel{}, t.m.ID, map[string]any{"name": data.Name}); err != nil {
		return fmt.Errorf("editing thread: %w", err)
	}
	keep(ctx, &t.m.Name)
	t.m.Name = data.Name
	return nil
}

func (t *Thread) Move(ctx context.Context, f forum.Forum) error {
	if err := t.store.require(ctx, &ForumModel{}, "forum_id", f); err != nil {
		return err
	}
	if err := t.store.set(ctx, &ThreadModel{}, t.m.ID, map[string]any{"forum_id": f.ID()}); err != nil {
		return fmt.Errorf("moving thread: %w", err)
	}
	keep(ctx, &t.m.ForumID)
	t.m.ForumID = f.ID()
	return nil
}

func (t *Thread) Forum(ctx context.Context) (forum.Forum, error) {
	f, err := t.store.Forum(ctx, t.m.ForumID)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (t *Thread) UpdateCounters(ctx context.Context, posts int) error {
	return t.store.counter(ctx, &ThreadModel{}, t.m.ID,
		[]*int{&t.m.PostsCount},
		delta{column: "posts_count", by: posts},
	)
}

func (t *Thread) Delete(ctx context.Context) error {
	return t.store.remove(ctx, &ThreadModel{}, t.m.ID)
}

// Post is a post row handle.
type Post struct {
	store *Store
	m     PostModel
}

var _ forum.Post = (*Post)(nil)

// NewPost returns an unsaved post handle.
func (s *Store) NewPost() *Post { return &Post{store: s} }

// Post loads the post stored under id.
func (s *Store) Post(ctx context.Context, id int64) (*Post, error) {
	m, err := load[PostModel](ctx, s, forum.KindPost, id)
	if err != nil {
		return nil, err
	}
	return &Post{store: s, m: m}, nil
}

func (p *Post) ID() int64            { return p.m.ID }
func (p *Post) Model() PostModel     { return p.m }
func (p *Post) IsArchived() bool     { return p.m.Archived }
func (p *Post) IsPinned() bool       { return p.m.Pinned }
func (p *Post) CreatedAt() time.Time { return p.m.CreatedAt }

func (p *Post) Archive(ctx context.Context) error {
	return p.store.flag(ctx, &PostModel{}, p.m.ID, "archived", true, &p.m.Archived)
}

func (p *Post) Revive(ctx context.Context) error {
	return p.store.flag(ctx, &PostModel{}, p.m.ID, "archived", false, &p.m.Archived)
}

func (p *Post) Pin(ctx context.Context) error {
	return p.store.flag(ctx, &PostModel{}, p.m.ID, "pinned", true, &p.m.Pinned)
}

func (p *Post) Unpin(ctx context.Context) error {
	return p.store.flag(ctx, &PostModel{}, p.m.ID, "pinned", false, &p.m.Pinned)
}

func (p *Post) Create(ctx context.Context, author forum.Member, thread forum.Thread, data forum.PostData) error {
	if err := p.store.require(ctx, &MemberModel{}, "author_id", author); err != nil {
		return err
	}
	if err := p.store.require(ctx, &ThreadModel{}, "thread_id", thread); err != nil {
		return err
	}

	now := p.store.now()
	m := PostModel{
		ThreadID:  thread.ID(),
		AuthorID:  author.ID(),
		Content:   data.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.store.conn(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("creating post: %w", err)
	}
	keep(ctx, &p.m)
	p.m = m
	return nil
}

func (p *Post) Edit(ctx context.Context, data forum.PostData) error {
	if err := p.store.set(ctx, &PostModel{}, p.m.ID, map[string]any{"content": data.Content}); err != nil {
		return fmt.Errorf("editing post: %w", err)
	}
	keep(ctx, &p.m.Content)
	p.m.Content = data.Content
	return nil
}

func (p *Post) Move(ctx context.Context, thread forum.Thread) error {
	if err := p.store.require(ctx, &ThreadModel{}, "thread_id", thread); err != nil {
		return err
	}
	if err := p.store.set(ctx, &PostModel{}, p.m.ID, map[string]any{"thread_id": thread.ID()}); err != nil {
		return fmt.Errorf("moving post: %w", err)
	}
	keep(ctx, &p.m.ThreadID)
	p.m.ThreadID = thread.ID()
	return nil
}

func (p *Post) Thread(ctx context.Context) (forum.Thread, error) {
	t, err := p.store.Thread(ctx, p.m.ThreadID)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (p *Post) UpdateCounters(ctx context.Context, likes, dislikes int) error {
	return p.store.counter(ctx, &PostModel{}, p.m.ID,
		[]*int{&p.m.Likes, &p.m.Dislikes},
		delta{column: "likes", by: likes},
		delta{column: "dislikes", by: dislikes},
	)
}

// Counters returns the like and dislike counters as last read or written.
func (p *Post) Counters() (likes, dislikes int) { return p.m.Likes, p.m.Dislikes }

func (p *Post) Delete(ctx context.Context) error {
	return p.store.remove(ctx, &PostModel{}, p.m.ID)
}
