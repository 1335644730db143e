package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/forumcore/internal/domain"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
)

// base carries the state shared by content entities.
type base struct {
	store    *Store
	kind     forum.Kind
	id       int64
	archived bool
	pinned   bool
}

func (b *base) ID() (id int64) {
	b.store.read(func() { id = b.id })
	return id
}

func (b *base) IsArchived() (archived bool) {
	b.store.read(func() { archived = b.archived })
	return archived
}

func (b *base) IsPinned() (pinned bool) {
	b.store.read(func() { pinned = b.pinned })
	return pinned
}

func (b *base) Archive(ctx context.Context) error {
	return assign(ctx, b.store, b.describe("archive"), &b.archived, true)
}

func (b *base) Revive(ctx context.Context) error {
	return assign(ctx, b.store, b.describe("revive"), &b.archived, false)
}

func (b *base) Pin(ctx context.Context) error {
	return assign(ctx, b.store, b.describe("pin"), &b.pinned, true)
}

func (b *base) Unpin(ctx context.Context) error {
	return assign(ctx, b.store, b.describe("unpin"), &b.pinned, false)
}

func (b *base) describe(verb string) string {
	return fmt.Sprintf("%s %s %d", verb, b.kind, b.id)
}

// stored reports whether r is a row of table, checked by id.
func stored[T any](s *Store, table map[int64]T, r forum.Repository) bool {
	if r == nil {
		return false
	}
	id := r.ID()
	var ok bool
	s.read(func() { _, ok = table[id] })
	return ok
}

func missing(field string) error {
	return domain.NewValidationError(field, "does not exist")
}

// Category is a stored category.
type Category struct {
	base
	Name        string
	Description string
	Visible     bool
	Sort        int
	AuthorID    int64
}

var _ forum.Category = (*Category)(nil)

// NewCategory returns an unsaved category handle.
func (s *Store) NewCategory() *Category {
	return &Category{base: base{store: s, kind: forum.KindCategory}}
}

// Category returns the category stored under id.
func (s *Store) Category(id int64) (*Category, error) {
	var c *Category
	s.read(func() { c = s.categories[id] })
	if c == nil {
		return nil, fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

func (c *Category) Create(ctx context.Context, author forum.Member, data forum.CategoryData) error {
	if !stored(c.store, c.store.members, author) {
		return missing("author_id")
	}
	c.Name, c.Description, c.Visible, c.Sort = data.Name, data.Description, data.Visible, data.Sort
	c.AuthorID = author.ID()
	return insert(ctx, c.store, "create category", c.store.categories, c, func(id int64) { c.id = id })
}

func (c *Category) Edit(ctx context.Context, data forum.CategoryData) error {
	var old forum.CategoryData
	return c.store.write(ctx, c.describe("edit"),
		func() error {
			old = forum.CategoryData{Name: c.Name, Description: c.Description, Visible: c.Visible, Sort: c.Sort}
			c.Name, c.Description, c.Visible, c.Sort = data.Name, data.Description, data.Visible, data.Sort
			return nil
		},
		func() { c.Name, c.Description, c.Visible, c.Sort = old.Name, old.Description, old.Visible, old.Sort },
	)
}

func (c *Category) Delete(ctx context.Context) error {
	return remove(ctx, c.store, c.describe("delete"), c.store.categories, c.ID())
}

// Forum is a stored forum.
type Forum struct {
	base
	Name         string
	Description  string
	Visible      bool
	Sort         int
	CategoryID   int64
	AuthorID     int64
	ThreadsCount int
	PostsCount   int
}

var _ forum.Forum = (*Forum)(nil)

// NewForum returns an unsaved forum handle.
func (s *Store) NewForum() *Forum {
	return &Forum{base: base{store: s, kind: forum.KindForum}}
}

// Forum returns the forum stored under id.
func (s *Store) Forum(id int64) (*Forum, error) {
	var f *Forum
	s.read(func() { f = s.forums[id] })
	if f == nil {
		return nil, fmt.Errorf("forum %d: %w", id, domain.ErrNotFound)
	}
	return f, nil
}

func (f *Forum) Create(ctx context.Context, author forum.Member, category forum.Category, data forum.ForumData) error {
	if !stored(f.store, f.store.members, author) {
		return missing("author_id")
	}
	if !stored(f.store, f.store.categories, category) {
		return missing("category_id")
	}
	f.Name, f.Description, f.Visible, f.Sort = data.Name, data.Description, data.Visible, data.Sort
	f.AuthorID, f.CategoryID = author.ID(), category.ID()
	return insert(ctx, f.store, "create forum", f.store.forums, f, func(id int64) { f.id = id })
}

func (f *Forum) Edit(ctx context.Context, data forum.ForumData) error {
	var old forum.ForumData
	return f.store.write(ctx, f.describe("edit"),
		func() error {
			old = forum.ForumData{Name: f.Name, Description: f.Description, Visible: f.Visible, Sort: f.Sort}
			f.Name, f.Description, f.Visible, f.Sort = data.Name, data.Description, data.Visible, data.Sort
			return nil
		},
		func() { f.Name, f.Description, f.Visible, f.Sort = old.Name, old.Description, old.Visible, old.Sort },
	)
}

func (f *Forum) Move(ctx context.Context, category forum.Category) error {
	if !stored(f.store, f.store.categories, category) {
		return missing("category_id")
	}
	return assign(ctx, f.store, f.describe("move"), &f.CategoryID, category.ID())
}

func (f *Forum) UpdateCounters(ctx context.Context, threads, posts int) error {
	return bump(ctx, f.store, f.describe("count"), []*int{&f.ThreadsCount, &f.PostsCount}, threads, posts)
}

// Counters returns the thread and post counters.
func (f *Forum) Counters() (threads, posts int) {
	f.store.read(func() { threads, posts = f.ThreadsCount, f.PostsCount })
	return threads, posts
}

func (f *Forum) Delete(ctx context.Context) error {
	return remove(ctx, f.store, f.describe("delete"), f.store.forums, f.ID())
}

// Thread is a stored thread.
type Thread struct {
	base
	Name     string
	ForumID  int64
	AuthorID int64
	Locked   bool
	Posts    int
}

var _ forum.Thread = (*Thread)(nil)

// NewThread returns an unsaved thread handle.
func (s *Store) NewThread() *Thread {
	return &Thread{base: base{store: s, kind: forum.KindThread}}
}

// Thread returns the thread stored under id.
func (s *Store) Thread(id int64) (*Thread, error) {
	var t *Thread
	s.read(func() { t = s.threads[id] })
	if t == nil {
		return nil, fmt.Errorf("thread %d: %w", id, domain.ErrNotFound)
	}
	return t, nil
}

func (t *Thread) Create(ctx context.Context, author forum.Member, f forum.Forum, data forum.ThreadData) error {
	if !stored(t.store, t.store.members, author) {
		return missing("author_id")
	}
	if !stored(t.store, t.store.forums, f) {
		return missing("forum_id")
	}
	t.Name, t.AuthorID, t.ForumID = data.Name, author.ID(), f.ID()
	return insert(ctx, t.store, "create thread", t.store.threads, t, func(id int64) { t.id = id })
}

func (t *Thread) Edit(ctx context.Context, data forum.ThreadData) error {
	return assign(ctx, t.store, t.describe("edit"), &t.Name, data.Name)
}

func (t *Thread) Move(ctx context.Context, f forum.Forum) error {
	if !stored(t.store, t.store.forums, f) {
		return missing("forum_id")
	}
	return assign(ctx, t.store, t.describe("move"), &t.ForumID, f.ID())
}

func (t *Thread) Forum(context.Context) (forum.Forum, error) {
	var id int64
	t.store.read(func() { id = t.ForumID })
	f, err := t.store.Forum(id)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (t *Thread) IsLocked() (locked bool) {
	t.store.read(func() { locked = t.Locked })
	return locked
}

func (t *Thread) Lock(ctx context.Context) error {
	return assign(ctx, t.store, t.describe("lock"), &t.Locked, true)
}

func (t *Thread) Unlock(ctx context.Context) error {
	return assign(ctx, t.store, t.describe("unlock"), &t.Locked, false)
}

func (t *Thread) PostsCount() (n int) {
	t.store.read(func() { n = t.Posts })
	return n
}

func (t *Thread) UpdateCounters(ctx context.Context, posts int) error {
	return bump(ctx, t.store, t.describe("count"), []*int{&t.Posts}, posts)
}

func (t *Thread) Delete(ctx context.Context) error {
	return remove(ctx, t.store, t.describe("delete"), t.store.threads, t.ID())
}

// Post is a stored post.
type Post struct {
	base
	Content  string
	ThreadID int64
	AuthorID int64
	Likes    int
	Dislikes int
	Created  time.Time
}

var _ forum.Post = (*Post)(nil)

// NewPost returns an unsaved post handle.
func (s *Store) NewPost() *Post {
	return &Post{base: base{store: s, kind: forum.KindPost}}
}

// Post returns the post stored under id.
func (s *Store) Post(id int64) (*Post, error) {
	var p *Post
	s.read(func() { p = s.posts[id] })
	if p == nil {
		return nil, fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func (p *Post) Create(ctx context.Context, author forum.Member, thread forum.Thread, data forum.PostData) error {
	if !stored(p.store, p.store.members, author) {
		return missing("author_id")
	}
	if !stored(p.store, p.store.threads, thread) {
		return missing("thread_id")
	}
	p.Content, p.AuthorID, p.ThreadID, p.Created = data.Content, author.ID(), thread.ID(), p.store.now()
	return insert(ctx, p.store, "create post", p.store.posts, p, func(id int64) { p.id = id })
}

func (p *Post) Edit(ctx context.Context, data forum.PostData) error {
	return assign(ctx, p.store, p.describe("edit"), &p.Content, data.Content)
}

func (p *Post) Move(ctx context.Context, thread forum.Thread) error {
	if !stored(p.store, p.store.threads, thread) {
		return missing("thread_id")
	}
	return assign(ctx, p.store, p.describe("move"), &p.ThreadID, thread.ID())
}

func (p *Post) Thread(context.Context) (forum.Thread, error) {
	var id int64
	p.store.read(func() { id = p.ThreadID })
	t, err := p.store.Thread(id)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (p *Post) CreatedAt() (at time.Time) {
	p.store.read(func() { at = p.Created })
	return at
}

func (p *Post) UpdateCounters(ctx context.Context, likes, dislikes int) error {
	return bump(ctx, p.store, p.describe("count"), []*int{&p.Likes, &p.Dislikes}, likes, dislikes)
}

// Counters returns the like and dislike counters.
func (p *Post) Counters() (likes, dislikes int) {
	p.store.read(func() { likes, dislikes = p.Likes, p.Dislikes })
	return likes, dislikes
}

func (p *Post) Delete(ctx context.Context) error {
	return remove(ctx, p.store, p.describe("delete"), p.store.posts, p.ID())
}
