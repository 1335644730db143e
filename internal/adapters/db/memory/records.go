package memory

import (
	"context"
	"time"

	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
)

type thumbRow struct {
	up, down bool
}

// Thumb is a vote record handle. FetchOne or Prepare binds it to a
// (member, post) pair; the row is written by the first Up or Down.
type Thumb struct {
	store *Store
	key   pair
	row   thumbRow
}

var _ forum.Thumb = (*Thumb)(nil)

// NewThumb returns an unbound vote record handle.
func (s *Store) NewThumb() *Thumb { return &Thumb{store: s} }

func (t *Thumb) FetchOne(_ context.Context, member forum.Member, post forum.Post) (bool, error) {
	t.key = pair{member: member.ID(), target: post.ID()}
	var (
		row   *thumbRow
		found bool
	)
	t.store.read(func() { row, found = t.store.thumbs[t.key] })
	if found {
		t.row = *row
	}
	return found, nil
}

func (t *Thumb) Prepare(member forum.Member, post forum.Post) {
	t.key = pair{member: member.ID(), target: post.ID()}
	t.row = thumbRow{}
}

func (t *Thumb) IsUp() bool   { return t.row.up }
func (t *Thumb) IsDown() bool { return t.row.down }

func (t *Thumb) Up(ctx context.Context) error    { return t.save(ctx, "thumb up", thumbRow{up: true}) }
func (t *Thumb) Down(ctx context.Context) error  { return t.save(ctx, "thumb down", thumbRow{down: true}) }
func (t *Thumb) Reset(ctx context.Context) error { return t.save(ctx, "reset thumb", thumbRow{}) }

// save upserts the row. A reset keeps the row.
func (t *Thumb) save(ctx context.Context, desc string, next thumbRow) error {
	var old *thumbRow
	prev := t.row
	err := t.store.write(ctx, desc,
		func() error {
			old = t.store.thumbs[t.key]
			t.store.thumbs[t.key] = &next
			return nil
		},
		func() {
			if old == nil {
				delete(t.store.thumbs, t.key)
			} else {
				t.store.thumbs[t.key] = old
			}
			t.row = prev
		},
	)
	if err == nil {
		t.row = next
	}
	return err
}

// ThumbState reads the stored state of member's vote on post.
func (s *Store) ThumbState(member, post int64) forum.ThumbState {
	var row *thumbRow
	s.read(func() { row = s.thumbs[pair{member: member, target: post}] })
	switch {
	case row == nil:
		return forum.ThumbNone
	case row.up:
		return forum.ThumbUp
	case row.down:
		return forum.ThumbDown
	default:
		return forum.ThumbNone
	}
}

// Bookmark is a read marker handle.
type Bookmark struct {
	store *Store
	key   pair
	seen  time.Time
}

var _ forum.Bookmark = (*Bookmark)(nil)

// NewBookmark returns an unbound bookmark handle.
func (s *Store) NewBookmark() *Bookmark { return &Bookmark{store: s} }

func (b *Bookmark) FetchOne(_ context.Context, member forum.Member, thread forum.Thread) (bool, error) {
	b.key = pair{member: member.ID(), target: thread.ID()}
	var found bool
	b.store.read(func() { b.seen, found = b.store.bookmarks[b.key] })
	return found, nil
}

func (b *Bookmark) Prepare(member forum.Member, thread forum.Thread) {
	b.key = pair{member: member.ID(), target: thread.ID()}
	b.seen = time.Time{}
}

func (b *Bookmark) LastSeen() time.Time { return b.seen }

func (b *Bookmark) Mark(ctx context.Context, seen time.Time) error {
	var (
		old time.Time
		had bool
	)
	err := b.store.write(ctx, "mark bookmark",
		func() error {
			old, had = b.store.bookmarks[b.key]
			b.store.bookmarks[b.key] = seen
			return nil
		},
		func() {
			if had {
				b.store.bookmarks[b.key] = old
			} else {
				delete(b.store.bookmarks, b.key)
			}
		},
	)
	if err == nil {
		b.seen = seen
	}
	return err
}

// Subscriptions is the subscription table.
type Subscriptions struct {
	store *Store
}

var _ forum.Subscription = (*Subscriptions)(nil)

// Subscriptions returns the subscription table.
func (s *Store) Subscriptions() *Subscriptions { return &Subscriptions{store: s} }

func (s *Subscriptions) IsSubscribed(_ context.Context, member forum.Member, thread forum.Thread) (subscribed bool, err error) {
	key := pair{member: member.ID(), target: thread.ID()}
	s.store.read(func() { _, subscribed = s.store.subscriptions[key] })
	return subscribed, nil
}

func (s *Subscriptions) Subscribe(ctx context.Context, member forum.Member, thread forum.Thread) error {
	if !stored(s.store, s.store.threads, thread) {
		return missing("thread_id")
	}
	return setFlag(ctx, s.store, "subscribe", s.store.subscriptions, pair{member: member.ID(), target: thread.ID()}, true)
}

func (s *Subscriptions) Unsubscribe(ctx context.Context, member forum.Member, thread forum.Thread) error {
	return setFlag(ctx, s.store, "unsubscribe", s.store.subscriptions, pair{member: member.ID(), target: thread.ID()}, false)
}
