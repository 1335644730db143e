package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
)

// Stored vote values.
const (
	voteNone = 0
	voteUp   = 1
	voteDown = -1
)

// Thumb is a vote record handle. FetchOne or Prepare binds it to a
// (member, post) pair; the row is written by the first vote.
type Thumb struct {
	store *Store
	m     ThumbModel
}

var _ forum.Thumb = (*Thumb)(nil)

// NewThumb returns an unbound vote record handle.
func (s *Store) NewThumb() *Thumb { return &Thumb{store: s} }

func (t *Thumb) FetchOne(ctx context.Context, member forum.Member, post forum.Post) (bool, error) {
	err := t.store.conn(ctx).
		Where("member_id = ? AND post_id = ?", member.ID(), post.ID()).
		Take(&t.m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading thumb: %w", err)
	}
	return true, nil
}

func (t *Thumb) Prepare(member forum.Member, post forum.Post) {
	t.m = ThumbModel{MemberID: member.ID(), PostID: post.ID()}
}

func (t *Thumb) IsUp() bool   { return t.m.Vote == voteUp }
func (t *Thumb) IsDown() bool { return t.m.Vote == voteDown }

func (t *Thumb) Up(ctx context.Context) error    { return t.save(ctx, voteUp) }
func (t *Thumb) Down(ctx context.Context) error  { return t.save(ctx, voteDown) }
func (t *Thumb) Reset(ctx context.Context) error { return t.save(ctx, voteNone) }

// save upserts the row. A reset keeps the row with a zero vote.
func (t *Thumb) save(ctx context.Context, vote int) error {
	row := t.m
	row.Vote = vote
	row.UpdatedAt = t.store.now()

	err := t.store.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "member_id"}, {Name: "post_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"vote", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("saving thumb on post %d: %w", row.PostID, err)
	}
	keep(ctx, &t.m)
	t.m = row
	return nil
}

// ThumbState reads the stored state of member's vote on post.
func (s *Store) ThumbState(ctx context.Context, member, post int64) (forum.ThumbState, error) {
	var m ThumbModel
	err := s.conn(ctx).Where("member_id = ? AND post_id = ?", member, post).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return forum.ThumbNone, nil
	}
	if err != nil {
		return forum.ThumbNone, fmt.Errorf("loading thumb: %w", err)
	}
	switch m.Vote {
	case voteUp:
		return forum.ThumbUp, nil
	case voteDown:
		return forum.ThumbDown, nil
	default:
		return forum.ThumbNone, nil
	}
}

// Bookmark is a read marker handle.
type Bookmark struct {
	store *Store
	m     BookmarkModel
}

var _ forum.Bookmark = (*Bookmark)(nil)

// NewBookmark returns an unbound bookmark handle.
func (s *Store) NewBookmark() *Bookmark { return &Bookmark{store: s} }

func (b *Bookmark) FetchOne(ctx context.Context, member forum.Member, thread forum.Thread) (bool, error) {
	err := b.store.conn(ctx).
		Where("member_id = ? AND thread_id = ?", member.ID(), thread.ID()).
		Take(&b.m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading bookmark: %w", err)
	}
	return true, nil
}

func (b *Bookmark) Prepare(member forum.Member, thread forum.Thread) {
	b.m = BookmarkModel{MemberID: member.ID(), ThreadID: thread.ID()}
}

func (b *Bookmark) LastSeen() time.Time { return b.m.LastSeen }

func (b *Bookmark) Mark(ctx context.Context, seen time.Time) error {
	row := b.m
	row.LastSeen = seen

	err := b.store.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "member_id"}, {Name: "thread_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_seen"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("marking bookmark on thread %d: %w", row.ThreadID, err)
	}
	keep(ctx, &b.m)
	b.m = row
	return nil
}

// Subscriptions is the thread subscription registry.
type Subscriptions struct {
	store *Store
}

var _ forum.Subscription = (*Subscriptions)(nil)

// Subscriptions returns the subscription registry.
func (s *Store) Subscriptions() *Subscriptions { return &Subscriptions{store: s} }

func (s *Subscriptions) IsSubscribed(ctx context.Context, member forum.Member, thread forum.Thread) (bool, error) {
	var n int64
	err := s.store.conn(ctx).Model(&SubscriptionModel{}).
		Where("member_id = ? AND thread_id = ?", member.ID(), thread.ID()).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("reading subscriptions: %w", err)
	}
	return n > 0, nil
}

func (s *Subscriptions) Subscribe(ctx context.Context, member forum.Member, thread forum.Thread) error {
	if err := s.store.require(ctx, &ThreadModel{}, "thread_id", thread); err != nil {
		return err
	}
	row := SubscriptionModel{MemberID: member.ID(), ThreadID: thread.ID(), CreatedAt: s.store.now()}
	if err := s.store.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("subscribing to thread %d: %w", thread.ID(), err)
	}
	return nil
}

func (s *Subscriptions) Unsubscribe(ctx context.Context, member forum.Member, thread forum.Thread) error {
	err := s.store.conn(ctx).
		Where("member_id = ? AND thread_id = ?", member.ID(), thread.ID()).
		Delete(&SubscriptionModel{}).Error
	if err != nil {
		return fmt.Errorf("unsubscribing from thread %d: %w", thread.ID(), err)
	}
	return nil
}
