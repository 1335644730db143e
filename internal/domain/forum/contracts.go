// Package forum defines the capability contracts of forum entities and the
// input payloads used to create and edit them.
//
// Entities are active records owned by a storage adapter. Every mutator
// returns nil on success, a *domain.ValidationError when the adapter refused
// the write for data reasons, and any other error for unexpected faults.
package forum

import (
	"context"
	"time"
)

// Kind names an entity family. It prefixes hook keys and failure codes
// (e.g. "category.archiving.before", "category.already.archived").
type Kind string

// Entity kinds.
const (
	KindCategory     Kind = "category"
	KindForum        Kind = "forum"
	KindThread       Kind = "thread"
	KindPost         Kind = "post"
	KindMember       Kind = "member"
	KindMessage      Kind = "message"
	KindBookmark     Kind = "bookmark"
	KindSubscription Kind = "subscription"
)

// Repository is anything with a storage identity.
type Repository interface {
	ID() int64
}

// Archivable entities can be hidden from regular listings and brought back.
type Archivable interface {
	Repository
	IsArchived() bool
	Archive(ctx context.Context) error
	Revive(ctx context.Context) error
}

// Removable entities can be deleted permanently.
type Removable interface {
	Repository
	Delete(ctx context.Context) error
}

// Pinnable entities can be kept on top of their listing.
type Pinnable interface {
	Repository
	IsPinned() bool
	Pin(ctx context.Context) error
	Unpin(ctx context.Context) error
}

// Member is a forum account.
type Member interface {
	Repository
	IsBanned() bool
	Ban(ctx context.Context) error
	Unban(ctx context.Context) error
	IsIgnoring(ctx context.Context, target Member) (bool, error)
	Ignore(ctx context.Context, target Member) error
	Unignore(ctx context.Context, target Member) error
}

// Category is the top level container of forums.
type Category interface {
	Archivable
	Removable
	Create(ctx context.Context, author Member, data CategoryData) error
	Edit(ctx context.Context, data CategoryData) error
}

// Forum groups threads inside a category and keeps their counters.
type Forum interface {
	Archivable
	Removable
	Create(ctx context.Context, author Member, category Category, data ForumData) error
	Edit(ctx context.Context, data ForumData) error
	Move(ctx context.Context, category Category) error
	// UpdateCounters adds the deltas to the thread and post counters.
	UpdateCounters(ctx context.Context, threads, posts int) error
}

// Thread is a discussion inside a forum.
type Thread interface {
	Archivable
	Removable
	Pinnable
	IsLocked() bool
	Lock(ctx context.Context) error
	Unlock(ctx context.Context) error
	Create(ctx context.Context, author Member, forum Forum, data ThreadData) error
	Edit(ctx context.Context, data ThreadData) error
	Move(ctx context.Context, forum Forum) error
	Forum(ctx context.Context) (Forum, error)
	PostsCount() int
	// UpdateCounters adds the delta to the post counter.
	UpdateCounters(ctx context.Context, posts int) error
}

// Post is a single contribution to a thread.
type Post interface {
	Archivable
	Removable
	Pinnable
	Create(ctx context.Context, author Member, thread Thread, data PostData) error
	Edit(ctx context.Context, data PostData) error
	Move(ctx context.Context, thread Thread) error
	Thread(ctx context.Context) (Thread, error)
	CreatedAt() time.Time
	// UpdateCounters adds the deltas to the like and dislike counters.
	UpdateCounters(ctx context.Context, likes, dislikes int) error
}

// Thumb is the vote record of one member on one post. A record that does not
// exist yet behaves as ThumbNone once prepared.
type Thumb interface {
	FetchOne(ctx context.Context, member Member, post Post) (bool, error)
	Prepare(member Member, post Post)
	IsUp() bool
	IsDown() bool
	Up(ctx context.Context) error
	Down(ctx context.Context) error
	Reset(ctx context.Context) error
}

// Bookmark is the read marker of one member in one thread.
type Bookmark interface {
	FetchOne(ctx context.Context, member Member, thread Thread) (bool, error)
	// Prepare initialises a new record with a zero LastSeen.
	Prepare(member Member, thread Thread)
	LastSeen() time.Time
	Mark(ctx context.Context, seen time.Time) error
}

// Subscription tracks which members follow which threads.
type Subscription interface {
	IsSubscribed(ctx context.Context, member Member, thread Thread) (bool, error)
	Subscribe(ctx context.Context, member Member, thread Thread) error
	Unsubscribe(ctx context.Context, member Member, thread Thread) error
}

// Message is a private message as seen by one participant. Archiving and
// deleting affect that participant's copy only.
type Message interface {
	Archivable
	Removable
	Send(ctx context.Context, sender, receiver Member, replyTo Message, data MessageData) error
	// VerifyParticipants reports whether both members took part in this
	// message, which makes it a valid reply target between them.
	VerifyParticipants(ctx context.Context, sender, receiver Member) (bool, error)
}
