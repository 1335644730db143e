package ports

import (
	"context"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
)

// Every service method returns exactly one action.Result and never panics.
// Failure codes in the "api" key are opaque; resolve them with a Translator.

// Archiver archives and revives entities of one kind.
type Archiver interface {
	Archive(ctx context.Context, entity forum.Archivable) action.Result
	Revive(ctx context.Context, entity forum.Archivable) action.Result
}

// CategoryBuilder creates and edits categories.
type CategoryBuilder interface {
	Create(ctx context.Context, category forum.Category, author forum.Member, data forum.CategoryData) action.Result
	Edit(ctx context.Context, category forum.Category, data forum.CategoryData) action.Result
}

// ForumBuilder creates and edits forums.
type ForumBuilder interface {
	Create(ctx context.Context, f forum.Forum, author forum.Member, category forum.Category, data forum.ForumData) action.Result
	Edit(ctx context.Context, f forum.Forum, data forum.ForumData) action.Result
}

// ThreadBuilder creates and edits threads.
type ThreadBuilder interface {
	Create(ctx context.Context, thread forum.Thread, author forum.Member, f forum.Forum, data forum.ThreadData) action.Result
	Edit(ctx context.Context, thread forum.Thread, data forum.ThreadData) action.Result
}

// PostBuilder creates and edits posts.
type PostBuilder interface {
	Create(ctx context.Context, post forum.Post, author forum.Member, thread forum.Thread, data forum.PostData) action.Result
	Edit(ctx context.Context, post forum.Post, data forum.PostData) action.Result
}

// ForumMover moves forums between categories.
type ForumMover interface {
	Move(ctx context.Context, f forum.Forum, category forum.Category) action.Result
}

// ThreadMover moves threads between forums.
type ThreadMover interface {
	Move(ctx context.Context, thread forum.Thread, f forum.Forum) action.Result
}

// PostMover moves posts between threads.
type PostMover interface {
	Move(ctx context.Context, post forum.Post, thread forum.Thread) action.Result
}

// Remover deletes entities of one kind.
type Remover interface {
	Remove(ctx context.Context, entity forum.Removable) action.Result
}

// Pinner pins and unpins threads or posts.
type Pinner interface {
	Pin(ctx context.Context, entity forum.Pinnable) action.Result
	Unpin(ctx context.Context, entity forum.Pinnable) action.Result
}

// Locker locks and unlocks threads.
type Locker interface {
	Lock(ctx context.Context, thread forum.Thread) action.Result
	Unlock(ctx context.Context, thread forum.Thread) action.Result
}

// Banisher bans and unbans members.
type Banisher interface {
	Ban(ctx context.Context, member forum.Member) action.Result
	Unban(ctx context.Context, member forum.Member) action.Result
}

// Ignorer maintains members' ignore lists.
type Ignorer interface {
	Ignore(ctx context.Context, member, target forum.Member) action.Result
	Unignore(ctx context.Context, member, target forum.Member) action.Result
}

// Liker records thumb votes and keeps post counters consistent.
type Liker interface {
	ThumbUp(ctx context.Context, thumb forum.Thumb, member forum.Member, post forum.Post) action.Result
	ThumbDown(ctx context.Context, thumb forum.Thumb, member forum.Member, post forum.Post) action.Result
	ThumbReset(ctx context.Context, thumb forum.Thumb, member forum.Member, post forum.Post) action.Result
}

// Bookmarker moves read markers forward.
type Bookmarker interface {
	Mark(ctx context.Context, bookmark forum.Bookmark, member forum.Member, post forum.Post) action.Result
}

// Messenger delivers private messages. replyTo may be nil.
type Messenger interface {
	Send(ctx context.Context, message forum.Message, sender, receiver forum.Member, replyTo forum.Message, data forum.MessageData) action.Result
}

// Subscriber manages thread subscriptions.
type Subscriber interface {
	Subscribe(ctx context.Context, subscription forum.Subscription, member forum.Member, thread forum.Thread) action.Result
	Unsubscribe(ctx context.Context, subscription forum.Subscription, member forum.Member, thread forum.Thread) action.Result
}
