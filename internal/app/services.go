package app

import (
	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

// Services bundles every action service bound to one pipeline. Per-kind
// services are keyed by the kind they act on.
type Services struct {
	Archivers map[forum.Kind]ports.Archiver
	Removers  map[forum.Kind]ports.Remover
	Pinners   map[forum.Kind]ports.Pinner

	Categories ports.CategoryBuilder
	Forums     ports.ForumBuilder
	Threads    ports.ThreadBuilder
	Posts      ports.PostBuilder

	ForumMover  ports.ForumMover
	ThreadMover ports.ThreadMover
	PostMover   ports.PostMover

	Locker     ports.Locker
	Banisher   ports.Banisher
	Ignorer    ports.Ignorer
	Liker      ports.Liker
	Bookmarker ports.Bookmarker
	Messenger  ports.Messenger
	Subscriber ports.Subscriber
}

// NewServices builds the full service set on p.
func NewServices(p *action.Pipeline) *Services {
	s := &Services{
		Archivers: make(map[forum.Kind]ports.Archiver),
		Removers:  make(map[forum.Kind]ports.Remover),
		Pinners:   make(map[forum.Kind]ports.Pinner),

		Categories: NewCategoryBuilder(p),
		Forums:     NewForumBuilder(p),
		Threads:    NewThreadBuilder(p),
		Posts:      NewPostBuilder(p),

		ForumMover:  NewForumMover(p),
		ThreadMover: NewThreadMover(p),
		PostMover:   NewPostMover(p),

		Locker:     NewLocker(p),
		Banisher:   NewBanisher(p),
		Ignorer:    NewIgnorer(p),
		Liker:      NewLiker(p),
		Bookmarker: NewBookmarker(p),
		Messenger:  NewMessenger(p),
		Subscriber: NewSubscriber(p),
	}

	for _, kind := range []forum.Kind{
		forum.KindCategory, forum.KindForum, forum.KindThread, forum.KindPost, forum.KindMessage,
	} {
		s.Archivers[kind] = NewArchiver(p, kind)
		s.Removers[kind] = NewRemover(p, kind)
	}
	for _, kind := range []forum.Kind{forum.KindThread, forum.KindPost} {
		s.Pinners[kind] = NewPinner(p, kind)
	}

	return s
}
