package app

import (
	"context"
	"testing"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/mocks"
)

// spyUnitOfWork counts unit-of-work lifecycle calls.
type spyUnitOfWork struct {
	begins, commits, rollbacks int
}

func (u *spyUnitOfWork) InTx(ctx context.Context, fn func(context.Context) error) error {
	u.begins++
	if err := fn(ctx); err != nil {
		u.rollbacks++
		return err
	}
	u.commits++
	return nil
}

func newPipeline() (*action.Pipeline, *spyUnitOfWork) {
	uow := &spyUnitOfWork{}
	return action.NewPipeline(uow, action.NewHooks(), nil, nil), uow
}

// cancel closes the gate of every before hook on p.
func cancel(p *action.Pipeline) {
	p.Hooks().Tap(func(_ context.Context, e *action.Event) { e.Prevent() })
}

// The constructors below answer identity and state getters on any call
// count. Everything else must be set with EXPECT by the test; an unexpected
// call fails it.

func newMember(t *testing.T, id int64, banned bool) *mocks.MockMember {
	m := mocks.NewMockMember(t)
	m.EXPECT().ID().Return(id).Maybe()
	m.EXPECT().IsBanned().Return(banned).Maybe()
	return m
}

func newCategory(t *testing.T, id int64) *mocks.MockCategory {
	m := mocks.NewMockCategory(t)
	m.EXPECT().ID().Return(id).Maybe()
	return m
}

func newForum(t *testing.T, id int64) *mocks.MockForum {
	m := mocks.NewMockForum(t)
	m.EXPECT().ID().Return(id).Maybe()
	return m
}

func newThread(t *testing.T, id int64) *mocks.MockThread {
	m := mocks.NewMockThread(t)
	m.EXPECT().ID().Return(id).Maybe()
	return m
}

func newPost(t *testing.T, id int64) *mocks.MockPost {
	m := mocks.NewMockPost(t)
	m.EXPECT().ID().Return(id).Maybe()
	return m
}

func newMessage(t *testing.T, id int64) *mocks.MockMessage {
	m := mocks.NewMockMessage(t)
	m.EXPECT().ID().Return(id).Maybe()
	return m
}

func newThumb(t *testing.T, state forum.ThumbState) *mocks.MockThumb {
	m := mocks.NewMockThumb(t)
	m.EXPECT().IsUp().Return(state == forum.ThumbUp).Maybe()
	m.EXPECT().IsDown().Return(state == forum.ThumbDown).Maybe()
	return m
}
