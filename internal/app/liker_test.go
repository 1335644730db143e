package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/mocks"
)

func TestLiker_Transitions(t *testing.T) {
	t.Parallel()

	up := func(e *mocks.MockThumb_Expecter) { e.Up(mock.Anything).Return(nil).Once() }
	down := func(e *mocks.MockThumb_Expecter) { e.Down(mock.Anything).Return(nil).Once() }
	reset := func(e *mocks.MockThumb_Expecter) { e.Reset(mock.Anything).Return(nil).Once() }

	tests := []struct {
		name         string
		from         forum.ThumbState
		found        bool
		want         forum.ThumbState
		mutate       func(*mocks.MockThumb_Expecter)
		likes        int
		dislikes     int
		wantPrepared bool
	}{
		{name: "down to up", from: forum.ThumbDown, found: true, want: forum.ThumbUp, mutate: up, likes: 1, dislikes: -1},
		{name: "new record up", from: forum.ThumbNone, found: false, want: forum.ThumbUp, mutate: up, likes: 1, wantPrepared: true},
		{name: "up to down", from: forum.ThumbUp, found: true, want: forum.ThumbDown, mutate: down, likes: -1, dislikes: 1},
		{name: "new record down", from: forum.ThumbNone, found: false, want: forum.ThumbDown, mutate: down, dislikes: 1, wantPrepared: true},
		{name: "reset up", from: forum.ThumbUp, found: true, want: forum.ThumbNone, mutate: reset, likes: -1},
		{name: "reset down", from: forum.ThumbDown, found: true, want: forum.ThumbNone, mutate: reset, dislikes: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, uow := newPipeline()
			svc := NewLiker(p)

			member := newMember(t, 1, false)
			post := newPost(t, 10)
			thumb := newThumb(t, tt.from)

			thumb.EXPECT().FetchOne(mock.Anything, member, post).Return(tt.found, nil).Once()
			if tt.wantPrepared {
				thumb.EXPECT().Prepare(member, post).Return().Once()
			}
			tt.mutate(thumb.EXPECT())
			post.EXPECT().UpdateCounters(mock.Anything, tt.likes, tt.dislikes).Return(nil).Once()

			res := vote(svc, tt.want, thumb, member, post)

			if !res.Succeeded() {
				t.Fatalf("vote(%s -> %s) = %v, want success", tt.from, tt.want, res)
			}
			if uow.commits != 1 {
				t.Errorf("commits = %d, want 1", uow.commits)
			}
			if !tt.wantPrepared {
				thumb.AssertNotCalled(t, "Prepare", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestLiker_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		from  forum.ThumbState
		found bool
		want  forum.ThumbState
		code  string
	}{
		{name: "up twice", from: forum.ThumbUp, found: true, want: forum.ThumbUp, code: CodePostAlreadyLiked},
		{name: "down twice", from: forum.ThumbDown, found: true, want: forum.ThumbDown, code: CodePostAlreadyDisliked},
		{name: "reset unrated record", from: forum.ThumbNone, found: true, want: forum.ThumbNone, code: CodePostNotRated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, uow := newPipeline()
			svc := NewLiker(p)

			member := newMember(t, 1, false)
			post := newPost(t, 10)
			thumb := newThumb(t, tt.from)
			thumb.EXPECT().FetchOne(mock.Anything, member, post).Return(tt.found, nil).Once()

			res := vote(svc, tt.want, thumb, member, post)

			if res.Code() != tt.code {
				t.Errorf("Code() = %q, want %q", res.Code(), tt.code)
			}
			if uow.rollbacks != 1 {
				t.Errorf("rollbacks = %d, want 1", uow.rollbacks)
			}
			post.AssertNotCalled(t, "UpdateCounters", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("reset without record prepares then rejects", func(t *testing.T) {
		t.Parallel()
		p, _ := newPipeline()
		member := newMember(t, 1, false)
		post := newPost(t, 10)
		thumb := newThumb(t, forum.ThumbNone)
		thumb.EXPECT().FetchOne(mock.Anything, member, post).Return(false, nil).Once()
		thumb.EXPECT().Prepare(member, post).Return().Once()

		res := NewLiker(p).ThumbReset(context.Background(), thumb, member, post)
		if res.Code() != CodePostNotRated {
			t.Errorf("Code() = %q, want %q", res.Code(), CodePostNotRated)
		}
	})
}

func TestLiker_BannedMemberFailsBeforeLookup(t *testing.T) {
	t.Parallel()
	p, _ := newPipeline()

	member := newMember(t, 1, true)
	post := newPost(t, 10)
	thumb := newThumb(t, forum.ThumbNone)

	res := NewLiker(p).ThumbUp(context.Background(), thumb, member, post)

	if res.Code() != CodeMemberBanned {
		t.Errorf("Code() = %q, want %q", res.Code(), CodeMemberBanned)
	}
	thumb.AssertNotCalled(t, "FetchOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestLiker_CounterFailureIsFault(t *testing.T) {
	t.Parallel()
	p, uow := newPipeline()

	member := newMember(t, 1, false)
	post := newPost(t, 10)
	thumb := newThumb(t, forum.ThumbDown)
	thumb.EXPECT().FetchOne(mock.Anything, member, post).Return(true, nil).Once()
	thumb.EXPECT().Up(mock.Anything).Return(nil).Once()
	post.EXPECT().UpdateCounters(mock.Anything, 1, -1).Return(errors.New("constraint failed")).Once()

	res := NewLiker(p).ThumbUp(context.Background(), thumb, member, post)

	exc := res.Exception()
	if exc == nil {
		t.Fatalf("ThumbUp() = %v, want exception", res)
	}
	if exc.Error() != MsgPostCounters {
		t.Errorf("Exception() = %q, want %q", exc.Error(), MsgPostCounters)
	}
	if uow.rollbacks != 1 || uow.commits != 0 {
		t.Errorf("uow = %+v, want rollback only", uow)
	}
}

func TestLiker_CancelledNeverTouchesRecord(t *testing.T) {
	t.Parallel()
	p, uow := newPipeline()
	cancel(p)

	member := newMember(t, 1, false)
	post := newPost(t, 10)
	thumb := newThumb(t, forum.ThumbNone)

	res := NewLiker(p).ThumbDown(context.Background(), thumb, member, post)

	if res.Succeeded() || len(res.Errors()) != 0 {
		t.Errorf("ThumbDown() = %v, want empty failure", res)
	}
	if uow.begins != 0 {
		t.Errorf("begins = %d, want 0", uow.begins)
	}
}

func vote(svc *Liker, want forum.ThumbState, thumb forum.Thumb, member forum.Member, post forum.Post) action.Result {
	ctx := context.Background()
	switch want {
	case forum.ThumbUp:
		return svc.ThumbUp(ctx, thumb, member, post)
	case forum.ThumbDown:
		return svc.ThumbDown(ctx, thumb, member, post)
	default:
		return svc.ThumbReset(ctx, thumb, member, post)
	}
}
