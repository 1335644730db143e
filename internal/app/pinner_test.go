package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
)

func TestPinner(t *testing.T) {
	t.Parallel()

	t.Run("pins a thread without a unit of work", func(t *testing.T) {
		t.Parallel()
		p, uow := newPipeline()
		thread := newThread(t, 3)
		thread.EXPECT().Pin(mock.Anything).Return(nil).Once()

		if res := NewPinner(p, forum.KindThread).Pin(context.Background(), thread); !res.Succeeded() {
			t.Fatalf("Pin() = %v, want success", res)
		}
		if uow.begins != 0 {
			t.Errorf("begins = %d, want 0", uow.begins)
		}
	})

	t.Run("unpins a post", func(t *testing.T) {
		t.Parallel()
		p, _ := newPipeline()
		post := newPost(t, 4)
		post.EXPECT().Unpin(mock.Anything).Return(nil).Once()

		var key string
		p.Hooks().Tap(func(_ context.Context, e *action.Event) { key = e.Key })

		if res := NewPinner(p, forum.KindPost).Unpin(context.Background(), post); !res.Succeeded() {
			t.Fatalf("Unpin() = %v, want success", res)
		}
		if key != "post.unpinning.after" {
			t.Errorf("last hook = %q, want post.unpinning.after", key)
		}
	})
}

func TestLocker(t *testing.T) {
	t.Parallel()

	t.Run("locks an open thread", func(t *testing.T) {
		t.Parallel()
		p, _ := newPipeline()
		thread := newThread(t, 3)
		thread.EXPECT().IsLocked().Return(false).Once()
		thread.EXPECT().Lock(mock.Anything).Return(nil).Once()

		if res := NewLocker(p).Lock(context.Background(), thread); !res.Succeeded() {
			t.Fatalf("Lock() = %v, want success", res)
		}
	})

	t.Run("locking twice", func(t *testing.T) {
		t.Parallel()
		p, _ := newPipeline()
		thread := newThread(t, 3)
		thread.EXPECT().IsLocked().Return(true).Once()

		if res := NewLocker(p).Lock(context.Background(), thread); res.Code() != CodeThreadAlreadyLocked {
			t.Errorf("Code() = %q, want %q", res.Code(), CodeThreadAlreadyLocked)
		}
	})

	t.Run("unlocking an open thread", func(t *testing.T) {
		t.Parallel()
		p, _ := newPipeline()
		thread := newThread(t, 3)
		thread.EXPECT().IsLocked().Return(false).Once()

		if res := NewLocker(p).Unlock(context.Background(), thread); res.Code() != CodeThreadNotLocked {
			t.Errorf("Code() = %q, want %q", res.Code(), CodeThreadNotLocked)
		}
	})
}
