package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

func TestForumMover_Move(t *testing.T) {
	t.Parallel()
	p, uow := newPipeline()
	f := newForum(t, 2)
	category := newCategory(t, 1)
	f.EXPECT().Move(mock.Anything, category).Return(nil).Once()

	if res := NewForumMover(p).Move(context.Background(), f, category); !res.Succeeded() {
		t.Fatalf("Move() = %v, want success", res)
	}
	if uow.begins != 0 {
		t.Errorf("begins = %d, want 0", uow.begins)
	}
}

func TestThreadMover_Move(t *testing.T) {
	t.Parallel()

	t.Run("transfers counters", func(t *testing.T) {
		t.Parallel()
		p, uow := newPipeline()
		thread := newThread(t, 3)
		thread.EXPECT().PostsCount().Return(5).Once()
		source, target := newForum(t, 1), newForum(t, 2)
		thread.EXPECT().Forum(mock.Anything).Return(source, nil).Once()
		thread.EXPECT().Move(mock.Anything, target).Return(nil).Once()
		source.EXPECT().UpdateCounters(mock.Anything, -1, -5).Return(nil).Once()
		target.EXPECT().UpdateCounters(mock.Anything, 1, 5).Return(nil).Once()

		if res := NewThreadMover(p).Move(context.Background(), thread, target); !res.Succeeded() {
			t.Fatalf("Move() = %v, want success", res)
		}
		if uow.commits != 1 {
			t.Errorf("commits = %d, want 1", uow.commits)
		}
	})

	t.Run("same forum leaves counters alone", func(t *testing.T) {
		t.Parallel()
		p, _ := newPipeline()
		thread := newThread(t, 3)
		f := newForum(t, 1)
		thread.EXPECT().Forum(mock.Anything).Return(f, nil).Once()
		thread.EXPECT().Move(mock.Anything, f).Return(nil).Once()

		if res := NewThreadMover(p).Move(context.Background(), thread, f); !res.Succeeded() {
			t.Fatalf("Move() = %v, want success", res)
		}
		f.AssertNotCalled(t, "UpdateCounters", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPostMover_Move(t *testing.T) {
	t.Parallel()
	p, _ := newPipeline()
	post := newPost(t, 4)
	source, target := newThread(t, 3), newThread(t, 6)
	sourceForum, targetForum := newForum(t, 1), newForum(t, 2)

	post.EXPECT().Thread(mock.Anything).Return(source, nil).Once()
	post.EXPECT().Move(mock.Anything, target).Return(nil).Once()
	source.EXPECT().UpdateCounters(mock.Anything, -1).Return(nil).Once()
	source.EXPECT().Forum(mock.Anything).Return(sourceForum, nil).Once()
	sourceForum.EXPECT().UpdateCounters(mock.Anything, 0, -1).Return(nil).Once()
	target.EXPECT().UpdateCounters(mock.Anything, 1).Return(nil).Once()
	target.EXPECT().Forum(mock.Anything).Return(targetForum, nil).Once()
	targetForum.EXPECT().UpdateCounters(mock.Anything, 0, 1).Return(nil).Once()

	if res := NewPostMover(p).Move(context.Background(), post, target); !res.Succeeded() {
		t.Fatalf("Move() = %v, want success", res)
	}
}
