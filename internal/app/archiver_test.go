package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/mocks"
)

func TestArchiver_Archive(t *testing.T) {
	t.Parallel()

	t.Run("archives a live category atomically", func(t *testing.T) {
		t.Parallel()
		p, uow := newPipeline()
		category := newCategory(t, 1)
		category.EXPECT().IsArchived().Return(false).Once()
		category.EXPECT().Archive(mock.Anything).Return(nil).Once()

		var notified any
		p.Hooks().On("category.archiving.after", func(_ context.Context, e *action.Event) { notified = e.Entity })

		res := NewArchiver(p, forum.KindCategory).Archive(context.Background(), category)

		if !res.Succeeded() {
			t.Fatalf("Archive() = %v, want success", res)
		}
		if uow.commits != 1 {
			t.Errorf("commits = %d, want 1", uow.commits)
		}
		if notified != category {
			t.Errorf("after hook entity = %v, want the category", notified)
		}
	})

	t.Run("already archived", func(t *testing.T) {
		t.Parallel()
		p, _ := newPipeline()
		category := newCategory(t, 1)
		category.EXPECT().IsArchived().Return(true).Once()

		res := NewArchiver(p, forum.KindCategory).Archive(context.Background(), category)

		if res.Code() != "category.already.archived" {
			t.Errorf("Code() = %q, want category.already.archived", res.Code())
		}
		category.AssertNotCalled(t, "Archive", mock.Anything)
	})

	t.Run("thread archive is a single write", func(t *testing.T) {
		t.Parallel()
		p, uow := newPipeline()
		thread := newThread(t, 3)
		thread.EXPECT().IsArchived().Return(false).Once()
		thread.EXPECT().Archive(mock.Anything).Return(nil).Once()

		res := NewArchiver(p, forum.KindThread).Archive(context.Background(), thread)

		if !res.Succeeded() {
			t.Fatalf("Archive() = %v, want success", res)
		}
		if uow.begins != 0 {
			t.Errorf("begins = %d, want 0", uow.begins)
		}
	})

	t.Run("storage refusal surfaces field errors", func(t *testing.T) {
		t.Parallel()
		p, _ := newPipeline()
		f := newForum(t, 2)
		f.EXPECT().IsArchived().Return(false).Once()
		f.EXPECT().Archive(mock.Anything).Return(domain.NewValidationError("archived", "cannot be set")).Once()

		res := NewArchiver(p, forum.KindForum).Archive(context.Background(), f)

		if got := res.Errors()["archived"]; got != "cannot be set" {
			t.Errorf("Errors() = %v, want archived field", res.Errors())
		}
	})

	t.Run("cancelled by observer", func(t *testing.T) {
		t.Parallel()
		p, uow := newPipeline()
		cancel(p)
		category := newCategory(t, 1)

		res := NewArchiver(p, forum.KindCategory).Archive(context.Background(), category)

		if res.Succeeded() || len(res.Errors()) != 0 {
			t.Errorf("Archive() = %v, want empty failure", res)
		}
		if !errors.Is(res.Cause(), action.ErrCancelled) {
			t.Errorf("Cause() = %v, want ErrCancelled", res.Cause())
		}
		if uow.begins != 0 {
			t.Errorf("begins = %d, want 0", uow.begins)
		}
	})

	t.Run("nil entity is a mismatch", func(t *testing.T) {
		t.Parallel()
		p, _ := newPipeline()

		var category *mocks.MockCategory
		res := NewArchiver(p, forum.KindCategory).Archive(context.Background(), category)

		var mismatch *action.TypeMismatchError
		if !errors.As(res.Cause(), &mismatch) {
			t.Errorf("Cause() = %v, want *TypeMismatchError", res.Cause())
		}
	})
}

func TestArchiver_Revive(t *testing.T) {
	t.Parallel()

	t.Run("revives an archived category", func(t *testing.T) {
		t.Parallel()
		p, _ := newPipeline()
		category := newCategory(t, 1)
		category.EXPECT().IsArchived().Return(true).Once()
		category.EXPECT().Revive(mock.Anything).Return(nil).Once()

		if res := NewArchiver(p, forum.KindCategory).Revive(context.Background(), category); !res.Succeeded() {
			t.Fatalf("Revive() = %v, want success", res)
		}
	})

	t.Run("reviving a live entity is rejected", func(t *testing.T) {
		t.Parallel()
		p, _ := newPipeline()
		category := newCategory(t, 1)
		category.EXPECT().IsArchived().Return(false).Once()

		res := NewArchiver(p, forum.KindCategory).Revive(context.Background(), category)

		if res.Code() != "category.not.archived" {
			t.Errorf("Code() = %q, want category.not.archived", res.Code())
		}
		category.AssertNotCalled(t, "Revive", mock.Anything)
	})
}
