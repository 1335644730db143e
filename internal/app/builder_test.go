package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
)

func TestCategoryBuilder_Create(t *testing.T) {
	t.Parallel()

	t.Run("normalises the payload before storing", func(t *testing.T) {
		t.Parallel()
		p, uow := newPipeline()
		category := newCategory(t, 1)
		author := newMember(t, 9, false)
		category.EXPECT().Create(mock.Anything, author, forum.CategoryData{Name: "General"}).Return(nil).Once()

		res := NewCategoryBuilder(p).Create(context.Background(), category, author, forum.CategoryData{Name: "  General "})

		if !res.Succeeded() {
			t.Fatalf("Create() = %v, want success", res)
		}
		if uow.commits != 1 {
			t.Errorf("commits = %d, want 1", uow.commits)
		}
	})

	t.Run("banned author", func(t *testing.T) {
		t.Parallel()
		p, _ := newPipeline()
		category := newCategory(t, 1)
		author := newMember(t, 9, true)

		res := NewCategoryBuilder(p).Create(context.Background(), category, author, forum.CategoryData{Name: "General"})

		if res.Code() != CodeMemberBanned {
			t.Errorf("Code() = %q, want %q", res.Code(), CodeMemberBanned)
		}
		category.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank name", func(t *testing.T) {
		t.Parallel()
		p, uow := newPipeline()

		res := NewCategoryBuilder(p).Create(context.Background(), newCategory(t, 1), newMember(t, 9, false), forum.CategoryData{})

		if _, ok := res.Errors()["name"]; !ok {
			t.Errorf("Errors() = %v, want name field", res.Errors())
		}
		if uow.rollbacks != 1 {
			t.Errorf("rollbacks = %d, want 1", uow.rollbacks)
		}
	})
}

func TestCategoryBuilder_Edit(t *testing.T) {
	t.Parallel()
	p, _ := newPipeline()
	category := newCategory(t, 1)
	category.EXPECT().Edit(mock.Anything, forum.CategoryData{Name: "News", Sort: 2}).Return(nil).Once()

	if res := NewCategoryBuilder(p).Edit(context.Background(), category, forum.CategoryData{Name: "News", Sort: 2}); !res.Succeeded() {
		t.Fatalf("Edit() = %v, want success", res)
	}
}

func TestForumBuilder_Create(t *testing.T) {
	t.Parallel()
	p, _ := newPipeline()
	f := newForum(t, 2)
	category := newCategory(t, 1)
	author := newMember(t, 9, false)
	data := forum.ForumData{Name: "Announcements"}
	f.EXPECT().Create(mock.Anything, author, category, data).Return(nil).Once()

	if res := NewForumBuilder(p).Create(context.Background(), f, author, category, data); !res.Succeeded() {
		t.Fatalf("Create() = %v, want success", res)
	}
}

func TestThreadBuilder_Create(t *testing.T) {
	t.Parallel()

	t.Run("bumps forum thread counter", func(t *testing.T) {
		t.Parallel()
		p, _ := newPipeline()
		thread := newThread(t, 3)
		f := newForum(t, 2)
		author := newMember(t, 9, false)
		data := forum.ThreadData{Name: "Welcome"}
		thread.EXPECT().Create(mock.Anything, author, f, data).Return(nil).Once()
		f.EXPECT().UpdateCounters(mock.Anything, 1, 0).Return(nil).Once()

		if res := NewThreadBuilder(p).Create(context.Background(), thread, author, f, data); !res.Succeeded() {
			t.Fatalf("Create() = %v, want success", res)
		}
	})

	t.Run("counter failure is a fault", func(t *testing.T) {
		t.Parallel()
		p, uow := newPipeline()
		thread := newThread(t, 3)
		f := newForum(t, 2)
		author := newMember(t, 9, false)
		data := forum.ThreadData{Name: "Welcome"}
		thread.EXPECT().Create(mock.Anything, author, f, data).Return(nil).Once()
		f.EXPECT().UpdateCounters(mock.Anything, 1, 0).Return(errors.New("busy")).Once()

		res := NewThreadBuilder(p).Create(context.Background(), thread, author, f, data)

		if res.Exception() == nil || res.Exception().Error() != MsgForumCounters {
			t.Errorf("Exception() = %v, want %q", res.Exception(), MsgForumCounters)
		}
		if uow.rollbacks != 1 {
			t.Errorf("rollbacks = %d, want 1", uow.rollbacks)
		}
	})
}

func TestPostBuilder_Create(t *testing.T) {
	t.Parallel()

	t.Run("bumps thread and forum counters", func(t *testing.T) {
		t.Parallel()
		p, _ := newPipeline()
		post := newPost(t, 4)
		thread := newThread(t, 3)
		f := newForum(t, 2)
		author := newMember(t, 9, false)
		data := forum.PostData{Content: "First!"}
		post.EXPECT().Create(mock.Anything, author, thread, data).Return(nil).Once()
		thread.EXPECT().IsLocked().Return(false).Once()
		thread.EXPECT().UpdateCounters(mock.Anything, 1).Return(nil).Once()
		thread.EXPECT().Forum(mock.Anything).Return(f, nil).Once()
		f.EXPECT().UpdateCounters(mock.Anything, 0, 1).Return(nil).Once()

		if res := NewPostBuilder(p).Create(context.Background(), post, author, thread, data); !res.Succeeded() {
			t.Fatalf("Create() = %v, want success", res)
		}
	})

	t.Run("locked thread", func(t *testing.T) {
		t.Parallel()
		p, _ := newPipeline()
		post := newPost(t, 4)
		thread := newThread(t, 3)
		thread.EXPECT().IsLocked().Return(true).Once()

		res := NewPostBuilder(p).Create(context.Background(), post, newMember(t, 9, false), thread, forum.PostData{Content: "late"})

		if res.Code() != CodeThreadLocked {
			t.Errorf("Code() = %q, want %q", res.Code(), CodeThreadLocked)
		}
		post.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
