package action

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
)

func TestCheck_ShortCircuits(t *testing.T) {
	t.Parallel()

	var evaluated []string
	guard := func(name string, err error) Guard {
		return func(context.Context) error {
			evaluated = append(evaluated, name)
			return err
		}
	}

	err := Check(context.Background(),
		guard("first", nil),
		guard("second", Reject("post.already.liked")),
		guard("third", Reject("never")),
	)

	var berr *BusinessError
	if !errors.As(err, &berr) {
		t.Fatalf("Check() = %v, want *BusinessError", err)
	}
	if berr.Fields[KeyAPI] != "post.already.liked" {
		t.Errorf("code = %v, want post.already.liked", berr.Fields[KeyAPI])
	}
	if len(evaluated) != 2 {
		t.Errorf("evaluated = %v, want [first second]", evaluated)
	}
}

func TestDeny(t *testing.T) {
	t.Parallel()

	if err := Deny(false, "x")(context.Background()); err != nil {
		t.Errorf("Deny(false) = %v, want nil", err)
	}
	if err := Deny(true, "x")(context.Background()); err == nil {
		t.Error("Deny(true) = nil, want rejection")
	}
}

type archivableOnly struct{ forum.Archivable }

func TestRequire(t *testing.T) {
	t.Parallel()

	t.Run("nil interface", func(t *testing.T) {
		t.Parallel()

		var member forum.Member
		_, err := Require[forum.Member]("member", member)

		var mismatch *TypeMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("Require() = %v, want *TypeMismatchError", err)
		}
		if mismatch.Param != "member" || mismatch.Got != "<nil>" {
			t.Errorf("mismatch = %+v", mismatch)
		}
	})

	t.Run("typed nil pointer", func(t *testing.T) {
		t.Parallel()

		var p *archivableOnly
		if _, err := Require[forum.Archivable]("thread", p); err == nil {
			t.Error("Require(typed nil) = nil, want mismatch")
		}
	})

	t.Run("missing capability", func(t *testing.T) {
		t.Parallel()

		_, err := Require[forum.Removable]("forum", archivableOnly{})
		if err == nil {
			t.Fatal("Require() = nil, want mismatch")
		}
		if got := err.Error(); got != "forum must implement forum.Removable, got action.archivableOnly" {
			t.Errorf("Error() = %q", got)
		}
	})

	t.Run("present capability", func(t *testing.T) {
		t.Parallel()

		v, err := Require[forum.Archivable]("thread", archivableOnly{})
		if err != nil {
			t.Fatalf("Require() = %v, want nil", err)
		}
		if v == nil {
			t.Error("Require() returned nil value")
		}
	})
}
