package forum

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/forumcore/internal/domain"
)

func TestCategoryData_NormalizeAndValidate(t *testing.T) {
	t.Parallel()

	t.Run("trims and composes", func(t *testing.T) {
		t.Parallel()

		// "e" followed by a combining acute accent.
		d := CategoryData{Name: "  Cafe\u0301  "}.Normalize()
		if d.Name != "Caf\u00e9" {
			t.Errorf("Name = %q, want %q", d.Name, "Caf\u00e9")
		}
		if err := d.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		t.Parallel()

		err := CategoryData{Name: "   "}.Normalize().Validate()
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Validate() = %v, want *domain.ValidationError", err)
		}
		if verr.Fields["name"] != domain.MsgRequired {
			t.Errorf("Fields[name] = %q, want %q", verr.Fields["name"], domain.MsgRequired)
		}
	})

	t.Run("name too long", func(t *testing.T) {
		t.Parallel()

		err := CategoryData{Name: strings.Repeat("x", MaxNameLength+1)}.Validate()
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Validate() = %v, want ErrValidation", err)
		}
	})
}

func TestMessageData_Validate(t *testing.T) {
	t.Parallel()

	err := MessageData{}.Validate()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *domain.ValidationError", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("len(Fields) = %d, want 2 (subject, content)", len(verr.Fields))
	}

	if err := (MessageData{Subject: "Hi", Content: "there"}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestPostData_Validate(t *testing.T) {
	t.Parallel()

	if err := (PostData{Content: " \n "}).Normalize().Validate(); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Validate(blank) = %v, want ErrValidation", err)
	}
	if err := (PostData{Content: "hello"}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
