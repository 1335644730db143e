package dto_test

import (
	"testing"

	"github.com/jsamuelsen11/forumcore/internal/adapters/http/dto"
)

func TestNewLanguagesResponse(t *testing.T) {
	t.Parallel()

	got := dto.NewLanguagesResponse([]string{"en", "pl"})
	if got.Default != "en" || len(got.Languages) != 2 {
		t.Errorf("NewLanguagesResponse() = %+v, want default en of 2", got)
	}

	empty := dto.NewLanguagesResponse(nil)
	if empty.Languages == nil || empty.Default != "" {
		t.Errorf("NewLanguagesResponse(nil) = %+v, want empty non-nil list", empty)
	}
}

func TestNewCatalogResponse(t *testing.T) {
	t.Parallel()

	got := dto.NewCatalogResponse("pl", map[string]string{"thread.locked": "Ten wątek jest zablokowany."})
	if got.Language != "pl" || got.Count != 1 {
		t.Errorf("NewCatalogResponse() = %+v, want pl with 1 message", got)
	}

	if empty := dto.NewCatalogResponse("en", nil); empty.Messages == nil || empty.Count != 0 {
		t.Errorf("NewCatalogResponse(nil) = %+v, want empty non-nil map", empty)
	}
}
