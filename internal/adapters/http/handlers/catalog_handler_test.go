package handlers_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/forumcore/internal/adapters/http/dto"
	"github.com/jsamuelsen11/forumcore/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/forumcore/mocks"
)

func TestCatalogHandler_Languages(t *testing.T) {
	t.Parallel()

	tr := mocks.NewMockTranslator(t)
	tr.EXPECT().Languages().Return([]string{"en", "pl"})

	rec := serve(handlers.NewCatalogHandler(tr).Languages, "/api/v1/i18n")

	resp := decode[dto.LanguagesResponse](t, rec, http.StatusOK)
	if resp.Default != "en" || len(resp.Languages) != 2 {
		t.Errorf("resp = %+v, want default en of 2", resp)
	}
}

func TestCatalogHandler_Catalog(t *testing.T) {
	t.Parallel()

	t.Run("normalizes the tag", func(t *testing.T) {
		t.Parallel()

		tr := mocks.NewMockTranslator(t)
		tr.EXPECT().Messages("pl-PL").Return(map[string]string{"thread.locked": "Ten wątek jest zablokowany."})

		rec := serve(handlers.NewCatalogHandler(tr).Catalog, "/api/v1/i18n/pl-pl", "lang", "pl-pl")

		resp := decode[dto.CatalogResponse](t, rec, http.StatusOK)
		if resp.Language != "pl-PL" || resp.Count != 1 {
			t.Errorf("resp = %+v, want pl-PL with 1 message", resp)
		}
	})

	t.Run("invalid tag", func(t *testing.T) {
		t.Parallel()

		rec := serve(handlers.NewCatalogHandler(mocks.NewMockTranslator(t)).Catalog,
			"/api/v1/i18n/12345678901", "lang", "12345678901")

		resp := decode[dto.ErrorResponse](t, rec, http.StatusBadRequest)
		if len(resp.Errors) != 1 || resp.Errors[0].Location != "path.lang" {
			t.Errorf("Errors = %+v, want path.lang", resp.Errors)
		}
	})
}

func TestCatalogHandler_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		code       string
		text       string
		wantStatus int
	}{
		{name: "known code", code: "member.banned", text: "Ten użytkownik jest zbanowany.", wantStatus: http.StatusOK},
		{name: "unknown code", code: "no.such.code", text: "no.such.code", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := mocks.NewMockTranslator(t)
			tr.EXPECT().Translate("pl", tt.code).Return(tt.text)

			rec := serve(handlers.NewCatalogHandler(tr).Message, "/api/v1/i18n/pl/"+tt.code,
				"lang", "pl", "code", tt.code)

			if tt.wantStatus != http.StatusOK {
				problem := decode[dto.ErrorResponse](t, rec, tt.wantStatus)
				if problem.Instance != "/api/v1/i18n/pl/"+tt.code {
					t.Errorf("instance = %q, want the request path", problem.Instance)
				}
				return
			}
			resp := decode[dto.MessageResponse](t, rec, tt.wantStatus)
			if resp.Text != tt.text || resp.Code != tt.code {
				t.Errorf("resp = %+v, want %q", resp, tt.text)
			}
		})
	}
}
