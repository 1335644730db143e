package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/forumcore/internal/adapters/http/dto"
	"github.com/jsamuelsen11/forumcore/internal/domain"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

// CatalogHandler serves the failure code catalog so clients can render the
// "api" codes of failed actions.
type CatalogHandler struct {
	translator ports.Translator
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(translator ports.Translator) *CatalogHandler {
	return &CatalogHandler{translator: translator}
}

// Languages handles GET /api/v1/i18n.
func (h *CatalogHandler) Languages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewLanguagesResponse(h.translator.Languages()))
}

// Catalog handles GET /api/v1/i18n/{lang}. Unsupported languages get the
// default language's texts.
func (h *CatalogHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	lang, err := parseLang(r, "lang")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCatalogResponse(lang, h.translator.Messages(lang)))
}

// Message handles GET /api/v1/i18n/{lang}/{code}.
func (h *CatalogHandler) Message(w http.ResponseWriter, r *http.Request) {
	lang, err := parseLang(r, "lang")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	code := chi.URLParam(r, "code")
	text := h.translator.Translate(lang, code)
	if text == code {
		dto.WriteErrorResponse(w, r, fmt.Errorf("failure code %q: %w", code, domain.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Code: code, Language: lang, Text: text})
}
