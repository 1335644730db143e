package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/jsamuelsen11/forumcore/internal/domain"
)

// parseLang extracts a BCP 47 language path parameter.
func parseLang(r *http.Request, param string) (string, error) {
	raw := chi.URLParam(r, param)
	tag, err := language.Parse(raw)
	if err != nil {
		return "", domain.NewValidationError(param, "must be a language tag")
	}
	return tag.String(), nil
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}
