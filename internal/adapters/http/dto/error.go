package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/forumcore/internal/domain"
)

// ErrorResponse is an RFC 9457 Problem Details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected request parameter.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// problemStatus maps domain sentinels to HTTP statuses, first match wins.
var problemStatus = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusServiceUnavailable},
}

// NewErrorResponse describes err as a problem for request r. Errors that map
// to no domain sentinel become a 500 whose detail is withheld; the caller is
// expected to have logged them.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	resp := ErrorResponse{
		Type:     "about:blank",
		Status:   http.StatusInternalServerError,
		Instance: r.URL.Path,
	}
	for _, m := range problemStatus {
		if errors.Is(err, m.target) {
			resp.Status = m.status
			resp.Detail = err.Error()
			break
		}
	}
	resp.Title = http.StatusText(resp.Status)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for field, msg := range verr.Fields {
			resp.Errors = append(resp.Errors, ErrorDetail{Location: "path." + field, Message: msg})
		}
		slices.SortFunc(resp.Errors, func(a, b ErrorDetail) int {
			return strings.Compare(a.Location, b.Location)
		})
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "encoding problem response", slog.Any("error", encErr))
	}
}
