package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/forumcore/internal/adapters/http"
	"github.com/jsamuelsen11/forumcore/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/forumcore/internal/platform/i18n"
	"github.com/jsamuelsen11/forumcore/mocks"
)

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, *mocks.MockHealthRegistry) {
	t.Helper()
	tr, err := i18n.New("en")
	if err != nil {
		t.Fatalf("i18n.New() error = %v", err)
	}
	registry := mocks.NewMockHealthRegistry(t)
	router := adapthttp.NewRouter(handlers.NewCatalogHandler(tr), handlers.NewHealthHandler(registry), middlewares...)
	return router, registry
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, key := range []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /api/v1/i18n/",
		"GET /api/v1/i18n/{lang}",
		"GET /api/v1/i18n/{lang}/{code}",
	} {
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	router, registry := newTestRouter(t, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	})
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_Requests(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	const problem = "application/problem+json"

	tests := []struct {
		method      string
		path        string
		wantStatus  int
		wantProblem bool
	}{
		{method: http.MethodGet, path: "/api/v1/i18n/", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/api/v1/i18n/pl", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/api/v1/i18n/pl/thread.locked", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/api/v1/i18n/pl/no.such.code", wantStatus: http.StatusNotFound, wantProblem: true},
		{method: http.MethodGet, path: "/api/v1/threads", wantStatus: http.StatusNotFound, wantProblem: true},
		{method: http.MethodPost, path: "/api/v1/i18n/en", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if isProblem := rec.Header().Get("Content-Type") == problem; isProblem != tt.wantProblem {
				t.Errorf("Content-Type = %q, want problem body %v", rec.Header().Get("Content-Type"), tt.wantProblem)
			}
		})
	}
}
