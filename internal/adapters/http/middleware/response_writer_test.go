package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(rec *recorder)
		wantStatus int
		wantBytes  int64
		wantHeader bool
	}{
		{
			name:       "untouched",
			write:      func(*recorder) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "explicit status",
			write:      func(rec *recorder) { rec.WriteHeader(http.StatusServiceUnavailable) },
			wantStatus: http.StatusServiceUnavailable,
			wantHeader: true,
		},
		{
			name: "first status wins",
			write: func(rec *recorder) {
				rec.WriteHeader(http.StatusNotFound)
				rec.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusNotFound,
			wantHeader: true,
		},
		{
			name: "body counts bytes",
			write: func(rec *recorder) {
				_, _ = rec.Write([]byte(`{"status":`))
				_, _ = rec.Write([]byte(`"ok"}`))
			},
			wantStatus: http.StatusOK,
			wantBytes:  15,
			wantHeader: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := record(httptest.NewRecorder())
			tt.write(rec)

			if rec.status != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.status, tt.wantStatus)
			}
			if rec.bytes != tt.wantBytes {
				t.Errorf("bytes = %d, want %d", rec.bytes, tt.wantBytes)
			}
			if rec.wroteHeader != tt.wantHeader {
				t.Errorf("wroteHeader = %v, want %v", rec.wroteHeader, tt.wantHeader)
			}
		})
	}
}

func TestRecord_ReusesRecorder(t *testing.T) {
	t.Parallel()

	outer := record(httptest.NewRecorder())
	if inner := record(outer); inner != outer {
		t.Error("record(recorder) wrapped the recorder again")
	}
}

func TestRecorder_Unwrap(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	if got := record(w).Unwrap(); got != w {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
