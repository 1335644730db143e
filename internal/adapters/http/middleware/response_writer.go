// Package middleware wraps the operations HTTP surface of forumd. Stack
// returns the order the daemon uses:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, router
package middleware

import "net/http"

// recorder captures the status and size of a response. Nested middleware
// share one recorder instead of wrapping the writer repeatedly.
type recorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	bytes       int64
}

// record returns w itself when it already is a recorder.
func record(w http.ResponseWriter) *recorder {
	if rec, ok := w.(*recorder); ok {
		return rec
	}
	return &recorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader keeps the first status only.
func (rec *recorder) WriteHeader(code int) {
	if rec.wroteHeader {
		return
	}
	rec.status = code
	rec.wroteHeader = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *recorder) Write(b []byte) (int, error) {
	rec.wroteHeader = true
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *recorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
