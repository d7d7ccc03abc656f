package server

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"helloserver/internal/logging"
	"helloserver/internal/telemetry"
)

// maxBodyBytes caps how much of a request body the JSON middleware will read
const maxBodyBytes = 1 << 20 // 1 MiB

// statusRecorder captures the response status code for logging and tracing
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// RequestIDMiddleware assigns a UUID to every request, exposes it as the
// X-Request-ID response header, and stores it on the request context
func (s *Server) RequestIDMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		next(w, r.WithContext(setRequestIDContext(r.Context(), id)))
	}
}

// LoggingMiddleware writes one access-log line per request
func (s *Server) LoggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		logging.Info("%s %s %d %s request_id=%s",
			r.Method, r.URL.Path, rec.status, time.Since(start), getRequestIDFromContext(r.Context()))
	}
}

// TraceMiddleware opens one span per request when telemetry is enabled
func (s *Server) TraceMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := telemetry.StartSpan(r.Context(), r.Method+" "+r.URL.Path)
		defer span.End()

		span.SetAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.target", r.URL.Path),
			attribute.String("request.id", getRequestIDFromContext(r.Context())),
		)

		next(w, r.WithContext(ctx))
	}
}

// JSONBodyMiddleware decodes JSON-encoded request bodies before route
// handling. Requests without a JSON content type pass through untouched;
// a malformed JSON body terminates the request with a 400.
func (s *Server) JSONBodyMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 || !hasJSONContentType(r) {
			next(w, r)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close() //nolint:errcheck // Cleanup, error not critical

		var parsed interface{}
		if err := json.Unmarshal(body, &parsed); err != nil {
			logging.Debug("Rejecting malformed JSON body on %s %s: %v", r.Method, r.URL.Path, err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		next(w, r.WithContext(setJSONBodyContext(r.Context(), parsed)))
	}
}

// hasJSONContentType reports whether the request declares a JSON body
func hasJSONContentType(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
