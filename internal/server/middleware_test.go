package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRequestIDMiddleware(t *testing.T) {
	s := newTestServer()

	var ctxID string
	handler := s.RequestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		ctxID = getRequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	headerID := rr.Header().Get("X-Request-ID")
	if headerID == "" {
		t.Fatal("X-Request-ID header not set")
	}
	if _, err := uuid.Parse(headerID); err != nil {
		t.Errorf("X-Request-ID %q is not a valid UUID: %v", headerID, err)
	}
	if ctxID != headerID {
		t.Errorf("context request ID %q does not match header %q", ctxID, headerID)
	}
}

func TestRequestIDIsUniquePerRequest(t *testing.T) {
	s := newTestServer()
	handler := s.Handler()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		id := rr.Header().Get("X-Request-ID")
		if seen[id] {
			t.Fatalf("duplicate request ID %q", id)
		}
		seen[id] = true
	}
}

func TestJSONBodyMiddlewareParsesBody(t *testing.T) {
	s := newTestServer()

	var got interface{}
	handler := s.JSONBodyMiddleware(func(w http.ResponseWriter, r *http.Request) {
		got = getJSONBodyFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"world","count":2}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	parsed, ok := got.(map[string]interface{})
	if !ok {
		t.Fatalf("parsed body = %T, want map", got)
	}
	if parsed["name"] != "world" {
		t.Errorf("parsed[name] = %v, want %q", parsed["name"], "world")
	}
}

func TestJSONBodyMiddlewareSkipsNonJSON(t *testing.T) {
	s := newTestServer()

	var got interface{} = "sentinel"
	handler := s.JSONBodyMiddleware(func(w http.ResponseWriter, r *http.Request) {
		got = getJSONBodyFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain text"))
	req.Header.Set("Content-Type", "text/plain")
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got != nil {
		t.Errorf("context body = %v, want nil for non-JSON request", got)
	}
}

func TestJSONBodyMiddlewareRejectsMalformedJSON(t *testing.T) {
	s := newTestServer()

	called := false
	handler := s.JSONBodyMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	tests := []string{
		`{"unterminated":`,
		`{broken}`,
		`[1,2,`,
		`not json`,
	}

	for _, body := range tests {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		handler(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want %d", body, rr.Code, http.StatusBadRequest)
		}
	}

	if called {
		t.Error("handler should not run for malformed JSON")
	}
}

func TestJSONBodyMiddlewareAcceptsCharsetParameter(t *testing.T) {
	s := newTestServer()

	handler := s.JSONBodyMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestLoggingMiddlewareRecordsStatus(t *testing.T) {
	s := newTestServer()

	handler := s.LoggingMiddleware(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
