package logger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"error", "ERROR"},
		{"bogus", "INFO"},
		{"", "INFO"},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in).String(); got != tt.want {
			t.Errorf("parseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNew_returnsUsableLogger(t *testing.T) {
	log := New("info")
	if log == nil {
		t.Fatal("New returned nil")
	}
	// Must not panic with or without context.
	log.Info("startup", "addr", ":3000")
	log.InfoContext(context.Background(), "request", "error", errors.New("x"))
	bound := log.With("component", "test")
	bound.Debug("suppressed at info level")
	if bound.ToSlog() == nil {
		t.Fatal("ToSlog returned nil")
	}
}

func TestRecovery_respondsWithEnvelope(t *testing.T) {
	h := Recovery(New("error"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("recovery response is not JSON: %v", err)
	}
	if body["success"] != false {
		t.Error("expected failure envelope")
	}
}

func TestMiddleware_passesThrough(t *testing.T) {
	called := false
	h := Middleware(New("error"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Fatal("next handler not called")
	}
	if w.Code != http.StatusTeapot {
		t.Fatalf("status not propagated, got %d", w.Code)
	}
}
