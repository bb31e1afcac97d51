package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/ghuser/itemsvc/pkg/httpx"
)

type stubChecker struct{ err error }

func (s stubChecker) Ping(ctx context.Context) error { return s.err }

func TestHealthHandler_allHealthy(t *testing.T) {
	h := httpx.HealthHandler(httpx.HealthChecks{
		Database: stubChecker{},
		EventBus: stubChecker{},
	}, time.Now().Add(-42*time.Second))

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["dbStatus"] != "Connected" {
		t.Errorf("unexpected dbStatus: %q", body["dbStatus"])
	}
	if ok, _ := regexp.MatchString(`^\d+s$`, body["uptime"]); !ok {
		t.Errorf("unexpected uptime format: %q", body["uptime"])
	}
}

func TestHealthHandler_storeUnreachable(t *testing.T) {
	h := httpx.HealthHandler(httpx.HealthChecks{
		Database: stubChecker{err: errors.New("connection refused")},
	}, time.Now())

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["dbStatus"] != "Disconnected" {
		t.Errorf("unexpected dbStatus: %q", body["dbStatus"])
	}
}

func TestHealthHandler_busDownOnlyDegrades(t *testing.T) {
	h := httpx.HealthHandler(httpx.HealthChecks{
		Database: stubChecker{},
		EventBus: stubChecker{err: errors.New("bus down")},
	}, time.Now())

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusServiceUnavailable {
		var body map[string]string
		_ = json.NewDecoder(w.Body).Decode(&body)
		if body["dbStatus"] != "Connected" {
			t.Errorf("db must still report Connected, got %q", body["dbStatus"])
		}
		return
	}
	t.Fatal("bus failure must not return 503")
}
