package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/itemsvc/pkg/httpx"
)

func TestJSON_setsHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if xct := w.Header().Get("X-Content-Type-Options"); xct != "nosniff" {
		t.Errorf("expected nosniff, got %q", xct)
	}
}

func TestOK_envelopeShape(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.OK(w, http.StatusCreated, "Item created successfully", map[string]string{"id": "abc"})

	var body struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !body.Success {
		t.Error("expected success=true")
	}
	if body.Message != "Item created successfully" {
		t.Errorf("unexpected message: %q", body.Message)
	}
	if body.Data["id"] != "abc" {
		t.Errorf("unexpected data: %v", body.Data)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestOK_nilDataSerializesAsNull(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.OK(w, http.StatusOK, "Item deleted successfully", nil)

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if data, present := body["data"]; !present || data != nil {
		t.Errorf("expected data to be present and null, got %v", body)
	}
}

func TestFail_envelopeShape(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.Fail(w, http.StatusBadRequest, "Invalid item ID format")

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["success"] != false {
		t.Error("expected success=false")
	}
	if body["message"] != "Invalid item ID format" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if body["data"] != nil {
		t.Errorf("expected data=null, got %v", body["data"])
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestNotFoundHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/nope", nil)
	httpx.NotFoundHandler()(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["message"] != "Route not found" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}
