package errhttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	itemdomain "github.com/ghuser/itemsvc/services/item/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ValidationError", (&itemdomain.ValidationError{}).Add("price", "Price must be greater than 0"), http.StatusBadRequest},
		{"ErrEmptyUpdate", itemdomain.ErrEmptyUpdate, http.StatusBadRequest},
		{"ErrMalformedItemID", itemdomain.ErrMalformedItemID, http.StatusBadRequest},
		{"ErrItemNotFound", itemdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrItemNameExists", itemdomain.ErrItemNameExists, http.StatusConflict},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", itemdomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrItemNameExists", fmt.Errorf("save item: %w", itemdomain.ErrItemNameExists), http.StatusConflict},
		{"wrapped ValidationError", fmt.Errorf("validate: %w", (&itemdomain.ValidationError{}).Add("name", "Item name is required")), http.StatusBadRequest},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"store failure", fmt.Errorf("query item: %w", errors.New("connection reset")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(context.Background(), w, nil, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_Messages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"not found", itemdomain.ErrItemNotFound, "Item not found"},
		{"conflict", itemdomain.ErrItemNameExists, "Item name already exists."},
		{"malformed id", itemdomain.ErrMalformedItemID, "Invalid item ID format"},
		{"empty update", itemdomain.ErrEmptyUpdate, "At least one field (name, description, or price) must be provided for update"},
		{
			"validation lists every violation",
			(&itemdomain.ValidationError{}).
				Add("name", "Item name is required").
				Add("price", "Price must be greater than 0"),
			"Validation Error: name: Item name is required, price: Price must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(context.Background(), w, nil, tt.err)

			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid JSON: %v", err)
			}
			if body["message"] != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, body["message"])
			}
			if body["success"] != false {
				t.Error("expected success=false")
			}
			if body["data"] != nil {
				t.Errorf("expected data=null, got %v", body["data"])
			}
		})
	}
}

func TestWriteError_InternalDetailNotLeaked(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(context.Background(), w, nil, errors.New("pq: password authentication failed"))

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["message"] != "Internal Server Error" {
		t.Errorf("internal detail leaked to client: %q", body["message"])
	}
}
