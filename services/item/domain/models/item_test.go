package models

import (
	"testing"
	"time"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestItemPatch_IsEmpty(t *testing.T) {
	if !(ItemPatch{}).IsEmpty() {
		t.Fatal("zero patch must be empty")
	}
	if (ItemPatch{Price: f64Ptr(1)}).IsEmpty() {
		t.Fatal("patch with price must not be empty")
	}
}

func TestItemPatch_Apply(t *testing.T) {
	base := Item{
		ID:          "507f1f77bcf86cd799439011",
		Name:        "Laptop",
		Description: "16GB RAM",
		Price:       999.99,
		CreatedAt:   time.Now().UTC(),
	}

	t.Run("partial patch leaves other fields alone", func(t *testing.T) {
		got := ItemPatch{Price: f64Ptr(1099.99)}.Apply(base)
		if got.Price != 1099.99 {
			t.Fatalf("expected price 1099.99, got %v", got.Price)
		}
		if got.Name != "Laptop" || got.Description != "16GB RAM" {
			t.Fatal("unpatched fields must be unchanged")
		}
	})

	t.Run("full patch replaces all fields", func(t *testing.T) {
		got := ItemPatch{
			Name:        strPtr("Desktop"),
			Description: strPtr("32GB RAM"),
			Price:       f64Ptr(1499),
		}.Apply(base)
		if got.Name != "Desktop" || got.Description != "32GB RAM" || got.Price != 1499 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("does not mutate the original", func(t *testing.T) {
		_ = ItemPatch{Name: strPtr("Other")}.Apply(base)
		if base.Name != "Laptop" {
			t.Fatal("Apply must operate on a copy")
		}
	})
}
