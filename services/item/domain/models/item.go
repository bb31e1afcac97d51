package models

import "time"

// Item is the core aggregate for this bounded context.
// ID and both timestamps are assigned by the store layer on insert;
// UpdatedAt is refreshed by the store on every successful mutation.
type Item struct {
	ID          ItemID
	Name        string
	Description string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItemParams is the canonical create payload produced by validation:
// name and description already trimmed, price strictly positive.
type NewItemParams struct {
	Name        string
	Description string
	Price       float64
}

// ItemPatch is a partial update. Nil fields are left untouched.
type ItemPatch struct {
	Name        *string
	Description *string
	Price       *float64
}

// IsEmpty reports whether the patch carries no fields at all.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil
}

// Apply merges the patch into a copy of item and returns it.
func (p ItemPatch) Apply(item Item) Item {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	return item
}
