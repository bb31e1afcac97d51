// Package services contains stateless domain services for the item bounded context.
// Validation here is pure and total: inputs are never mutated, and every
// violated field is reported, not just the first.
package services

import (
	"strings"
	"unicode/utf8"

	domain "github.com/ghuser/itemsvc/services/item/domain"
	"github.com/ghuser/itemsvc/services/item/domain/models"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

// CreateItemInput is the raw create payload as decoded from the request body.
// Pointer fields distinguish absent fields from zero values.
type CreateItemInput struct {
	Name        *string
	Description *string
	Price       *float64
}

// UpdateItemInput is the raw partial update payload. Only non-nil fields
// are considered present.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Price       *float64
}

// ValidateCreate checks the create payload and returns the canonical params
// with name and description trimmed. All violations are accumulated into a
// single ValidationError.
func ValidateCreate(in CreateItemInput) (models.NewItemParams, error) {
	ve := &domain.ValidationError{}
	var params models.NewItemParams

	if in.Name == nil {
		ve.Add("name", "Item name is required")
	} else if name, ok := checkName(ve, *in.Name); ok {
		params.Name = name
	}

	if in.Description == nil {
		ve.Add("description", "Item description is required")
	} else if desc, ok := checkDescription(ve, *in.Description); ok {
		params.Description = desc
	}

	if in.Price == nil {
		ve.Add("price", "Item price is required")
	} else if ok := checkPrice(ve, *in.Price); ok {
		params.Price = *in.Price
	}

	if err := ve.OrNil(); err != nil {
		return models.NewItemParams{}, err
	}
	return params, nil
}

// ValidateUpdate checks the partial payload and returns a patch containing
// only the fields actually present, trimmed. Fails with ErrEmptyUpdate when
// zero fields remain after validation.
func ValidateUpdate(in UpdateItemInput) (models.ItemPatch, error) {
	ve := &domain.ValidationError{}
	var patch models.ItemPatch

	if in.Name != nil {
		if name, ok := checkName(ve, *in.Name); ok {
			patch.Name = &name
		}
	}
	if in.Description != nil {
		if desc, ok := checkDescription(ve, *in.Description); ok {
			patch.Description = &desc
		}
	}
	if in.Price != nil {
		if ok := checkPrice(ve, *in.Price); ok {
			price := *in.Price
			patch.Price = &price
		}
	}

	if err := ve.OrNil(); err != nil {
		return models.ItemPatch{}, err
	}
	if patch.IsEmpty() {
		return models.ItemPatch{}, domain.ErrEmptyUpdate
	}
	return patch, nil
}

// checkName trims and length-checks a name, recording violations on ve.
// Lengths count characters, not bytes, so multibyte names are not penalized.
func checkName(ve *domain.ValidationError, raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	switch {
	case name == "":
		ve.Add("name", "Item name cannot be empty")
		return "", false
	case utf8.RuneCountInString(name) > maxNameLength:
		ve.Add("name", "Item name cannot exceed 100 characters")
		return "", false
	}
	return name, true
}

func checkDescription(ve *domain.ValidationError, raw string) (string, bool) {
	desc := strings.TrimSpace(raw)
	switch {
	case desc == "":
		ve.Add("description", "Item description cannot be empty")
		return "", false
	case utf8.RuneCountInString(desc) > maxDescriptionLength:
		ve.Add("description", "Item description cannot exceed 500 characters")
		return "", false
	}
	return desc, true
}

func checkPrice(ve *domain.ValidationError, price float64) bool {
	switch {
	case price < 0:
		// A negative price breaks both rules; report both.
		ve.Add("price", "Price cannot be negative")
		ve.Add("price", "Price must be greater than 0")
		return false
	case price == 0:
		ve.Add("price", "Price must be greater than 0")
		return false
	}
	return true
}
