package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	itemdomain "github.com/ghuser/itemsvc/services/item/domain"
	"github.com/ghuser/itemsvc/services/item/domain/models"
	"github.com/ghuser/itemsvc/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/itemsvc/services/item/domain/services"
)

// ItemService orchestrates validation and store calls into the business
// operations. Validation and id-format failures never reach the repository;
// existence and uniqueness checks cost one store round-trip each.
type ItemService struct {
	repo repositories.ItemRepository
}

// NewItemService returns an ItemService wired with the given repository.
func NewItemService(repo repositories.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// Create validates the payload, pre-checks name uniqueness, and inserts.
// The pre-check is best-effort response shaping: the unique index enforces
// the invariant, and the repository translates a lost race to the same
// ErrItemNameExists.
func (s *ItemService) Create(ctx context.Context, in domainsvcs.CreateItemInput) (*models.Item, error) {
	params, err := domainsvcs.ValidateCreate(in)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByName(ctx, params.Name); err == nil {
		return nil, itemdomain.ErrItemNameExists
	} else if !errors.Is(err, itemdomain.ErrItemNotFound) {
		return nil, fmt.Errorf("check item name: %w", err)
	}

	item, err := s.repo.Insert(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	return item, nil
}

// List returns all items, or the case-insensitive substring matches when
// search is non-empty after trimming. Ordered most recently created first.
func (s *ItemService) List(ctx context.Context, search string) ([]*models.Item, error) {
	term := strings.TrimSpace(search)

	var (
		items []*models.Item
		err   error
	)
	if term == "" {
		items, err = s.repo.ListAll(ctx)
	} else {
		items, err = s.repo.SearchByName(ctx, term)
	}
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Get validates the id format and fetches the item.
func (s *ItemService) Get(ctx context.Context, rawID string) (*models.Item, error) {
	id, err := models.ParseItemID(rawID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, itemdomain.ErrItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// Update validates id and payload, checks existence, re-checks name
// uniqueness only when the name actually changes, then persists the patch.
func (s *ItemService) Update(ctx context.Context, rawID string, in domainsvcs.UpdateItemInput) (*models.Item, error) {
	id, err := models.ParseItemID(rawID)
	if err != nil {
		return nil, err
	}

	patch, err := domainsvcs.ValidateUpdate(in)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, itemdomain.ErrItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get item: %w", err)
	}

	if patch.Name != nil && *patch.Name != existing.Name {
		if _, err := s.repo.FindByName(ctx, *patch.Name); err == nil {
			return nil, itemdomain.ErrItemNameExists
		} else if !errors.Is(err, itemdomain.ErrItemNotFound) {
			return nil, fmt.Errorf("check item name: %w", err)
		}
	}

	item, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// Delete validates the id format and removes the item.
// Returns ErrItemNotFound when no record matched.
func (s *ItemService) Delete(ctx context.Context, rawID string) error {
	id, err := models.ParseItemID(rawID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, itemdomain.ErrItemNotFound) {
			return err
		}
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
