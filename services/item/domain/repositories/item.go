package repositories

import (
	"context"

	"github.com/ghuser/itemsvc/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Absence is signalled with domain.ErrItemNotFound and duplicate names with
// domain.ErrItemNameExists, distinctly from other store failures.
type ItemRepository interface {
	// Insert persists a new item. The implementation assigns the ID and both
	// timestamps and returns the stored record.
	Insert(ctx context.Context, params models.NewItemParams) (*models.Item, error)

	// FindByID retrieves an item by its identifier.
	FindByID(ctx context.Context, id models.ItemID) (*models.Item, error)

	// FindByName retrieves an item by exact (case-sensitive) name.
	FindByName(ctx context.Context, name string) (*models.Item, error)

	// UpdateByID applies a partial update, refreshes updated_at, and returns
	// the updated record.
	UpdateByID(ctx context.Context, id models.ItemID, patch models.ItemPatch) (*models.Item, error)

	// DeleteByID removes an item. Returns ErrItemNotFound when no row matched.
	DeleteByID(ctx context.Context, id models.ItemID) error

	// ListAll returns every item, most recently created first.
	ListAll(ctx context.Context) ([]*models.Item, error)

	// SearchByName returns items whose name contains term, case-insensitive,
	// most recently created first.
	SearchByName(ctx context.Context, term string) ([]*models.Item, error)
}
