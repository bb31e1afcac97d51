package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/itemsvc/services/item/domain/models"
)

// Watermill topics for the item lifecycle. The worker process subscribes to
// all three to maintain the audit log.
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// ItemCreatedEvent is published transactionally with the insert.
type ItemCreatedEvent struct {
	EventID    uuid.UUID     `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int           `json:"version"`  // Schema version; increment on breaking changes
	ItemID     models.ItemID `json:"item_id"`
	Name       string        `json:"name"`
	Price      float64       `json:"price"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// ItemUpdatedEvent is published transactionally with the update.
// Fields carry the post-update state.
type ItemUpdatedEvent struct {
	EventID    uuid.UUID     `json:"event_id"`
	Version    int           `json:"version"`
	ItemID     models.ItemID `json:"item_id"`
	Name       string        `json:"name"`
	Price      float64       `json:"price"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// ItemDeletedEvent is published transactionally with the delete.
type ItemDeletedEvent struct {
	EventID    uuid.UUID     `json:"event_id"`
	Version    int           `json:"version"`
	ItemID     models.ItemID `json:"item_id"`
	OccurredAt time.Time     `json:"occurred_at"`
}
