package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/itemsvc/pkg/database"
	"github.com/ghuser/itemsvc/pkg/events"
	itemdomain "github.com/ghuser/itemsvc/services/item/domain"
	domainevents "github.com/ghuser/itemsvc/services/item/domain/events"
	"github.com/ghuser/itemsvc/services/item/domain/models"
)

const pgUniqueViolation = "23505"

const itemColumns = "id, name, description, price, created_at, updated_at"

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// The unique index on items.name is the authoritative uniqueness enforcement
// point; 23505 violations are re-classified as ErrItemNameExists so a lost
// check-then-insert race surfaces as a conflict, not a raw driver error.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. The bus publishes lifecycle events transactionally with
// each mutation; pass nil to disable publishing.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Insert persists a new item. The repository assigns the 24-hex identifier and
// the database assigns both timestamps, returned via RETURNING.
func (r *ItemRepository) Insert(ctx context.Context, params models.NewItemParams) (*models.Item, error) {
	item := &models.Item{
		ID:          models.NewItemID(),
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
	}

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			INSERT INTO items (id, name, description, price)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at, updated_at
		`, item.ID.String(), item.Name, item.Description, item.Price)
		if err := row.Scan(&item.CreatedAt, &item.UpdatedAt); err != nil {
			if isUniqueViolation(err) {
				return itemdomain.ErrItemNameExists
			}
			return fmt.Errorf("insert item: %w", err)
		}

		return r.publish(ctx, tx, domainevents.TopicItemCreated, domainevents.ItemCreatedEvent{
			EventID:    uuid.New(),
			Version:    1,
			ItemID:     item.ID,
			Name:       item.Name,
			Price:      item.Price,
			OccurredAt: item.CreatedAt,
		})
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// FindByID retrieves an item by identifier. Returns ErrItemNotFound if absent.
func (r *ItemRepository) FindByID(ctx context.Context, id models.ItemID) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id.String())
	return scanItem(row, "query item by id")
}

// FindByName retrieves an item by exact name. Returns ErrItemNotFound if absent.
func (r *ItemRepository) FindByName(ctx context.Context, name string) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE name = $1`, name)
	return scanItem(row, "query item by name")
}

// UpdateByID applies a partial update and refreshes updated_at. Nil patch
// fields are left untouched via COALESCE. Returns the updated record.
func (r *ItemRepository) UpdateByID(ctx context.Context, id models.ItemID, patch models.ItemPatch) (*models.Item, error) {
	var item *models.Item
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			UPDATE items
			SET name        = COALESCE($2, name),
			    description = COALESCE($3, description),
			    price       = COALESCE($4, price),
			    updated_at  = now()
			WHERE id = $1
			RETURNING `+itemColumns+`
		`, id.String(), patch.Name, patch.Description, patch.Price)

		updated, err := scanItem(row, "update item")
		if err != nil {
			if isUniqueViolation(err) {
				return itemdomain.ErrItemNameExists
			}
			return err
		}
		item = updated

		return r.publish(ctx, tx, domainevents.TopicItemUpdated, domainevents.ItemUpdatedEvent{
			EventID:    uuid.New(),
			Version:    1,
			ItemID:     item.ID,
			Name:       item.Name,
			Price:      item.Price,
			OccurredAt: item.UpdatedAt,
		})
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteByID removes an item. Returns ErrItemNotFound when no row matched.
func (r *ItemRepository) DeleteByID(ctx context.Context, id models.ItemID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id.String())
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete item rows affected: %w", err)
		}
		if affected == 0 {
			return itemdomain.ErrItemNotFound
		}

		return r.publish(ctx, tx, domainevents.TopicItemDeleted, domainevents.ItemDeletedEvent{
			EventID:    uuid.New(),
			Version:    1,
			ItemID:     id,
			OccurredAt: time.Now().UTC(),
		})
	})
}

// ListAll returns every item, most recently created first.
func (r *ItemRepository) ListAll(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return collectItems(rows)
}

// SearchByName returns items whose name contains term, case-insensitive,
// most recently created first. ILIKE metacharacters in term are escaped so
// they match literally.
func (r *ItemRepository) SearchByName(ctx context.Context, term string) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE name ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY created_at DESC
	`, escapeLike(term))
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return collectItems(rows)
}

func (r *ItemRepository) publish(ctx context.Context, tx *sql.Tx, topic string, event any) error {
	if r.bus == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_version", "1")
	events.InjectTraceContext(ctx, msg)
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	if err := p.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner, op string) (*models.Item, error) {
	var item models.Item
	var id string
	err := row.Scan(&id, &item.Name, &item.Description, &item.Price, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	item.ID = models.ItemID(id)
	return &item, nil
}

func collectItems(rows *sql.Rows) ([]*models.Item, error) {
	defer rows.Close() //nolint:errcheck

	items := make([]*models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows, "scan item")
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// escapeLike escapes %, _ and \ so user-supplied search terms match literally.
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
