package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/miteshsathvara1994/eavquent/pkg/types"
)

// CreateItem persists a new item with the given name.
func (b *Backend) CreateItem(name string) (*types.Item, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, types.ErrInvalidName
	}

	item := &types.Item{
		ItemID:    newUUID(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	_, err := b.db.Exec(
		"INSERT INTO items (item_id, name, created_at) VALUES (?, ?, ?)",
		item.ItemID, item.Name, item.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("persisting item: %w", err)
	}
	return item, nil
}

// GetItem retrieves an item by ID.
// Returns ErrInvalidID if id is empty and ErrNotFound if no item exists.
func (b *Backend) GetItem(id string) (*types.Item, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := b.db.QueryRow("SELECT item_id, name, created_at FROM items WHERE item_id = ?", id)
	item, err := hydrateItem(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting item %s: %w", id, err)
	}
	return item, nil
}

// ListItems returns all items in creation order.
func (b *Backend) ListItems() ([]*types.Item, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}

	rows, err := b.db.Query("SELECT item_id, name, created_at FROM items ORDER BY created_at ASC, item_id ASC")
	if err != nil {
		return nil, fmt.Errorf("fetching items: %w", err)
	}
	defer rows.Close()

	items := []*types.Item{}
	for rows.Next() {
		item, err := hydrateItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// DeleteItem removes an item and every property value it owns, in one
// transaction. Returns ErrNotFound if no item exists with that ID.
func (b *Backend) DeleteItem(id string) error {
	if err := b.ready(); err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM property_values WHERE entity_type = ? AND entity_id = ?",
		types.ItemEntityType, id,
	); err != nil {
		return fmt.Errorf("deleting item values: %w", err)
	}
	res, err := tx.Exec("DELETE FROM items WHERE item_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("counting deleted items: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing item deletion: %w", err)
	}
	return nil
}

// hydrateItem converts one row into a *types.Item using the given scan
// function, so it works for both sql.Row and sql.Rows.
func hydrateItem(scan func(dest ...any) error) (*types.Item, error) {
	var item types.Item
	var createdAt string
	if err := scan(&item.ItemID, &item.Name, &createdAt); err != nil {
		return nil, err
	}
	var err error
	item.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &item, nil
}
