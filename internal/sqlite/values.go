package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/miteshsathvara1994/eavquent/pkg/types"
)

// ValuesFor returns every value row owned by the entity instance, in
// insertion order. Payloads are decoded from their JSON storage form.
func (b *Backend) ValuesFor(entityType, entityID string) ([]*types.Value, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}

	rows, err := b.db.Query(
		"SELECT value_id, property_id, entity_type, entity_id, value FROM property_values WHERE entity_type = ? AND entity_id = ? ORDER BY rowid ASC",
		entityType, entityID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching values: %w", err)
	}
	defer rows.Close()

	vals := []*types.Value{}
	for rows.Next() {
		var v types.Value
		var payload string
		if err := rows.Scan(&v.ValueID, &v.PropertyID, &v.EntityType, &v.EntityID, &payload); err != nil {
			return nil, fmt.Errorf("scanning value: %w", err)
		}
		if v.Content, err = decodeContent(payload); err != nil {
			return nil, fmt.Errorf("decoding value %s: %w", v.ValueID, err)
		}
		vals = append(vals, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating values: %w", err)
	}
	return vals, nil
}

// InsertValues stores freshly created value rows in one transaction.
func (b *Backend) InsertValues(values []*types.Value) error {
	if err := b.ready(); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, v := range values {
		payload, err := encodeContent(v.Content)
		if err != nil {
			return fmt.Errorf("encoding value %s: %w", v.ValueID, err)
		}
		_, err = tx.Exec(
			"INSERT INTO property_values (value_id, property_id, entity_type, entity_id, value) VALUES (?, ?, ?, ?, ?)",
			v.ValueID, v.PropertyID, v.EntityType, v.EntityID, payload,
		)
		if err != nil {
			return fmt.Errorf("inserting value %s: %w", v.ValueID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing inserts: %w", err)
	}
	return nil
}

// UpdateValues rewrites the payload of existing rows in one transaction.
func (b *Backend) UpdateValues(values []*types.Value) error {
	if err := b.ready(); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, v := range values {
		payload, err := encodeContent(v.Content)
		if err != nil {
			return fmt.Errorf("encoding value %s: %w", v.ValueID, err)
		}
		if _, err := tx.Exec("UPDATE property_values SET value = ? WHERE value_id = ?", payload, v.ValueID); err != nil {
			return fmt.Errorf("updating value %s: %w", v.ValueID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing updates: %w", err)
	}
	return nil
}

// DeleteValuesByID removes rows by identity in one bulk statement and
// returns the number of rows deleted. IDs without a row are skipped,
// which keeps retried flushes idempotent. An empty list touches storage
// zero times.
func (b *Backend) DeleteValuesByID(ids []string) (int, error) {
	if err := b.ready(); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	res, err := b.db.Exec("DELETE FROM property_values WHERE value_id IN ("+placeholders+")", args...)
	if err != nil {
		return 0, fmt.Errorf("deleting values: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted values: %w", err)
	}
	return int(n), nil
}

// encodeContent serializes an opaque scalar payload as JSON text.
func encodeContent(content any) (string, error) {
	data, err := json.Marshal(content)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeContent restores a payload from its JSON storage form.
func decodeContent(payload string) (any, error) {
	var content any
	if err := json.Unmarshal([]byte(payload), &content); err != nil {
		return nil, err
	}
	return content, nil
}
