package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/miteshsathvara1994/eavquent/pkg/types"
)

// DefineProperty persists a new property definition and returns its ID.
// Name must be unique within the entity type; a clash returns
// ErrDuplicateName. EntityType is immutable once created, so there is no
// update path here.
func (b *Backend) DefineProperty(p *types.Property) (string, error) {
	if err := b.ready(); err != nil {
		return "", err
	}
	if err := p.Validate(); err != nil {
		return "", err
	}

	var dupID string
	err := b.db.QueryRow(
		"SELECT property_id FROM properties WHERE entity_type = ? AND name = ?",
		p.EntityType, p.Name,
	).Scan(&dupID)
	if err == nil {
		return "", fmt.Errorf("property %s.%s: %w", p.EntityType, p.Name, types.ErrDuplicateName)
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("checking property name uniqueness: %w", err)
	}

	p.PropertyID = newUUID()
	p.CreatedAt = time.Now().UTC()

	_, err = b.db.Exec(
		"INSERT INTO properties (property_id, entity_type, name, multivalue, created_at) VALUES (?, ?, ?, ?, ?)",
		p.PropertyID, p.EntityType, p.Name, boolToInt(p.Multivalue), p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("persisting property: %w", err)
	}
	return p.PropertyID, nil
}

// PropertiesFor returns every property defined for the entity type in
// creation order. An unknown entity type yields an empty slice.
func (b *Backend) PropertiesFor(entityType string) ([]*types.Property, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}

	rows, err := b.db.Query(
		"SELECT property_id, entity_type, name, multivalue, created_at FROM properties WHERE entity_type = ? ORDER BY rowid ASC",
		entityType,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching properties: %w", err)
	}
	defer rows.Close()

	props := []*types.Property{}
	for rows.Next() {
		p, err := hydrateProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating property: %w", err)
		}
		props = append(props, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating properties: %w", err)
	}
	return props, nil
}

// hydrateProperty converts one SQLite row into a *types.Property.
func hydrateProperty(rows *sql.Rows) (*types.Property, error) {
	var p types.Property
	var multivalue int
	var createdAt string
	if err := rows.Scan(&p.PropertyID, &p.EntityType, &p.Name, &multivalue, &createdAt); err != nil {
		return nil, err
	}
	p.Multivalue = multivalue != 0
	var err error
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
