package eav

import "github.com/miteshsathvara1994/eavquent/pkg/types"

// PropertyLoader supplies the property definitions of an entity type.
type PropertyLoader interface {
	// PropertiesFor returns every property defined for the entity type,
	// in creation order. An unknown entity type yields an empty slice.
	PropertiesFor(entityType string) ([]*types.Property, error)
}

// ValueLoader supplies the stored value rows of one entity instance.
type ValueLoader interface {
	// ValuesFor returns every value row owned by the entity instance,
	// in load order.
	ValuesFor(entityType, entityID string) ([]*types.Value, error)
}

// ColumnLister introspects the physical columns of a backing table.
type ColumnLister interface {
	// ListColumns returns the set of column names of the table.
	ListColumns(table string) (map[string]bool, error)
}

// ValueWriter persists value mutations at flush time.
type ValueWriter interface {
	// InsertValues stores freshly created value rows.
	InsertValues(values []*types.Value) error

	// UpdateValues rewrites the payload of existing value rows.
	UpdateValues(values []*types.Value) error

	// DeleteValuesByID removes rows by identity in one bulk call and
	// returns the number of rows actually deleted. Deleting an ID with
	// no row is not an error, which makes retries idempotent.
	DeleteValuesByID(ids []string) (int, error)
}

// Store is the full storage collaborator contract the overlay consumes.
type Store interface {
	PropertyLoader
	ValueLoader
	ColumnLister
	ValueWriter
}
