package types

import "time"

// Item table and type tag.
const (
	ItemEntityType = "item"
	ItemTable      = "items"
)

// itemFillable lists the native attributes open to mass assignment.
var itemFillable = []string{"name"}

// Item is a minimal schema-defined entity that dynamic attributes attach
// to. Its native state is ordinary columns on the items table; everything
// else is resolved through the attribute overlay.
type Item struct {
	ItemID    string    `json:"item_id"`    // UUID v7, generated on creation.
	Name      string    `json:"name"`       // Human-readable name (required, non-empty).
	CreatedAt time.Time `json:"created_at"` // Timestamp of creation.

	// relations holds loaded native relations by name. A loaded relation
	// with a value always shadows a dynamic property of the same name.
	relations map[string]any
}

// EntityType returns the polymorphic type tag for items.
func (i *Item) EntityType() string { return ItemEntityType }

// EntityID returns the instance identifier.
func (i *Item) EntityID() string { return i.ItemID }

// Table returns the name of the backing table.
func (i *Item) Table() string { return ItemTable }

// Fillable returns the native attribute names open to mass assignment.
func (i *Item) Fillable() []string {
	out := make([]string, len(itemFillable))
	copy(out, itemFillable)
	return out
}

// Relation reports whether a native relation with the given name has been
// loaded, and returns its value. A loaded relation holding nil is treated
// as absent for attribute-resolution purposes.
func (i *Item) Relation(name string) (any, bool) {
	v, ok := i.relations[name]
	return v, ok
}

// SetRelation records a loaded native relation on the item.
func (i *Item) SetRelation(name string, value any) {
	if i.relations == nil {
		i.relations = make(map[string]any)
	}
	i.relations[name] = value
}

// Native reads a native attribute by column name.
func (i *Item) Native(name string) (any, bool) {
	switch name {
	case "item_id":
		return i.ItemID, true
	case "name":
		return i.Name, true
	case "created_at":
		return i.CreatedAt, true
	default:
		return nil, false
	}
}

// Assign writes a fillable native attribute by name.
// Returns ErrNotAssignable for attributes outside the fillable set and
// ErrInvalidData when the value has the wrong type.
func (i *Item) Assign(name string, value any) error {
	switch name {
	case "name":
		s, ok := value.(string)
		if !ok {
			return ErrInvalidData
		}
		i.Name = s
		return nil
	default:
		return ErrNotAssignable
	}
}
