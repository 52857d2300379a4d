package types

import "time"

// Property defines a named attribute scoped to an entity type. Properties
// are shared by every instance of the entity type; the values themselves
// live in per-instance Value rows. Name is unique within an entity type,
// and EntityType is immutable once the property is persisted.
type Property struct {
	PropertyID string    `json:"property_id"` // UUID v7, generated on creation.
	EntityType string    `json:"entity_type"` // Owning entity type tag, e.g. "item".
	Name       string    `json:"name"`        // Unique within EntityType (required, non-empty).
	Multivalue bool      `json:"multivalue"`  // Whether more than one value may exist per entity.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of creation.
}

// Validate checks that the property definition is well-formed.
// Returns ErrInvalidName if Name is empty and ErrInvalidEntityType if
// EntityType is empty. Name uniqueness is enforced by the backend.
func (p *Property) Validate() error {
	if p.Name == "" {
		return ErrInvalidName
	}
	if p.EntityType == "" {
		return ErrInvalidEntityType
	}
	return nil
}
