package types

// Value is one stored value for a property on a specific entity instance.
// A single-valued property has at most one committed Value per entity; a
// multivalue property has zero or more, always replaced as a whole set.
type Value struct {
	ValueID    string `json:"value_id"`    // UUID v7, generated on creation.
	PropertyID string `json:"property_id"` // Owning property definition.
	EntityType string `json:"entity_type"` // Polymorphic owner reference: type tag.
	EntityID   string `json:"entity_id"`   // Polymorphic owner reference: instance ID.
	Content    any    `json:"content"`     // Opaque scalar payload.

	// property is the in-memory back-reference to the owning definition.
	// It is attached from the already-loaded per-entity property index,
	// never by re-querying storage. Unexported so that JSON serialization
	// of a Value can never recurse through property -> values -> property.
	property *Property
}

// Property returns the attached owning definition, or nil if none has
// been attached. It never queries storage.
func (v *Value) Property() *Property {
	return v.property
}

// AttachProperty sets the in-memory back-reference to the owning
// definition. Attaching does not modify PropertyID; the caller is
// expected to pass the definition the value was created or loaded for.
func (v *Value) AttachProperty(p *Property) {
	v.property = p
}
