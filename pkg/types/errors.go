package types

import "errors"

// Backend lifecycle errors.
var (
	ErrBackendDetached = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
)

// Record validation errors.
var (
	ErrInvalidID         = errors.New("invalid entity ID")
	ErrInvalidData       = errors.New("invalid entity data")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidEntityType = errors.New("invalid entity type")
	ErrDuplicateName     = errors.New("property name already defined for entity type")
	ErrInvalidTable      = errors.New("invalid table name")
	ErrNotFound          = errors.New("entity not found")
)

// Attribute access errors surfaced by the overlay engine.
var (
	// ErrPropertyNotFound is returned by get/set for a key with no
	// matching property definition on the entity type.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrNotMultivalue is returned when a collection is assigned to a
	// property declared single-valued.
	ErrNotMultivalue = errors.New("property is not multivalue")

	// ErrNotAssignable is returned by mass assignment for a key that is
	// neither a fillable native attribute nor a defined property.
	ErrNotAssignable = errors.New("attribute is not assignable")

	// ErrUnknownAttribute is returned by attribute reads for a key that
	// resolves to neither a native attribute nor a defined property.
	ErrUnknownAttribute = errors.New("unknown attribute")
)
