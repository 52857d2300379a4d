// Package sqlite provides the public API for the SQLite Eavquent backend.
// It exposes the backend factory while keeping implementation details
// internal.
package sqlite

import (
	"github.com/miteshsathvara1994/eavquent/internal/sqlite"
	"github.com/miteshsathvara1994/eavquent/pkg/eav"
	"github.com/miteshsathvara1994/eavquent/pkg/types"
)

// Backend is the full surface of the SQLite backend: the storage
// collaborator contract consumed by the overlay engine, plus lifecycle,
// property administration, and item management.
type Backend interface {
	eav.Store

	// Attach initializes the backend with the given configuration.
	Attach(config types.Config) error

	// Detach releases backend resources. Idempotent.
	Detach() error

	// DefineProperty persists a new property definition and returns its ID.
	DefineProperty(p *types.Property) (string, error)

	// CreateItem persists a new item with the given name.
	CreateItem(name string) (*types.Item, error)

	// GetItem retrieves an item by ID.
	GetItem(id string) (*types.Item, error)

	// ListItems returns all items in creation order.
	ListItems() ([]*types.Item, error)

	// DeleteItem removes an item and every property value it owns.
	DeleteItem(id string) error
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend()
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".eavquent-db",
//	})
//	defer backend.Detach()
func NewBackend() Backend {
	return sqlite.NewBackend()
}
