// Package sqlite implements the SQLite storage backend for Eavquent.
// The backend owns the database lifecycle and serves as the storage
// collaborator for the overlay engine: relation loaders, column
// introspection, and transactional value persistence.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/miteshsathvara1994/eavquent/pkg/eav"
	"github.com/miteshsathvara1994/eavquent/pkg/types"
)

// dbFileName is the SQLite database file inside DataDir.
const dbFileName = "eavquent.db"

// Backend implements eav.Store on top of a SQLite database.
type Backend struct {
	attached bool
	config   types.Config
	db       *sql.DB

	// columnCache memoizes PRAGMA table_info results per table.
	columnCache map[string]map[string]bool
}

var _ eav.Store = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		columnCache: make(map[string]map[string]bool),
	}
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist, opens the database, and applies the
// schema. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("enabling foreign keys: %w", err)
	}
	for _, stmt := range schemaStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database connection. After Detach, all operations
// return ErrBackendDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.columnCache = make(map[string]map[string]bool)
	return nil
}

// ready returns ErrBackendDetached when the backend is not attached.
func (b *Backend) ready() error {
	if !b.attached {
		return types.ErrBackendDetached
	}
	return nil
}

// newUUID generates a UUID v7 for entity IDs.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}
