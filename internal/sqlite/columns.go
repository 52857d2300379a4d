package sqlite

import (
	"database/sql"
	"fmt"
	"regexp"

	"github.com/miteshsathvara1994/eavquent/pkg/types"
)

// identPattern restricts table names to plain SQL identifiers. PRAGMA
// statements cannot take bound parameters, so the name is validated
// before being interpolated.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ListColumns returns the set of physical column names of a table,
// introspected via PRAGMA table_info and memoized for the lifetime of
// the attachment. An unknown table returns ErrInvalidTable.
func (b *Backend) ListColumns(table string) (map[string]bool, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}
	if !identPattern.MatchString(table) {
		return nil, fmt.Errorf("table %q: %w", table, types.ErrInvalidTable)
	}

	if cols, ok := b.columnCache[table]; ok {
		return cols, nil
	}

	rows, err := b.db.Query("PRAGMA table_info(" + table + ")")
	if err != nil {
		return nil, fmt.Errorf("introspecting table %s: %w", table, err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, colType    string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scanning table_info row: %w", err)
		}
		cols[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating table_info rows: %w", err)
	}
	if len(cols) == 0 {
		// PRAGMA table_info yields no rows for a missing table.
		return nil, fmt.Errorf("table %q: %w", table, types.ErrInvalidTable)
	}

	b.columnCache[table] = cols
	return cols, nil
}
