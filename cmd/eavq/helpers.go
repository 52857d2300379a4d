// Shared helpers for eavq CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/miteshsathvara1994/eavquent/pkg/eav"
	"github.com/miteshsathvara1994/eavquent/pkg/sqlite"
	"github.com/miteshsathvara1994/eavquent/pkg/types"
)

// attachBackend resolves directories and attaches a SQLite backend.
// The caller must defer backend.Detach().
func attachBackend() (sqlite.Backend, error) {
	_, dataDir, err := resolveDirs()
	if err != nil {
		return nil, err
	}

	backend := sqlite.NewBackend()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}
	return backend, nil
}

// overlayFor loads an item and wraps it with its attribute overlay.
func overlayFor(backend sqlite.Backend, itemID string) (*types.Item, *eav.Overlay, error) {
	item, err := backend.GetItem(itemID)
	if err != nil {
		return nil, nil, fmt.Errorf("load item %s: %w", itemID, err)
	}
	return item, eav.New(item, backend), nil
}

// parseValue interprets a CLI argument as JSON when possible and as a
// plain string otherwise, so `set id rating 4` stores a number while
// `set id sku A1` stores a string.
func parseValue(arg string) any {
	var v any
	if err := json.Unmarshal([]byte(arg), &v); err == nil {
		return v
	}
	return arg
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
