// Init command for the eavq CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/miteshsathvara1994/eavquent/pkg/sqlite"
	"github.com/miteshsathvara1994/eavquent/pkg/types"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize eavq storage",
		Long:  "Create configuration and data directories, then initialize the storage backend.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, dataDir, err := resolveDirs()
	if err != nil {
		return exitError(exitSysError, "init: %s", err)
	}

	// Attach once so the database file and schema exist.
	backend := sqlite.NewBackend()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}
	if err := backend.Attach(cfg); err != nil {
		return exitError(exitSysError, "init: %s", err)
	}
	if err := backend.Detach(); err != nil {
		return exitError(exitSysError, "init: %s", err)
	}

	if flags.jsonMode {
		return printJSON(map[string]string{
			"config_dir": configDir,
			"data_dir":   dataDir,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "initialized eavq storage\nconfig: %s\ndata:   %s\n", configDir, dataDir)
	return nil
}
