// Get command for the eavq CLI.
package main

import (
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <item-id> <key>",
		Short: "Read a dynamic attribute of an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := attachBackend()
			if err != nil {
				return exitError(exitSysError, "get: %s", err)
			}
			defer backend.Detach()

			_, overlay, err := overlayFor(backend, args[0])
			if err != nil {
				return exitError(exitUserError, "get: %s", err)
			}

			value, err := overlay.Get(args[1])
			if err != nil {
				return exitError(exitUserError, "get: %s", err)
			}
			return printJSON(value)
		},
	}
}
