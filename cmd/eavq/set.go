// Set command for the eavq CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <item-id> <key> <value> [value...]",
		Short: "Write a dynamic attribute of an item and flush",
		Long: `Write a dynamic attribute and flush the change to storage.
A single value argument is stored as a scalar; multiple value arguments
form the replacement set of a multivalue property. Values parse as JSON
when possible and fall back to plain strings.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := attachBackend()
			if err != nil {
				return exitError(exitSysError, "set: %s", err)
			}
			defer backend.Detach()

			_, overlay, err := overlayFor(backend, args[0])
			if err != nil {
				return exitError(exitUserError, "set: %s", err)
			}

			var value any
			if len(args) == 3 {
				value = parseValue(args[2])
			} else {
				seq := make([]any, 0, len(args)-2)
				for _, arg := range args[2:] {
					seq = append(seq, parseValue(arg))
				}
				value = seq
			}

			if err := overlay.Set(args[1], value); err != nil {
				return exitError(exitUserError, "set: %s", err)
			}
			if err := overlay.Save(); err != nil {
				return exitError(exitSysError, "set: %s", err)
			}

			stored, err := overlay.Get(args[1])
			if err != nil {
				return exitError(exitSysError, "set: %s", err)
			}
			if flags.jsonMode {
				return printJSON(stored)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", args[1], stored)
			return nil
		},
	}
}
