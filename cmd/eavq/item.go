// Item commands for the eavq CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage items and their attributes",
	}
	cmd.AddCommand(newItemAddCmd())
	cmd.AddCommand(newItemListCmd())
	cmd.AddCommand(newItemShowCmd())
	cmd.AddCommand(newItemDelCmd())
	return cmd
}

func newItemAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := attachBackend()
			if err != nil {
				return exitError(exitSysError, "item add: %s", err)
			}
			defer backend.Detach()

			item, err := backend.CreateItem(args[0])
			if err != nil {
				return exitError(exitUserError, "item add: %s", err)
			}

			if flags.jsonMode {
				return printJSON(item)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created item %s (%s)\n", item.Name, item.ItemID)
			return nil
		},
	}
}

func newItemListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := attachBackend()
			if err != nil {
				return exitError(exitSysError, "item list: %s", err)
			}
			defer backend.Detach()

			items, err := backend.ListItems()
			if err != nil {
				return exitError(exitSysError, "item list: %s", err)
			}

			if flags.jsonMode {
				return printJSON(items)
			}
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", item.ItemID, item.Name)
			}
			return nil
		},
	}
}

func newItemShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an item with all its dynamic attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := attachBackend()
			if err != nil {
				return exitError(exitSysError, "item show: %s", err)
			}
			defer backend.Detach()

			item, overlay, err := overlayFor(backend, args[0])
			if err != nil {
				return exitError(exitUserError, "item show: %s", err)
			}

			names, err := overlay.PropertyNames()
			if err != nil {
				return exitError(exitSysError, "item show: %s", err)
			}
			attrs := make(map[string]any, len(names))
			for _, name := range names {
				v, err := overlay.Get(name)
				if err != nil {
					return exitError(exitSysError, "item show: %s", err)
				}
				attrs[name] = v
			}

			if flags.jsonMode {
				return printJSON(map[string]any{
					"item":       item,
					"attributes": attrs,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", item.ItemID, item.Name)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %v\n", name, attrs[name])
			}
			return nil
		},
	}
}

func newItemDelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "del <id>",
		Short: "Delete an item and all its attribute values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := attachBackend()
			if err != nil {
				return exitError(exitSysError, "item del: %s", err)
			}
			defer backend.Detach()

			if err := backend.DeleteItem(args[0]); err != nil {
				return exitError(exitUserError, "item del: %s", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted item %s\n", args[0])
			return nil
		},
	}
}
