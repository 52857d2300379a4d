// Property administration commands for the eavq CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/miteshsathvara1994/eavquent/pkg/types"
)

func newPropertyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "property",
		Short: "Manage property definitions",
	}
	cmd.AddCommand(newPropertyDefineCmd())
	cmd.AddCommand(newPropertyListCmd())
	return cmd
}

func newPropertyDefineCmd() *cobra.Command {
	var entityType string
	var multivalue bool

	cmd := &cobra.Command{
		Use:   "define <name>",
		Short: "Define a new property for an entity type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := attachBackend()
			if err != nil {
				return exitError(exitSysError, "property define: %s", err)
			}
			defer backend.Detach()

			prop := &types.Property{
				EntityType: entityType,
				Name:       args[0],
				Multivalue: multivalue,
			}
			if _, err := backend.DefineProperty(prop); err != nil {
				return exitError(exitUserError, "property define: %s", err)
			}

			if flags.jsonMode {
				return printJSON(prop)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "defined property %s (%s, multivalue=%t)\n", prop.Name, prop.PropertyID, prop.Multivalue)
			return nil
		},
	}

	cmd.Flags().StringVar(&entityType, "entity-type", types.ItemEntityType, "entity type the property belongs to")
	cmd.Flags().BoolVar(&multivalue, "multivalue", false, "allow multiple concurrent values per entity")
	return cmd
}

func newPropertyListCmd() *cobra.Command {
	var entityType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List property definitions for an entity type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := attachBackend()
			if err != nil {
				return exitError(exitSysError, "property list: %s", err)
			}
			defer backend.Detach()

			props, err := backend.PropertiesFor(entityType)
			if err != nil {
				return exitError(exitSysError, "property list: %s", err)
			}

			if flags.jsonMode {
				return printJSON(props)
			}
			for _, p := range props {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tmultivalue=%t\n", p.PropertyID, p.Name, p.Multivalue)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&entityType, "entity-type", types.ItemEntityType, "entity type to list properties for")
	return cmd
}
