// Root command structure, global flags, and exit codes for the eavq CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is the CLI version string.
const version = "0.1.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "eavq" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eavq",
		Short: "Dynamic attribute storage for schema-defined entities",
		Long: `Eavq manages named properties and their values attached to entities,
storing them in a side table next to the entity's own columns.`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .eavquent-db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newPropertyCmd())
	root.AddCommand(newItemCmd())
	root.AddCommand(newGetCmd())
	root.AddCommand(newSetCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// exitError prints the error to stderr and exits with the given code.
func exitError(code int, format string, args ...any) error {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the eavq version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "eavq v%s\n", version)
			return nil
		},
	}
}
