// Package cmd assembles the billform command tree
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/billform/internal/cli/bill"
	"github.com/thenoetrevino/billform/internal/cli/customer"
	"github.com/thenoetrevino/billform/internal/cli/setup"
	"github.com/thenoetrevino/billform/internal/cli/tutorial"
	"github.com/thenoetrevino/billform/internal/launcher"
	"github.com/thenoetrevino/billform/internal/logging"
)

// NewRootCmd builds the root command. With no subcommand it opens the
// interactive bill form.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "billform",
		Short: "billform - record customers and their bills",
		Long: `billform records customers and the items they bought, lists and
filters bills, and exports them to CSV or PDF.

Run without arguments for the interactive form, or use the subcommands
for scripting.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// The TUI logs to a file; subcommands log to stderr
			if cmd.Name() != "billform" {
				logging.Setup()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch()
		},
	}

	rootCmd.AddCommand(bill.BillCmd())
	rootCmd.AddCommand(customer.CustomerCmd())
	rootCmd.AddCommand(setup.SetupCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())

	return rootCmd
}

// Execute runs the command tree
func Execute() error {
	return NewRootCmd().Execute()
}
