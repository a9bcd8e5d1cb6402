package bill

import (
	"github.com/spf13/cobra"
)

// BillCmd returns the bill parent command
func BillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Manage bills",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ExportCmd())

	return cmd
}

// addOutputFlags adds the agent-friendly flags every subcommand accepts
func addOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}
