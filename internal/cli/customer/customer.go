package customer

import (
	"github.com/spf13/cobra"
)

// CustomerCmd returns the customer parent command
func CustomerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage customers",
	}

	cmd.AddCommand(CreateCmd())

	return cmd
}
