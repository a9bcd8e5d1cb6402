package bill

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/billform/internal/cli"
	"github.com/thenoetrevino/billform/internal/cli/handler"
	"github.com/thenoetrevino/billform/internal/models"
)

// ListCmd returns the bill list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bills",
		Long: `List all bills with their customer's name, ordered by bill ID.

Examples:
  # Table output
  billform bill list

  # Only rows containing "pen" in any column (case-insensitive)
  billform bill list --search=pen

  # One ID per line
  billform bill list --quiet
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	cmd.Flags().String("search", "", "Case-insensitive filter across all columns")
	addOutputFlags(cmd, "Minimal output (IDs only)")
	return cmd
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cliInstance.Close()

	rows, err := cliInstance.App.BillService.List(ctx)
	if err != nil {
		return nil, err
	}

	return newBillList(models.FilterBillRows(rows, args.GetString("search", ""))), nil
}
