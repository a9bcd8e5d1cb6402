package bill

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/billform/internal/cli"
	"github.com/thenoetrevino/billform/internal/cli/handler"
)

// DeleteCmd returns the bill delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a bill",
		Long: `Delete a bill by ID (requires confirmation unless --force, --quiet or --json).
The customer record is kept.

Examples:
  # Delete with confirmation
  billform bill delete --id=3

  # Skip confirmation
  billform bill delete --id=3 --force
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runDelete)),
	}

	cmd.Flags().Int64("id", 0, "Bill ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	addOutputFlags(cmd, "Minimal output")
	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	p := args.Parser()
	billID, err := p.ParseBillID("id")
	if err != nil {
		return nil, err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cliInstance.Close()
	svc := cliInstance.App.BillService

	// Ask for confirmation unless force or a machine-readable mode
	jsonOutput, quietMode, _ := p.OutputFormats()
	if !args.GetBool("force") && !quietMode && !jsonOutput {
		detail, err := svc.Get(ctx, billID)
		if err != nil {
			return nil, err
		}

		cmd := args.GetCmd()
		fmt.Fprintf(cmd.OutOrStdout(), "Delete bill #%d: '%s' for %s? (y/N): ",
			billID, detail.ItemName, detail.Customer.Name)

		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			return deleted{BillID: billID, Cancelled: true}, nil
		}
	}

	if err := svc.Delete(ctx, billID); err != nil {
		return nil, err
	}
	return deleted{BillID: billID}, nil
}
