package bill

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/billform/internal/cli"
	"github.com/thenoetrevino/billform/internal/cli/handler"
)

// ShowCmd returns the bill show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one bill with its customer",
		Long: `Show one bill together with the full customer record.

Examples:
  billform bill show --id=3

  # Rendered markdown receipt
  billform bill show --id=3 --receipt
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runShow)),
	}

	cmd.Flags().Int64("id", 0, "Bill ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().Bool("receipt", false, "Render as a receipt")
	cmd.Flags().Int("width", 80, "Receipt wrap width")

	addOutputFlags(cmd, "Minimal output (ID only)")
	return cmd
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	p := args.Parser()
	billID, err := p.ParseBillID("id")
	if err != nil {
		return nil, err
	}
	asReceipt, _ := p.ParseBool("receipt")
	width, _ := args.GetCmd().Flags().GetInt("width")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cliInstance.Close()

	detail, err := cliInstance.App.BillService.Get(ctx, billID)
	if err != nil {
		return nil, err
	}
	return newBillShow(detail, asReceipt, width), nil
}
