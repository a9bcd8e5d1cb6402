package bill

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/billform/internal/cli"
	"github.com/thenoetrevino/billform/internal/cli/handler"
	billservice "github.com/thenoetrevino/billform/internal/services/bill"
)

// UpdateCmd returns the bill update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a bill",
		Long: `Update a bill's item, quantity, price or total. Flags that are not
given keep their stored value. The total is recomputed from quantity and
price unless --total is given.

Examples:
  billform bill update --id=3 --quantity=5
  billform bill update --id=3 --item="Fountain pen" --price=12.00 --json
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runUpdate)),
	}

	cmd.Flags().Int64("id", 0, "Bill ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().String("item", "", "New item name")
	cmd.Flags().String("quantity", "", "New quantity")
	cmd.Flags().String("price", "", "New unit price")
	cmd.Flags().String("total", "", "Explicit total (default: quantity x price)")

	addOutputFlags(cmd, "Minimal output (ID only)")
	return cmd
}

func runUpdate(ctx context.Context, args *handler.Arguments) (any, error) {
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

	// Start from the stored values so unset flags are kept
	current, err := svc.Get(ctx, billID)
	if err != nil {
		return nil, err
	}

	req := billservice.UpdateRequest{
		BillID:   billID,
		ItemName: args.GetString("item", current.ItemName),
		Quantity: current.Quantity,
		Price:    current.Price,
	}
	if args.Has("quantity") {
		if req.Quantity, err = p.ParseQuantity("quantity"); err != nil {
			return nil, err
		}
	}
	if args.Has("price") {
		if req.Price, err = p.ParsePrice("price"); err != nil {
			return nil, err
		}
	}
	if req.Total, err = p.ParseTotal("total"); err != nil {
		return nil, err
	}

	if err := svc.Update(ctx, req); err != nil {
		return nil, err
	}

	updated, err := svc.Get(ctx, billID)
	if err != nil {
		return nil, err
	}
	return savedBill{Bill: toBillJSON(&updated.Bill), Action: "updated"}, nil
}
