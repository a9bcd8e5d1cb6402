package bill

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/billform/internal/cli"
	"github.com/thenoetrevino/billform/internal/cli/handler"
	billservice "github.com/thenoetrevino/billform/internal/services/bill"
)

// CreateCmd returns the bill create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a bill",
		Long: `Record a bill, either together with a new customer (the same as
submitting the form) or for an existing customer.

Examples:
  # New customer and bill in one step
  billform bill create --name="Ann" --phone=5551234567 --email=ann@x.io \
    --item="Pen" --quantity=3 --price=2.50

  # Bill for an existing customer
  billform bill create --customer=4 --item="Ink" --quantity=1 --price=9.99

  # Quiet mode for bash capture
  BILL_ID=$(billform bill create --customer=4 --item=Ink --quantity=1 --price=9.99 --quiet)
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runCreate)),
	}

	// Customer flags (ignored when --customer is given)
	cmd.Flags().Int64("customer", 0, "Existing customer ID")
	cmd.Flags().String("name", "", "Customer name")
	cmd.Flags().String("phone", "", "Customer phone (10 digits)")
	cmd.Flags().String("email", "", "Customer email")
	cmd.Flags().String("address", "", "Customer address")

	// Bill flags
	cmd.Flags().String("item", "", "Item name (required)")
	cmd.Flags().String("quantity", "", "Quantity, a whole number (required)")
	cmd.Flags().String("price", "", "Unit price (required)")
	cmd.Flags().String("total", "", "Total (default: quantity x price)")
	for _, name := range []string{"item", "quantity", "price"} {
		_ = cmd.MarkFlagRequired(name)
	}

	addOutputFlags(cmd, "Minimal output (ID only)")
	return cmd
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	p := args.Parser()

	quantity, err := p.ParseQuantity("quantity")
	if err != nil {
		return nil, err
	}
	price, err := p.ParsePrice("price")
	if err != nil {
		return nil, err
	}
	total, err := p.ParseTotal("total")
	if err != nil {
		return nil, err
	}
	item := args.GetString("item", "")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cliInstance.Close()
	svc := cliInstance.App.BillService

	if args.Has("customer") {
		b, err := svc.CreateBill(ctx, billservice.CreateBillRequest{
			CustomerID: args.GetInt64("customer", 0),
			ItemName:   item,
			Quantity:   quantity,
			Price:      price,
			Total:      total,
		})
		if err != nil {
			return nil, err
		}
		return savedBill{Bill: toBillJSON(b), Action: "created"}, nil
	}

	if !args.Has("name") {
		return nil, errors.New("either --customer or --name/--phone/--email is required")
	}

	b, err := svc.Submit(ctx, billservice.SubmitRequest{
		CreateCustomerRequest: billservice.CreateCustomerRequest{
			Name:    args.GetString("name", ""),
			Phone:   args.GetString("phone", ""),
			Email:   args.GetString("email", ""),
			Address: args.GetString("address", ""),
		},
		ItemName: item,
		Quantity: quantity,
		Price:    price,
		Total:    total,
	})
	if err != nil {
		return nil, err
	}
	return savedBill{Bill: toBillJSON(b), Action: "created"}, nil
}
