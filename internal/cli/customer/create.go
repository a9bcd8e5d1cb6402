package customer

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/billform/internal/cli"
	"github.com/thenoetrevino/billform/internal/cli/handler"
	"github.com/thenoetrevino/billform/internal/cli/styles"
	billservice "github.com/thenoetrevino/billform/internal/services/bill"
)

// CreateCmd returns the customer create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Long: `Create a customer without a bill. Bills can then be added with
billform bill create --customer=<id>.

Examples:
  billform customer create --name="Ann" --phone=5551234567 --email=ann@x.io

  # Quiet mode for bash capture
  CUSTOMER_ID=$(billform customer create --name=Ann --phone=5551234567 --email=ann@x.io --quiet)
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runCreate)),
	}

	cmd.Flags().String("name", "", "Customer name (required)")
	cmd.Flags().String("phone", "", "Phone, exactly 10 digits (required)")
	cmd.Flags().String("email", "", "Email address (required)")
	cmd.Flags().String("address", "", "Postal address")
	for _, name := range []string{"name", "phone", "email"} {
		_ = cmd.MarkFlagRequired(name)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

type created struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c created) GetID() int64 { return c.ID }

func (c created) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s Customer '%s' created successfully (ID: %d)\n",
		styles.SuccessStyle.Render("✓"), c.Name, c.ID)
	return err
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cliInstance.Close()

	req := billservice.CreateCustomerRequest{
		Name:    args.GetString("name", ""),
		Phone:   args.GetString("phone", ""),
		Email:   args.GetString("email", ""),
		Address: args.GetString("address", ""),
	}

	id, err := cliInstance.App.BillService.CreateCustomer(ctx, req)
	if err != nil {
		return nil, err
	}
	return created{ID: id, Name: req.Name}, nil
}
