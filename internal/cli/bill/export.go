package bill

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/billform/internal/cli"
	"github.com/thenoetrevino/billform/internal/cli/handler"
	"github.com/thenoetrevino/billform/internal/export"
	"github.com/thenoetrevino/billform/internal/models"
)

// ExportCmd returns the bill export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export bills to CSV or PDF",
		Long: `Export the bill listing to a file. Without --output the file is
bills.csv (or bills.pdf) in the configured export directory.

Examples:
  billform bill export
  billform bill export --format=pdf --output=/tmp/march.pdf
  billform bill export --search=ann
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runExport)),
	}

	cmd.Flags().String("format", "", "csv or pdf (default: from --output extension, else csv)")
	cmd.Flags().String("output", "", "Output file path")
	cmd.Flags().String("search", "", "Only export rows matching this filter")

	addOutputFlags(cmd, "No output")
	return cmd
}

func runExport(ctx context.Context, args *handler.Arguments) (any, error) {
	output := args.GetString("output", "")

	format := export.FormatCSV
	if args.Has("format") {
		f, err := export.ParseFormat(args.GetString("format", ""))
		if err != nil {
			return nil, cli.WithExitCode(cli.ExitUsage, err)
		}
		format = f
	} else if output != "" {
		format = export.FormatForPath(output)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cliInstance.Close()

	if output == "" {
		output = export.DefaultPath(cliInstance.App.Config.Export.Dir, format)
	}

	rows, err := cliInstance.App.BillService.List(ctx)
	if err != nil {
		return nil, err
	}
	rows = models.FilterBillRows(rows, args.GetString("search", ""))

	if err := export.ToFile(output, format, rows); err != nil {
		return nil, cli.WithExitCode(cli.ExitDataErr, err)
	}
	return exported{Path: output, Format: string(format), Rows: len(rows)}, nil
}
