// Package setup writes the billform config file
package setup

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/billform/internal/cli/styles"
	"github.com/thenoetrevino/billform/internal/config"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	var checkFlag bool
	var forceFlag bool
	var pathFlag string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Write a default config file",
		Long: `Write the default configuration (database, export directory, key
mappings and colors) to the config file so it can be edited.

Examples:
  # Write ~/.config/billform/config.yaml
  billform setup

  # Check whether a config file exists
  billform setup --check

  # Overwrite an existing file
  billform setup --force
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := pathFlag
			if path == "" {
				p, err := config.Path()
				if err != nil {
					return fmt.Errorf("failed to resolve config path: %w", err)
				}
				path = p
			}

			if checkFlag {
				return Check(cmd.OutOrStdout(), path)
			}
			return Install(cmd.OutOrStdout(), path, forceFlag)
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Check installation status")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")
	cmd.Flags().StringVar(&pathFlag, "path", "", "Config file to write (default: user config dir)")

	return cmd
}

// Install writes the default config to path. An existing file is kept
// unless force is set.
func Install(w io.Writer, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := config.Default().SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(w, "%s Config written\n", styles.SuccessStyle.Render("✓"))
	fmt.Fprintf(w, "  File: %s\n", path)
	return nil
}

// Check reports whether a config file exists at path
func Check(w io.Writer, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(w, "✗ No config file at %s (defaults in use)\n", path)
			fmt.Fprintln(w, "  Run: billform setup")
			return nil
		}
		return err
	}
	fmt.Fprintf(w, "%s Config file: %s\n", styles.SuccessStyle.Render("✓"), path)
	return nil
}
