// Package tutorial prints the billform usage guide
package tutorial

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	var rawFlag bool

	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show the billform usage guide",
		Long: `Show the billform usage guide: form keys, commands, validation
rules and where data is stored.

Examples:
  billform tutorial
  billform tutorial --raw > guide.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return outputTutorial(cmd.OutOrStdout(), rawFlag)
		},
	}

	cmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the markdown source")
	return cmd
}

func outputTutorial(w io.Writer, raw bool) error {
	if raw {
		_, err := fmt.Fprint(w, tutorialContent)
		return err
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		return err
	}
	out, err := r.Render(tutorialContent)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}
