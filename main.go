package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/billform/cmd"
	"github.com/thenoetrevino/billform/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Command handlers have already reported coded errors
		var coded *cli.CodedError
		if !errors.As(err, &coded) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCodeFor(err))
	}
}
