package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/astrolab/cmd"
	"github.com/thenoetrevino/astrolab/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Command failures were already reported by the output formatter
		var exitErr *cli.CodeError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
