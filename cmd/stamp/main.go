package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/stamp/internal/cli"
	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		if path, ok := errors.GetErrorDetails(err)[errors.DetailPath]; ok {
			fmt.Fprintln(os.Stderr, styles.Render("Muted", fmt.Sprintf("  path: %v", path)))
		}

		os.Exit(1)
	}
}
