package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/twmerge/internal/cli"
	"github.com/arthur-debert/twmerge/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.GetStyle("Error").Render("Error:"), err)
		os.Exit(1)
	}
}
