package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/contractorhq/paintdesk/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "paintdesk",
		Short: "Management console for a painting contractor business",
		Long: `paintdesk manages sites, materials, labourers, daily work logs and
overhead expenses against a running paintdesk API, and generates
site, inventory and daily cost reports.`,
	}

	rootCmd.AddCommand(cli.ConsoleCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
