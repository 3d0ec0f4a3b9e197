// Package cli is the terminal frontend for the paintdesk console core.
package cli

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/contractorhq/paintdesk/internal/client"
	"github.com/contractorhq/paintdesk/internal/console"
)

// ConsoleCmd returns the interactive console command
func ConsoleCmd() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Interactive management console",
		Long: `Open the interactive console against a running paintdesk API.
Manage sites, materials, labourers, daily logs and overhead expenses, and
generate cost reports.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(os.Stdin)
			notifier := newTermNotifier(in, os.Stdout)
			app := console.NewApp(client.New(apiURL), notifier)
			return newRepl(app, in, os.Stdout).run(cmd.Context())
		},
	}

	defaultURL := os.Getenv("PAINTDESK_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8001"
	}
	cmd.Flags().StringVar(&apiURL, "api", defaultURL, "Base URL of the paintdesk API")

	return cmd
}
