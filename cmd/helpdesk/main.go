package main

import (
	"os"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/migrate"
	"helpdesk/internal/interfaces/cli/server"
)

// @title Helpdesk API
// @version 1.0
// @description Customer support ticketing service with dual-mode authentication and agent platform integration.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk - customer support ticketing service",
		Long:  `Helpdesk is a customer support ticketing service with session and API-key authentication, plus an AI agent platform proxy.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
