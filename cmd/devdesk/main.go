package main

import (
	"os"

	"github.com/spf13/cobra"

	"devdesk/internal/interfaces/cli/migrate"
	"devdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "devdesk",
		Short: "DevDesk - issue tracking backend",
		Long:  `DevDesk is a multi-tenant issue tracking backend with a REST API, built-in migration tools and token based authentication.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
