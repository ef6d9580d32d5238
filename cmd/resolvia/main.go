package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/resolvia-inc/resolvia/internal/interfaces/cli/migrate"
	"github.com/resolvia-inc/resolvia/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "resolvia",
		Short: "Resolvia - multi-tenant helpdesk",
		Long:  `Resolvia is a multi-tenant helpdesk service with ticket management, a help center, and database migration tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
