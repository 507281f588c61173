package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/texnokross/texnokross/internal/interfaces/cli/migrate"
	"github.com/texnokross/texnokross/internal/interfaces/cli/server"
	"github.com/texnokross/texnokross/internal/interfaces/cli/statement"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "texnokross",
		Short: "Texnokross - storefront orders and Payme merchant API",
		Long:  `Texnokross accepts storefront orders, issues Payme checkout links and serves the Payme merchant API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		statement.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
