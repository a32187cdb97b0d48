package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grohub",
	Short: "Grohub CLI tool",
	Long: `Grohub CLI is a command-line companion for the Grohub web app.

Available commands:
  serve         Run the web server
  routes        List the registered HTTP routes
  share-text    Preview the generated profile share text

Use "grohub [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
