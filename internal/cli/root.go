// Package cli implements the a2a CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "a2a",
	Short: "Console for the local Agent2Agent endpoint",
	Long: `a2a observes and manages the local Agent2Agent (A2A) agent daemon.
The daemon serves its discovery document at /.well-known/agent-card.json;
this tool surfaces its liveness and identity.`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}
