package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sales-assistant/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "sales-assistant",
	Short: "Agenda and follow-up generation with learn-from-edits email styling",
	Long: `sales-assistant serves the API that generates meeting agendas and
follow-up emails through an LLM provider, and learns the user's email style
from the edits they make to generated emails.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()
		cfg = config.Load()
		return cfg.Validate()
	},
}

// Execute runs the root command. Without a subcommand it serves the API.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = serveCmd.RunE
}
