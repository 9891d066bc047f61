package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sales-assistant/internal/domain/prompts"
)

var nextCallCmd = &cobra.Command{
	Use:   "next-call [previous-call-type]",
	Short: "Print the suggested next call type",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		previous := ""
		if len(args) == 1 {
			previous = args[0]
		}
		fmt.Fprintln(cmd.OutOrStdout(), prompts.NextCallType(previous))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextCallCmd)
}
