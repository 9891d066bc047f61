package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"sales-assistant/internal/domain/analysis"
	"sales-assistant/internal/infra/logger"
	"sales-assistant/internal/infra/services"
)

var styleGuideCmd = &cobra.Command{
	Use:   "style-guide",
	Short: "Print the style guide learned from stored email edits",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		log := logger.Discard()

		editStore, closeStore, err := openEditStore(ctx, cfg, log)
		if err != nil {
			return fmt.Errorf("opening edit store: %w", err)
		}
		defer closeStore()

		learningSvc := services.NewEmailLearningService(editStore, analysis.NewAnalyzer(analysisOptions(cfg)), log)
		res, err := learningSvc.GetPatterns(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		if !res.HasPatterns {
			fmt.Fprintln(out, "No email edits recorded yet.")
			return nil
		}
		fmt.Fprintf(out, "Total edits stored: %d\n\n%s\n", res.TotalEdits, res.StyleGuide)
		return nil
	},
}

func init() {
	styleGuideCmd.Flags().Bool("json", false, "print the full patterns response as JSON")
	rootCmd.AddCommand(styleGuideCmd)
}
