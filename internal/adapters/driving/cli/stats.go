package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
	Long:  `Shows how many documents are stored and how many have completed analysis.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	stats, err := ingestService.Statistics(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get statistics: %w", err)
	}

	cmd.Println(headingStyle.Render("Corpus Statistics"))
	cmd.Println()
	cmd.Printf("  Documents: %d\n", stats.Total)
	cmd.Printf("  Analyzed:  %d\n", stats.Analyzed)
	cmd.Printf("  Pending:   %d\n", stats.Pending)
	cmd.Printf("  Rate:      %.1f%%\n", stats.AnalysisRate)

	return nil
}
