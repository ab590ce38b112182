package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theatilgan/courserec-cli/internal/core/domain"
)

var (
	recommendCourses   bool
	recommendDocuments bool
	recommendJSON      bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [text]",
	Short: "Recommend courses and documents for a study question",
	Long: `Extracts keywords from your message and matches them against the
course catalog and the ingested document corpus. Without flags both
corpora are searched; --courses or --documents narrows the query.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().BoolVar(&recommendCourses, "courses", false, "match courses only")
	recommendCmd.Flags().BoolVar(&recommendDocuments, "documents", false, "match documents only")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if recommendService == nil {
		return errors.New("recommendation service not configured")
	}

	text := strings.Join(args, " ")
	target := resolveTarget()

	set, err := recommendService.Recommend(context.Background(), text, target)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	if recommendJSON {
		data, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Print(renderRecommendationSet(set, target))
	return nil
}

// resolveTarget maps the flag pair onto a query target. Both flags or
// neither means both corpora.
func resolveTarget() domain.Target {
	switch {
	case recommendCourses && !recommendDocuments:
		return domain.TargetCourses
	case recommendDocuments && !recommendCourses:
		return domain.TargetDocuments
	default:
		return domain.TargetBoth
	}
}
