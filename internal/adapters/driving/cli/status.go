package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
)

// statusProbeTimeout bounds the backend connection test.
const statusProbeTimeout = 10 * time.Second

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check backend and storage health",
	Long: `Probes the language-understanding backend with a test message and
reports whether keyword extraction will use the model or fall back to
local frequency analysis.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if recommendService == nil {
		return errors.New("recommendation service not configured")
	}

	cmd.Println(headingStyle.Render("Status"))
	cmd.Println()

	ctx, cancel := context.WithTimeout(context.Background(), statusProbeTimeout)
	defer cancel()

	if recommendService.TestConnection(ctx) {
		cmd.Printf("  Backend:  %s (model %s)\n", successStyle.Render("reachable"), llmModelName)
	} else {
		cmd.Printf("  Backend:  %s (keyword extraction will use the local fallback)\n",
			errorStyle.Render("unreachable"))
	}

	if corpusStore != nil {
		cmd.Printf("  Storage:  %s\n", successStyle.Render("ready"))
	} else {
		cmd.Printf("  Storage:  %s\n", errorStyle.Render("not configured"))
	}

	return nil
}
