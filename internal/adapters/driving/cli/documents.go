package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List ingested documents",
	Long:  `Lists every ingested document with its analysis status, newest first.`,
	RunE:  runDocumentsList,
}

func init() {
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	docs, err := catalogService.ListDocuments(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents ingested yet. Run 'courserec ingest <file>' to add some.")
		return nil
	}

	cmd.Println(headingStyle.Render("Documents"))
	cmd.Println()
	for _, d := range docs {
		cmd.Printf("  %s\n", titleStyle.Render(d.DisplayTitle()))
		cmd.Printf("    File:     %s (%d bytes)\n", d.Filename, d.Size)
		cmd.Printf("    Status:   %s\n", d.Status)
		cmd.Printf("    Uploaded: %s\n", d.UploadedAt.Format("2006-01-02 15:04:05"))
		if d.Keywords != "" {
			cmd.Printf("    %s\n", mutedStyle.Render("tags: "+d.Keywords))
		}
		cmd.Println()
	}
	cmd.Printf("Total: %d documents\n", len(docs))

	return nil
}
