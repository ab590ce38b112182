package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialise storage and install the sample catalog",
	Long: `Creates the local database if needed and installs the built-in sample
courses. Safe to run repeatedly: existing courses are left untouched.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	if corpusStore == nil {
		return errors.New("corpus store not configured")
	}

	if err := corpusStore.Seed(context.Background()); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	cmd.Printf("%s Storage initialised and sample catalog installed.\n", successStyle.Render("ok"))
	return nil
}
