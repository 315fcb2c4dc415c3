package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-reviser/internal/ui"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the backend and its API key configuration",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	health, err := newClient(cfg).Health(cmd.Context())
	if err != nil {
		ui.Show(cmd.ErrOrStderr(), ui.Error, "Backend unreachable at %s", cfg.BackendURL)
		return err
	}

	if health.APIKey != "configured" {
		ui.Show(cmd.ErrOrStderr(), ui.Warning, "Backend is up but the completion API key is %s", health.APIKey)
	} else {
		ui.Show(cmd.ErrOrStderr(), ui.Success, "Backend is up and the API key is configured")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "status=%s apiKey=%s\n", health.Status, health.APIKey)
	return nil
}
