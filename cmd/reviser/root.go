package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"resume-reviser/internal/client"
	"resume-reviser/internal/shared/telemetry"
)

var (
	cfgPath    string
	backendURL string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "reviser",
	Short:         "Tailor a resume to a job posting",
	Long:          "reviser sends a job description and your resume to the resume reviser backend and prints the suggested changes, a revised resume and an optional revised cover letter.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose {
			telemetry.SetOutput(io.Discard)
		} else {
			telemetry.SetOutput(os.Stderr)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: ~/.reviser.yaml)")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write structured logs to stderr")
}

// loadConfig resolves the config path and parses it.
// Priority: --config > REVISER_CONFIG env var > ~/.reviser.yaml
func loadConfig() (cliConfig, error) {
	path, explicit := cfgPath, cfgPath != ""
	if path == "" {
		if env := os.Getenv("REVISER_CONFIG"); env != "" {
			path, explicit = env, true
		} else {
			path = defaultConfigPath()
		}
	}
	cfg, err := loadCLIConfig(path, explicit)
	if err != nil {
		return cfg, err
	}
	if backendURL != "" {
		cfg.BackendURL = backendURL
	}
	return cfg, nil
}

func newClient(cfg cliConfig) *client.Client {
	return client.New(cfg.BackendURL, cfg.RequestTimeout)
}
