package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"resume-reviser/internal/client"
	"resume-reviser/internal/scrape"
)

// cliConfig is the resolved client configuration.
type cliConfig struct {
	BackendURL     string
	DraftDB        string
	RequestTimeout time.Duration
	RenderTimeout  time.Duration
}

// rawCLIConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawCLIConfig struct {
	BackendURL     string `yaml:"backend_url"`
	DraftDB        string `yaml:"draft_db"`
	RequestTimeout string `yaml:"request_timeout"`
	RenderTimeout  string `yaml:"render_timeout"`
}

func defaultCLIConfig() cliConfig {
	home, _ := os.UserHomeDir()
	return cliConfig{
		BackendURL:     client.DefaultBaseURL,
		DraftDB:        filepath.Join(home, ".reviser", "drafts.db"),
		RequestTimeout: client.DefaultTimeout,
		RenderTimeout:  scrape.DefaultRenderTimeout,
	}
}

// defaultConfigPath returns ~/.reviser.yaml.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".reviser.yaml"
	}
	return filepath.Join(home, ".reviser.yaml")
}

// loadCLIConfig reads path over the defaults. A missing file is not an error
// unless the path was given explicitly.
func loadCLIConfig(path string, explicit bool) (cliConfig, error) {
	cfg := defaultCLIConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var raw rawCLIConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &raw); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if raw.BackendURL != "" {
		cfg.BackendURL = raw.BackendURL
	}
	if raw.DraftDB != "" {
		cfg.DraftDB = raw.DraftDB
	}
	if raw.RequestTimeout != "" {
		d, err := time.ParseDuration(raw.RequestTimeout)
		if err != nil {
			return cfg, fmt.Errorf("parse request_timeout %q: %w", raw.RequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	if raw.RenderTimeout != "" {
		d, err := time.ParseDuration(raw.RenderTimeout)
		if err != nil {
			return cfg, fmt.Errorf("parse render_timeout %q: %w", raw.RenderTimeout, err)
		}
		cfg.RenderTimeout = d
	}
	return cfg, nil
}
