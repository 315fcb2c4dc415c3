package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resume-reviser/internal/analyses"
	"resume-reviser/internal/client"
	"resume-reviser/internal/draft"
	"resume-reviser/internal/render"
	"resume-reviser/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Tailor your resume (and optional cover letter) to a job description",
	Long: `Send a job description and your resume to the backend and print the suggested
changes, the revised resume and, when a cover letter is given, the revised cover letter.

The job description comes from --job (a text file, "-" for stdin), or is scraped
from --job-url / --job-html. The resume comes from --resume (PDF, DOCX or text)
or from the cached draft.`,
	RunE: runAnalyze,
}

var (
	analyzeJob     string
	analyzeJobURL  string
	analyzeJobHTML string
	analyzeResume  string
	analyzeCover   string
	analyzeOut     string
	analyzeJSON    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", `job description text file ("-" reads stdin)`)
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "scrape the job description from this URL")
	analyzeCmd.Flags().StringVar(&analyzeJobHTML, "job-html", "", "scrape the job description from a saved HTML page")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "resume file (default: cached draft)")
	analyzeCmd.Flags().StringVar(&analyzeCover, "cover", "", "cover letter file")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "write the revised resume to this file (.docx or text)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the raw JSON response")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	stderr := cmd.ErrOrStderr()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c := newClient(cfg)

	jobDescription, err := loadJobDescription(ctx, cmd.InOrStdin(), cfg)
	if err != nil {
		severity, msg := jobDescriptionBanner(err)
		ui.Show(stderr, severity, "%s", msg)
		return err
	}

	resumeText, err := loadResume(ctx, c, cfg)
	if err != nil {
		ui.Show(stderr, ui.Error, "Please provide your resume: %v", err)
		return err
	}

	var coverText string
	if analyzeCover != "" {
		if coverText, err = readDocument(ctx, c, analyzeCover); err != nil {
			ui.Show(stderr, ui.Error, "Error parsing file: %v", err)
			return err
		}
	}

	req := analyses.Request{
		JobDescription:  strings.TrimSpace(jobDescription),
		ResumeText:      strings.TrimSpace(resumeText),
		CoverLetterText: strings.TrimSpace(coverText),
	}
	// same thresholds as the backend, checked before any network call
	if err := analyses.Validate(req); err != nil {
		var aerr *analyses.Error
		if errors.As(err, &aerr) {
			ui.Show(stderr, ui.Error, "%s", aerr.Message)
		}
		return err
	}

	ui.Show(stderr, ui.Info, "Analyzing...")
	out, err := c.Analyze(ctx, req)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			ui.Show(stderr, ui.Error, "Error: %s", apiErr.Message)
		} else {
			ui.Show(stderr, ui.Error, "Error: %v", err)
		}
		return err
	}

	if analyzeOut != "" {
		if err := writeRevised(analyzeOut, out.RevisedResume); err != nil {
			return err
		}
	}

	if analyzeJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderResults(ui.Results{
			BulletPoints:       out.BulletPoints,
			RevisedResume:      out.RevisedResume,
			RevisedCoverLetter: out.RevisedCoverLetter,
			InputTokens:        out.Usage.InputTokens,
			OutputTokens:       out.Usage.OutputTokens,
		}))
	}
	ui.Show(stderr, ui.Success, "Analysis complete!")
	return nil
}

// writeRevised saves text as DOCX when path ends in .docx, plain text otherwise.
func writeRevised(path, text string) error {
	data := []byte(text + "\n")
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		var err error
		if data, err = render.Docx(text); err != nil {
			return fmt.Errorf("render docx: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func loadJobDescription(ctx context.Context, stdin io.Reader, cfg cliConfig) (string, error) {
	switch {
	case analyzeJob == "-":
		data, err := io.ReadAll(stdin)
		return string(data), err
	case analyzeJob != "":
		data, err := os.ReadFile(analyzeJob)
		return string(data), err
	case analyzeJobURL != "" || analyzeJobHTML != "":
		data, ok := scrapeJob(ctx, cfg, analyzeJobURL, analyzeJobHTML, false)
		if !ok {
			return "", errAutoFillFailed
		}
		return data.Description, nil
	default:
		return "", errNoJobDescription
	}
}

// jobDescriptionBanner keeps scrape failures informational; only a missing
// job description is an error.
func jobDescriptionBanner(err error) (ui.Severity, string) {
	if errors.Is(err, errAutoFillFailed) {
		return ui.Warning, msgAutoFillFailed
	}
	return ui.Error, "Please provide a job description."
}

func loadResume(ctx context.Context, c *client.Client, cfg cliConfig) (string, error) {
	if analyzeResume != "" {
		return readDocument(ctx, c, analyzeResume)
	}
	store, err := draft.Open(ctx, cfg.DraftDB)
	if err != nil {
		return "", err
	}
	defer store.Close()
	text, err := store.Load(ctx)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("no --resume given and no cached draft")
	}
	return text, nil
}
