package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"resume-reviser/internal/relay"
	"resume-reviser/internal/scrape"
	"resume-reviser/internal/ui"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Extract title, company and description from a job posting",
	Long:  "Scrape a job posting either by rendering --url in headless Chrome or by reading a saved --html snapshot.",
	RunE:  runScrape,
}

var (
	scrapeURL    string
	scrapeHTML   string
	scrapeRemote bool
)

func init() {
	scrapeCmd.Flags().StringVar(&scrapeURL, "url", "", "job posting URL to render")
	scrapeCmd.Flags().StringVar(&scrapeHTML, "html", "", "path to a saved HTML snapshot")
	scrapeCmd.Flags().BoolVar(&scrapeRemote, "remote", false, "scrape on the backend instead of locally")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, ok := scrapeJob(cmd.Context(), cfg, scrapeURL, scrapeHTML, scrapeRemote)
	if !ok {
		ui.Show(cmd.ErrOrStderr(), ui.Warning, msgAutoFillFailed)
		return nil
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return err
	}
	ui.Show(cmd.ErrOrStderr(), ui.Success, "Job description auto-filled.")
	return nil
}

// scrapeJob never fails hard: any problem is reported as ok=false so callers
// can fall back to manual input.
func scrapeJob(ctx context.Context, cfg cliConfig, pageURL, htmlPath string, remote bool) (scrape.JobData, bool) {
	page := pageSource(cfg, pageURL, htmlPath)
	if page == nil {
		return scrape.JobData{}, false
	}

	if remote {
		html, u, err := page(ctx)
		if err != nil {
			return scrape.JobData{}, false
		}
		data, err := newClient(cfg).Scrape(ctx, html, u)
		if err != nil || data.Failed() || data.Description == "" {
			return scrape.JobData{}, false
		}
		return data, true
	}

	r := relay.New(relay.StaticTab{Endpoint: &relay.ContentEndpoint{Page: page, Scraper: scrape.New()}})
	r.Timeout = cfg.RenderTimeout + 5*time.Second

	resp := r.Send(ctx, relay.Message{
		Action:  relay.ActionRelayToContent,
		Payload: &relay.Message{Action: relay.ActionGetJobData},
	})
	if !resp.Success {
		return scrape.JobData{}, false
	}
	inner, ok := resp.Data.(relay.Response)
	if !ok || !inner.Success {
		return scrape.JobData{}, false
	}
	data, ok := inner.Data.(scrape.JobData)
	if !ok || data.Failed() || data.Description == "" {
		return scrape.JobData{}, false
	}
	return data, true
}

// pageSource plays the role of the active tab; nil means there is none.
func pageSource(cfg cliConfig, pageURL, htmlPath string) relay.PageSource {
	switch {
	case htmlPath != "":
		return func(context.Context) (string, string, error) {
			data, err := os.ReadFile(htmlPath)
			if err != nil {
				return "", "", fmt.Errorf("read %s: %w", htmlPath, err)
			}
			return string(data), pageURL, nil
		}
	case pageURL != "":
		return func(ctx context.Context) (string, string, error) {
			html, err := scrape.Render(ctx, pageURL, cfg.RenderTimeout)
			return html, pageURL, err
		}
	default:
		return nil
	}
}

const msgAutoFillFailed = "Could not auto-fill. Paste the job description manually."

var (
	errNoJobDescription = errors.New("no job description provided")
	errAutoFillFailed   = errors.New("could not scrape a job description")
)
