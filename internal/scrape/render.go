package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"resume-reviser/internal/shared/telemetry"
)

// DefaultRenderTimeout bounds a single headless render.
const DefaultRenderTimeout = 30 * time.Second

// Render loads pageURL in headless Chrome and returns the rendered HTML. Job
// boards build their DOM client-side, so a plain GET rarely contains the
// description. Requires Chrome or Chromium on the host.
func Render(ctx context.Context, pageURL string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = DefaultRenderTimeout
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	start := time.Now()
	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		// job details are injected after the shell loads
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	telemetry.Info("scrape.rendered", map[string]any{
		"url":         pageURL,
		"bytes":       len(html),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return html, nil
}
