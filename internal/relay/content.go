package relay

import (
	"context"
	"fmt"

	"resume-reviser/internal/scrape"
)

// PageSource returns the current HTML and URL of a page.
type PageSource func(ctx context.Context) (html, url string, err error)

// ContentEndpoint is the page-side handler. It answers GET_JOB_DATA by
// scraping the page it is attached to.
type ContentEndpoint struct {
	Page    PageSource
	Scraper *scrape.Scraper
}

// Handle implements Endpoint. The returned value is itself a Response so the
// relay reply nests it the same way the extension does.
func (e *ContentEndpoint) Handle(ctx context.Context, msg Message) (any, error) {
	if msg.Action != ActionGetJobData {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAction, msg.Action)
	}
	html, url, err := e.Page(ctx)
	if err != nil {
		return Response{Success: false, Error: err.Error()}, nil
	}
	scraper := e.Scraper
	if scraper == nil {
		scraper = scrape.New()
	}
	return Response{Success: true, Data: scraper.FromHTML(html, url)}, nil
}

// StaticTab is a TabLocator with a fixed endpoint; nil means no tab is open.
type StaticTab struct {
	Endpoint Endpoint
}

// ActiveTab implements TabLocator.
func (t StaticTab) ActiveTab(context.Context) (Endpoint, error) {
	if t.Endpoint == nil {
		return nil, ErrNoActiveTab
	}
	return t.Endpoint, nil
}
