package scrape

import (
	"time"

	"resume-reviser/internal/shared/telemetry"
)

// Scraper locates the main region of a page and runs a Strategy over its text.
type Scraper struct {
	Strategy Strategy
	Now      func() time.Time
}

// New returns a Scraper using the default heuristic.
func New() *Scraper {
	return &Scraper{Strategy: NewHeuristic(), Now: time.Now}
}

// FromHTML never returns an error: failures are reported through JobData.Error.
func (s *Scraper) FromHTML(html, pageURL string) JobData {
	text, found, err := MainText(html)
	if err != nil {
		telemetry.Warn("scrape.failed", map[string]any{"url": pageURL, "err": err})
		return JobData{Error: err.Error()}
	}
	if !found {
		return JobData{}
	}

	data := s.strategy().Extract(text)
	if data.Failed() {
		telemetry.Warn("scrape.failed", map[string]any{"url": pageURL, "err": data.Error})
		return JobData{Error: data.Error}
	}
	data.URL = pageURL
	data.ScrapedAt = s.now().UnixMilli()
	return data
}

func (s *Scraper) strategy() Strategy {
	if s.Strategy == nil {
		return NewHeuristic()
	}
	return s.Strategy
}

func (s *Scraper) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
