// Package scrape turns job-posting pages into title, company and description fields.
package scrape

// JobData is the scraper output. Error is set only when extraction failed, in
// which case every other field is empty.
type JobData struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	ScrapedAt   int64  `json:"scrapedAt,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Failed reports whether the scraper gave up on the page.
func (d JobData) Failed() bool {
	return d.Error != ""
}
