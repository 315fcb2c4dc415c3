package scrape

import (
	"fmt"
	"strings"
)

// Strategy maps the visible text of a page to job fields. Implementations must
// not panic past their own boundary.
type Strategy interface {
	Extract(text string) JobData
}

const (
	DefaultDescriptionMarker = "About the job"
	DefaultTrailingMarker    = "Promoted by"
	DefaultMetadataLines     = 5
)

// Heuristic reads company from the first line, title from the second, and the
// description from a known section heading.
type Heuristic struct {
	DescriptionMarker string
	TrailingMarker    string
	MetadataLines     int
}

// NewHeuristic returns the heuristic tuned for LinkedIn job pages.
func NewHeuristic() Heuristic {
	return Heuristic{
		DescriptionMarker: DefaultDescriptionMarker,
		TrailingMarker:    DefaultTrailingMarker,
		MetadataLines:     DefaultMetadataLines,
	}
}

// Extract applies the heuristic. Description falls back, in order, to the text
// after DescriptionMarker, the text before TrailingMarker, the lines after the
// metadata block, and finally the whole text.
func (h Heuristic) Extract(text string) (data JobData) {
	defer func() {
		if r := recover(); r != nil {
			data = JobData{Error: fmt.Sprint(r)}
		}
	}()

	lines := nonEmptyLines(text)
	if len(lines) > 1 {
		data.Company = lines[0]
		data.Title = lines[1]
	}

	data.Description = h.description(text, lines)
	if data.Description == "" {
		data.Description = text
	}
	return data
}

func (h Heuristic) description(text string, lines []string) string {
	if h.DescriptionMarker != "" {
		if idx := strings.Index(text, h.DescriptionMarker); idx >= 0 {
			return strings.TrimSpace(text[idx+len(h.DescriptionMarker):])
		}
	}
	if h.TrailingMarker != "" {
		if idx := strings.Index(text, h.TrailingMarker); idx > 0 {
			return strings.TrimSpace(text[:idx])
		}
	}
	if len(lines) > h.MetadataLines {
		return strings.TrimSpace(strings.Join(lines[h.MetadataLines:], "\n"))
	}
	return ""
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
