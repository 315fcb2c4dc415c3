package scrape

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicDescriptionAfterMarker(t *testing.T) {
	text := "Acme Corp\nBackend Engineer\nRemote\n$150k\nAbout the job\nWe need a backend engineer with 5 years of Go.\nBenefits below."
	got := NewHeuristic().Extract(text)

	assert.Equal(t, "Acme Corp", got.Company)
	assert.Equal(t, "Backend Engineer", got.Title)
	assert.Equal(t, "We need a backend engineer with 5 years of Go.\nBenefits below.", got.Description)
	assert.Empty(t, got.Error)
}

func TestHeuristicDescriptionBeforeTrailingMarker(t *testing.T) {
	text := "Acme Corp\nBackend Engineer\nBuild APIs all day.\nPromoted by hirer\nResponses managed off LinkedIn"
	got := NewHeuristic().Extract(text)

	assert.Equal(t, "Acme Corp\nBackend Engineer\nBuild APIs all day.", got.Description)
}

func TestHeuristicDescriptionAfterMetadataLines(t *testing.T) {
	lines := []string{"Acme", "Engineer", "Remote", "Full-time", "Posted 2 days ago", "Line six", "  ", "Line seven"}
	got := NewHeuristic().Extract(strings.Join(lines, "\n"))

	assert.Equal(t, "Line six\nLine seven", got.Description)
}

func TestHeuristicFallsBackToWholeText(t *testing.T) {
	text := "Acme\nEngineer\nRemote"
	got := NewHeuristic().Extract(text)

	assert.Equal(t, text, got.Description)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "Engineer", got.Title)
}

func TestHeuristicSingleLineHasNoTitle(t *testing.T) {
	got := NewHeuristic().Extract("Only one line here")

	assert.Empty(t, got.Company)
	assert.Empty(t, got.Title)
	assert.Equal(t, "Only one line here", got.Description)
}

func TestHeuristicRecoversFromPanic(t *testing.T) {
	// A negative metadata count makes the slice expression panic.
	h := Heuristic{MetadataLines: -1}
	got := h.Extract("Acme\nEngineer")

	assert.NotEmpty(t, got.Error)
	assert.Empty(t, got.Company)
	assert.Empty(t, got.Title)
	assert.Empty(t, got.Description)
}
