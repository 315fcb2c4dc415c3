// Package ui renders status banners and analysis results for terminal clients.
package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Severity of a status banner.
type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Warning Severity = "warning"
	Error   Severity = "error"
)

// AutoDismiss is how long non-error banners stay visible in interactive clients.
const AutoDismiss = 3 * time.Second

var (
	bannerBase = lipgloss.NewStyle().Padding(0, 1).Bold(true)

	bannerStyles = map[Severity]lipgloss.Style{
		Info:    bannerBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("24")),
		Success: bannerBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("28")),
		Warning: bannerBase.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
		Error:   bannerBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")),
	}

	sectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	mutedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	bodyStyle         = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
)

// Banner is a one-line status message.
type Banner struct {
	Severity Severity
	Message  string
}

// Transient reports whether the banner should auto-dismiss. Errors persist
// until replaced.
func (b Banner) Transient() bool {
	return b.Severity != Error
}

// Render returns the styled banner line.
func (b Banner) Render() string {
	style, ok := bannerStyles[b.Severity]
	if !ok {
		style = bannerStyles[Info]
	}
	return style.Render(b.Message)
}

// Show writes a banner to w.
func Show(w io.Writer, severity Severity, format string, args ...any) {
	fmt.Fprintln(w, Banner{Severity: severity, Message: fmt.Sprintf(format, args...)}.Render())
}

// Results holds the sections shown after an analysis.
type Results struct {
	BulletPoints       []string
	RevisedResume      string
	RevisedCoverLetter string
	InputTokens        int64
	OutputTokens       int64
}

// RenderResults lays out the bullet list, the revised resume and, when
// present, the revised cover letter.
func RenderResults(r Results) string {
	var b strings.Builder

	b.WriteString(sectionTitleStyle.Render("Changes"))
	b.WriteString("\n")
	if len(r.BulletPoints) == 0 {
		b.WriteString(mutedStyle.Render("No specific changes identified."))
		b.WriteString("\n")
	}
	for _, point := range r.BulletPoints {
		b.WriteString("  • ")
		b.WriteString(point)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionTitleStyle.Render("Revised resume"))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render(r.RevisedResume))
	b.WriteString("\n")

	if strings.TrimSpace(r.RevisedCoverLetter) != "" {
		b.WriteString("\n")
		b.WriteString(sectionTitleStyle.Render("Revised cover letter"))
		b.WriteString("\n")
		b.WriteString(bodyStyle.Render(r.RevisedCoverLetter))
		b.WriteString("\n")
	}

	if r.InputTokens > 0 || r.OutputTokens > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("tokens: %d in / %d out", r.InputTokens, r.OutputTokens)))
		b.WriteString("\n")
	}
	return b.String()
}
