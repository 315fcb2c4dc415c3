package analyses

import (
	"regexp"
	"strings"
)

const (
	tagBulletPoints       = "bullet_points"
	tagRevisedResume      = "revised_resume"
	tagRevisedCoverLetter = "revised_cover_letter"
)

var sectionPatterns = map[string]*regexp.Regexp{
	tagBulletPoints:       sectionPattern(tagBulletPoints),
	tagRevisedResume:      sectionPattern(tagRevisedResume),
	tagRevisedCoverLetter: sectionPattern(tagRevisedCoverLetter),
}

func sectionPattern(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)<` + tag + `>(.*?)</` + tag + `>`)
}

// ParseResponse extracts the tagged sections from a model reply. Missing or
// unterminated sections yield empty values; it never fails.
func ParseResponse(text string) Result {
	return Result{
		BulletPoints:       parseBullets(extractSection(text, tagBulletPoints)),
		RevisedResume:      extractSection(text, tagRevisedResume),
		RevisedCoverLetter: extractSection(text, tagRevisedCoverLetter),
	}
}

func extractSection(text, tag string) string {
	match := sectionPatterns[tag].FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// parseBullets keeps dash-prefixed lines only; anything else is model noise.
func parseBullets(raw string) []string {
	bullets := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") {
			continue
		}
		bullets = append(bullets, strings.TrimSpace(line[1:]))
	}
	return bullets
}
