package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxFileNameRunes = 128
	fallbackFileName = "upload"
)

// CleanFileName reduces a client-supplied file name to a single path element
// that is safe to log. Directory parts, traversal and control characters are
// dropped; an empty result becomes "upload".
func CleanFileName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(strings.ReplaceAll(name, "..", ""))
	if utf8.RuneCountInString(name) > maxFileNameRunes {
		name = string([]rune(name)[:maxFileNameRunes])
	}
	if name == "" || name == "." {
		return fallbackFileName
	}
	return name
}
