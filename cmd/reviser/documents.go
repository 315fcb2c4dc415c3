package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-reviser/internal/client"
	"resume-reviser/internal/extract"
)

// readDocument returns the text of path. Plain-text files are read locally;
// PDF and DOCX are sent to the backend for extraction.
func readDocument(ctx context.Context, c *client.Client, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	parsed, err := c.ParseFile(ctx, filepath.Base(path), extract.MimeTypeForFile(path), f)
	if err != nil {
		return "", err
	}
	return parsed.Text, nil
}
