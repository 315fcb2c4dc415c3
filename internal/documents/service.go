package documents

import (
	"context"
	"errors"
	"fmt"
	"io"

	"resume-reviser/internal/extract"
	"resume-reviser/internal/shared/metrics"
	"resume-reviser/internal/shared/telemetry"
	"resume-reviser/internal/shared/util"
)

// MaxFileSize is the largest accepted upload.
const MaxFileSize = 10 << 20 // 10MiB

// ExtractFunc converts a document payload to plain text.
type ExtractFunc func(ctx context.Context, data []byte, mimeType, fileName string) (string, error)

// Service turns uploaded documents into text. Nothing is stored.
type Service struct {
	Extract ExtractFunc
}

// NewService constructs a Service backed by the extract package.
func NewService() *Service {
	return &Service{Extract: extract.ExtractTextFromBytes}
}

// Parse checks the declared type, reads at most MaxFileSize bytes and extracts text.
// Disallowed types are rejected before the payload is read.
func (s *Service) Parse(ctx context.Context, fileName, mimeType string, r io.Reader) (Parsed, error) {
	fileName = util.CleanFileName(fileName)
	if !extract.IsAllowed(mimeType) {
		metrics.IncFileRejected()
		return Parsed{}, fmt.Errorf("%w: %s", extract.ErrUnsupportedMime, mimeType)
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return Parsed{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxFileSize {
		metrics.IncFileRejected()
		return Parsed{}, ErrFileTooLarge
	}

	text, err := s.Extract(ctx, data, mimeType, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedMime) {
			metrics.IncFileRejected()
		}
		return Parsed{}, err
	}

	metrics.IncFileParsed()
	parsed := Parsed{
		FileName:  fileName,
		MimeType:  mimeType,
		Text:      text,
		CharCount: extract.CharCount(text),
	}
	telemetry.Info("document.parsed", map[string]any{
		"file_name":  fileName,
		"mime_type":  mimeType,
		"size_bytes": len(data),
		"char_count": parsed.CharCount,
	})
	return parsed, nil
}
