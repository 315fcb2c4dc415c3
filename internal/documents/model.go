package documents

import "errors"

var (
	ErrNoFile       = errors.New("no file uploaded")
	ErrFileTooLarge = errors.New("file exceeds upload limit")
)

// Parsed is the normalized text of one uploaded document.
type Parsed struct {
	FileName  string
	MimeType  string
	Text      string
	CharCount int
}
