package documents

// ParseResponse is the outward-facing representation of a parsed document.
type ParseResponse struct {
	Text      string `json:"text"`
	CharCount int    `json:"charCount"`
}

func toResponse(p Parsed) ParseResponse {
	return ParseResponse{Text: p.Text, CharCount: p.CharCount}
}
