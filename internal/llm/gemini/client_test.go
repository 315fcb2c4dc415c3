package gemini

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"resume-reviser/internal/llm"
)

func TestFirstTextSkipsEmptyParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: ""},
				{Text: "<revised_resume>x</revised_resume>"},
				{Text: "ignored"},
			}},
		}},
	}

	text, ok := firstText(resp)
	assert.True(t, ok)
	assert.Equal(t, "<revised_resume>x</revised_resume>", text)
}

func TestFirstTextNoCandidates(t *testing.T) {
	_, ok := firstText(&genai.GenerateContentResponse{})
	assert.False(t, ok)

	_, ok = firstText(nil)
	assert.False(t, ok)
}

func TestClassifyAPIError(t *testing.T) {
	err := classify(fmt.Errorf("generate: %w", genai.APIError{Code: http.StatusTooManyRequests, Message: "quota", Status: "RESOURCE_EXHAUSTED"}))
	assert.True(t, errors.Is(err, llm.ErrRateLimited))

	err = classify(genai.APIError{Code: http.StatusUnauthorized, Message: "bad key"})
	assert.True(t, errors.Is(err, llm.ErrAuth))

	err = classify(errors.New("dial tcp: timeout"))
	assert.False(t, errors.Is(err, llm.ErrAuth))
	assert.False(t, errors.Is(err, llm.ErrRateLimited))
}
