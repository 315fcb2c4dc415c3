package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"resume-reviser/internal/llm"
)

const providerName = "gemini"

// Client implements llm.Completer on top of the Gemini API.
type Client struct {
	models *genai.Models
}

// NewClient constructs a Gemini client. baseURL may be empty.
func NewClient(ctx context.Context, apiKey, baseURL string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{models: client.Models}, nil
}

// Complete sends the system instruction and a single user turn.
func (c *Client) Complete(ctx context.Context, req llm.Request) (llm.Completion, error) {
	resp, err := c.models.GenerateContent(ctx, req.Model, genai.Text(req.User), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		MaxOutputTokens:   int32(req.MaxTokens),
	})
	if err != nil {
		return llm.Completion{}, classify(err)
	}

	text, ok := firstText(resp)
	if !ok {
		return llm.Completion{}, llm.NewProviderError(providerName, 0, "", llm.ErrEmptyResponse)
	}
	out := llm.Completion{Text: text}
	if resp.UsageMetadata != nil {
		out.InputTokens = int64(resp.UsageMetadata.PromptTokenCount)
		out.OutputTokens = int64(resp.UsageMetadata.CandidatesTokenCount)
	}
	return out, nil
}

func firstText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return "", false
	}
	for _, part := range content.Parts {
		if part != nil && part.Text != "" {
			return part.Text, true
		}
	}
	return "", false
}

func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return llm.NewProviderError(providerName, apiErr.Code, apiErr.Message, err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return llm.NewProviderError(providerName, apiErrPtr.Code, apiErrPtr.Message, err)
	}
	return llm.NewProviderError(providerName, 0, "", err)
}

var _ llm.Completer = (*Client)(nil)
