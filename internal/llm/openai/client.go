package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"resume-reviser/internal/llm"
)

const (
	providerName   = "openai"
	defaultBaseURL = "https://api.openai.com/v1"
)

// Client implements llm.Completer using OpenAI Chat Completions.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new OpenAI client. baseURL may be empty.
func NewClient(apiKey, baseURL string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int64 `json:"prompt_tokens"`
		CompletionTokens int64 `json:"completion_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends a system and a user message and returns the first choice.
func (c *Client) Complete(ctx context.Context, req llm.Request) (llm.Completion, error) {
	payload, err := json.Marshal(chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		MaxCompletionTokens: req.MaxTokens,
	})
	if err != nil {
		return llm.Completion{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return llm.Completion{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return llm.Completion{}, llm.NewProviderError(providerName, 0, "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return llm.Completion{}, llm.NewProviderError(providerName, resp.StatusCode, "", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		if resp.StatusCode >= 400 {
			return llm.Completion{}, llm.NewProviderError(providerName, resp.StatusCode, strings.TrimSpace(string(body)), nil)
		}
		return llm.Completion{}, llm.NewProviderError(providerName, resp.StatusCode, "", fmt.Errorf("openai response parse: %w", err))
	}
	if parsed.Error != nil || resp.StatusCode >= 400 {
		msg := strings.TrimSpace(string(body))
		if parsed.Error != nil {
			msg = fmt.Sprintf("%s (%s)", parsed.Error.Message, parsed.Error.Type)
		}
		return llm.Completion{}, llm.NewProviderError(providerName, resp.StatusCode, msg, nil)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return llm.Completion{}, llm.NewProviderError(providerName, resp.StatusCode, "", llm.ErrEmptyResponse)
	}

	out := llm.Completion{Text: parsed.Choices[0].Message.Content}
	if parsed.Usage != nil {
		out.InputTokens = parsed.Usage.PromptTokens
		out.OutputTokens = parsed.Usage.CompletionTokens
	}
	return out, nil
}

var _ llm.Completer = (*Client)(nil)
