package anthropic

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"resume-reviser/internal/llm"
)

const providerName = "anthropic"

// Client implements llm.Completer using the Anthropic Messages API.
type Client struct {
	client sdk.Client
}

// Option customizes the underlying SDK client.
type Option = option.RequestOption

// WithBaseURL points the client at a different API host.
func WithBaseURL(url string) Option {
	return option.WithBaseURL(url)
}

// WithHTTPClient swaps the transport.
func WithHTTPClient(hc *http.Client) Option {
	return option.WithHTTPClient(hc)
}

// NewClient constructs a client. The SDK's automatic retries are disabled so
// each Complete call maps to exactly one request.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	all := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	all = append(all, opts...)
	return &Client{client: sdk.NewClient(all...)}, nil
}

// Complete sends one system prompt and one user message and returns the first text block.
func (c *Client) Complete(ctx context.Context, req llm.Request) (llm.Completion, error) {
	params := sdk.MessageNewParams{
		Model:     sdk.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		System: []sdk.TextBlockParam{
			{Text: req.System},
		},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.User)),
		},
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return llm.Completion{}, classify(err)
	}

	text, ok := firstText(msg.Content)
	if !ok {
		return llm.Completion{}, llm.NewProviderError(providerName, 0, "", llm.ErrEmptyResponse)
	}
	return llm.Completion{
		Text:         text,
		InputTokens:  msg.Usage.InputTokens,
		OutputTokens: msg.Usage.OutputTokens,
	}, nil
}

func firstText(blocks []sdk.ContentBlockUnion) (string, bool) {
	for _, block := range blocks {
		if block.Type == "text" {
			return block.Text, true
		}
	}
	return "", false
}

func classify(err error) error {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		return llm.NewProviderError(providerName, apiErr.StatusCode, "", err)
	}
	return llm.NewProviderError(providerName, 0, "", err)
}

var _ llm.Completer = (*Client)(nil)
