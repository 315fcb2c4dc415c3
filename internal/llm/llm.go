package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Completer abstracts a remote text-completion provider.
type Completer interface {
	Complete(ctx context.Context, req Request) (Completion, error)
}

// Request is a single-turn completion: one system instruction and one user message.
type Request struct {
	Model     string
	MaxTokens int
	System    string
	User      string
}

// Completion is the provider reply. Text is the first text segment of the reply.
type Completion struct {
	Text         string
	InputTokens  int64
	OutputTokens int64
}

var (
	// ErrAuth means the provider rejected the configured credentials.
	ErrAuth = errors.New("llm: provider rejected credentials")
	// ErrRateLimited means the provider is throttling requests.
	ErrRateLimited = errors.New("llm: provider rate limit reached")
	// ErrEmptyResponse means the reply carried no text segment.
	ErrEmptyResponse = errors.New("llm: response has no text content")
)

// ProviderError wraps a failed provider call with its HTTP status.
type ProviderError struct {
	Provider string
	Status   int
	Message  string
	kind     error
	cause    error
}

func (e *ProviderError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" && e.cause != nil {
		msg = e.cause.Error()
	}
	if e.Status > 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.Status, msg)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

// Unwrap exposes both the classification sentinel and the SDK error.
func (e *ProviderError) Unwrap() []error {
	var out []error
	if e.kind != nil {
		out = append(out, e.kind)
	}
	if e.cause != nil {
		out = append(out, e.cause)
	}
	return out
}

// NewProviderError classifies a provider failure by HTTP status.
func NewProviderError(provider string, status int, message string, cause error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Status:   status,
		Message:  message,
		kind:     kindForStatus(status),
		cause:    cause,
	}
}

func kindForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrAuth
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return nil
	}
}
