package analyses

import (
	"errors"
	"fmt"

	"resume-reviser/internal/llm"
)

var ErrValidation = errors.New("validation failed")

const (
	ErrorCodeValidation  = "VALIDATION_ERROR"
	ErrorCodeRateLimited = "RATE_LIMITED"
	ErrorCodeLLM         = "LLM_ERROR"
	ErrorCodeInternal    = "INTERNAL_ERROR"
)

// Kind classifies analysis failures.
type Kind string

const (
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindRateLimit  Kind = "rate_limit"
	KindProvider   Kind = "provider"
)

// Error is returned by Service.Analyze for every failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("analysis %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("analysis %s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message, Err: ErrValidation}
}

func classifyProviderError(err error) *Error {
	switch {
	case errors.Is(err, llm.ErrAuth):
		return &Error{Kind: KindAuth, Message: "completion provider rejected credentials", Err: err}
	case errors.Is(err, llm.ErrRateLimited):
		return &Error{Kind: KindRateLimit, Message: "completion provider rate limit reached", Err: err}
	default:
		return &Error{Kind: KindProvider, Message: "completion failed", Err: err}
	}
}
