package llm

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderErrorClassification(t *testing.T) {
	cause := errors.New("sdk failure")

	tests := []struct {
		name      string
		status    int
		wantAuth  bool
		wantLimit bool
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantAuth: true},
		{name: "rate limited", status: http.StatusTooManyRequests, wantLimit: true},
		{name: "overloaded", status: 529},
		{name: "transport", status: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("complete: %w", NewProviderError("anthropic", tt.status, "", cause))
			assert.Equal(t, tt.wantAuth, errors.Is(err, ErrAuth))
			assert.Equal(t, tt.wantLimit, errors.Is(err, ErrRateLimited))
			assert.True(t, errors.Is(err, cause), "cause must stay reachable")

			var perr *ProviderError
			assert.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.status, perr.Status)
		})
	}
}

func TestProviderErrorMessage(t *testing.T) {
	err := NewProviderError("gemini", 500, "backend exploded", nil)
	assert.Equal(t, "gemini: status 500: backend exploded", err.Error())

	err = NewProviderError("anthropic", 0, "", errors.New("dial tcp: refused"))
	assert.Equal(t, "anthropic: dial tcp: refused", err.Error())
}
