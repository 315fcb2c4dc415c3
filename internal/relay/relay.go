// Package relay forwards requests from a client surface to the page-side
// content endpoint and waits for exactly one reply.
package relay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-reviser/internal/shared/telemetry"
)

const (
	ActionRelayToContent = "RELAY_TO_CONTENT"
	ActionGetJobData     = "GET_JOB_DATA"

	DefaultTimeout = 10 * time.Second
)

const (
	msgNoActiveTab      = "No active tab"
	msgContentMissing   = "Content script not available on this page"
	msgUnsupportedRelay = "Unsupported action"
)

var (
	ErrNoActiveTab       = errors.New("relay: no active tab")
	ErrUnsupportedAction = errors.New("relay: unsupported action")
)

// Message is a request envelope.
type Message struct {
	Action  string   `json:"action"`
	Payload *Message `json:"payload,omitempty"`
}

// Response is the reply envelope. Data is set on success, Error otherwise.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Endpoint handles a message on the page side.
type Endpoint interface {
	Handle(ctx context.Context, msg Message) (any, error)
}

// TabLocator resolves the endpoint of the active tab.
type TabLocator interface {
	ActiveTab(ctx context.Context) (Endpoint, error)
}

// Relay forwards RELAY_TO_CONTENT payloads to the active tab's endpoint.
type Relay struct {
	Tabs    TabLocator
	Timeout time.Duration
}

// New constructs a Relay with the default timeout.
func New(tabs TabLocator) *Relay {
	return &Relay{Tabs: tabs, Timeout: DefaultTimeout}
}

type reply struct {
	data any
	err  error
}

// Send answers msg. Failures are reported in the Response, never returned.
func (r *Relay) Send(ctx context.Context, msg Message) Response {
	if msg.Action != ActionRelayToContent || msg.Payload == nil {
		return Response{Success: false, Error: msgUnsupportedRelay}
	}

	endpoint, err := r.Tabs.ActiveTab(ctx)
	if err != nil || endpoint == nil {
		return Response{Success: false, Error: msgNoActiveTab}
	}

	data, err := r.forward(ctx, endpoint, *msg.Payload)
	if err != nil {
		telemetry.Warn("relay.failed", map[string]any{"action": msg.Payload.Action, "err": err})
		return Response{Success: false, Error: msgContentMissing}
	}
	return Response{Success: true, Data: data}
}

// forward runs the endpoint and waits on a single-slot channel, so a late
// reply after timeout never blocks the endpoint goroutine.
func (r *Relay) forward(ctx context.Context, endpoint Endpoint, payload Message) (any, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pending := make(chan reply, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				pending <- reply{err: fmt.Errorf("endpoint panic: %v", p)}
			}
		}()
		data, err := endpoint.Handle(ctx, payload)
		pending <- reply{data: data, err: err}
	}()

	select {
	case rep := <-pending:
		return rep.data, rep.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
