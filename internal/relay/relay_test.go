package relay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-reviser/internal/scrape"
)

type endpointFunc func(ctx context.Context, msg Message) (any, error)

func (f endpointFunc) Handle(ctx context.Context, msg Message) (any, error) {
	return f(ctx, msg)
}

func relayMessage(action string) Message {
	return Message{Action: ActionRelayToContent, Payload: &Message{Action: action}}
}

func TestSendNoActiveTab(t *testing.T) {
	r := New(StaticTab{})
	got := r.Send(context.Background(), relayMessage(ActionGetJobData))
	assert.Equal(t, Response{Success: false, Error: "No active tab"}, got)
}

func TestSendForwardsPayload(t *testing.T) {
	var seen Message
	r := New(StaticTab{Endpoint: endpointFunc(func(_ context.Context, msg Message) (any, error) {
		seen = msg
		return "pong", nil
	})})

	got := r.Send(context.Background(), relayMessage("PING"))
	assert.Equal(t, Response{Success: true, Data: "pong"}, got)
	assert.Equal(t, "PING", seen.Action)
}

func TestSendEndpointError(t *testing.T) {
	r := New(StaticTab{Endpoint: endpointFunc(func(context.Context, Message) (any, error) {
		return nil, errors.New("receiving end does not exist")
	})})

	got := r.Send(context.Background(), relayMessage(ActionGetJobData))
	assert.Equal(t, Response{Success: false, Error: "Content script not available on this page"}, got)
}

func TestSendTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	r := &Relay{
		Tabs: StaticTab{Endpoint: endpointFunc(func(context.Context, Message) (any, error) {
			<-release
			return "late", nil
		})},
		Timeout: 20 * time.Millisecond,
	}

	start := time.Now()
	got := r.Send(context.Background(), relayMessage(ActionGetJobData))
	assert.Equal(t, "Content script not available on this page", got.Error)
	assert.False(t, got.Success)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSendEndpointPanic(t *testing.T) {
	r := New(StaticTab{Endpoint: endpointFunc(func(context.Context, Message) (any, error) {
		panic("content script crashed")
	})})

	got := r.Send(context.Background(), relayMessage(ActionGetJobData))
	assert.False(t, got.Success)
}

func TestSendRejectsOtherActions(t *testing.T) {
	r := New(StaticTab{Endpoint: endpointFunc(func(context.Context, Message) (any, error) {
		t.Fatal("endpoint must not be called")
		return nil, nil
	})})

	got := r.Send(context.Background(), Message{Action: ActionGetJobData})
	assert.False(t, got.Success)
}

func TestContentEndpointGetJobData(t *testing.T) {
	page := `<main><p>Acme</p><p>Engineer</p><p>About the job</p><p>Write Go services for payments.</p></main>`
	endpoint := &ContentEndpoint{
		Page: func(context.Context) (string, string, error) {
			return page, "https://www.linkedin.com/jobs/view/42", nil
		},
		Scraper: &scrape.Scraper{Strategy: scrape.NewHeuristic(), Now: func() time.Time { return time.UnixMilli(5) }},
	}

	got := New(StaticTab{Endpoint: endpoint}).Send(context.Background(), relayMessage(ActionGetJobData))
	require.True(t, got.Success)

	inner, ok := got.Data.(Response)
	require.True(t, ok)
	require.True(t, inner.Success)
	data, ok := inner.Data.(scrape.JobData)
	require.True(t, ok)
	assert.Equal(t, "Acme", data.Company)
	assert.Equal(t, "Engineer", data.Title)
	assert.Equal(t, "Write Go services for payments.", data.Description)
	assert.Equal(t, "https://www.linkedin.com/jobs/view/42", data.URL)
	assert.Equal(t, int64(5), data.ScrapedAt)
}

func TestContentEndpointUnknownAction(t *testing.T) {
	endpoint := &ContentEndpoint{Page: func(context.Context) (string, string, error) { return "", "", nil }}
	_, err := endpoint.Handle(context.Background(), Message{Action: "NOPE"})
	assert.ErrorIs(t, err, ErrUnsupportedAction)
}
