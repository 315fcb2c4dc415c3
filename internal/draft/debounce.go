package draft

import (
	"context"
	"sync"
	"time"

	"resume-reviser/internal/shared/telemetry"
)

// DefaultInterval is the quiet period before a pending draft is written.
const DefaultInterval = time.Second

// Debouncer coalesces rapid edits: each Update restarts the quiet period and
// only the latest text is written once it elapses.
type Debouncer struct {
	store    Store
	interval time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending *string
	closed  bool

	// serializes writes between the timer and Flush
	writeMu sync.Mutex
}

// NewDebouncer returns a Debouncer writing to store. interval <= 0 uses DefaultInterval.
func NewDebouncer(store Store, interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Debouncer{store: store, interval: interval}
}

// Update records text and restarts the quiet period. Updates after Close are dropped.
func (d *Debouncer) Update(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.pending = &text
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() { d.fire(gen) })
}

// fire writes the pending text unless a newer Update superseded this timer.
func (d *Debouncer) fire(gen uint64) {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	text := d.take()
	d.mu.Unlock()

	if text == nil {
		return
	}
	if err := d.store.Save(context.Background(), *text); err != nil {
		telemetry.Error("draft.save_failed", map[string]any{"err": err})
	}
}

// Flush writes the pending text now, if any.
func (d *Debouncer) Flush(ctx context.Context) error {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	d.mu.Lock()
	text := d.take()
	d.mu.Unlock()

	if text == nil {
		return nil
	}
	return d.store.Save(ctx, *text)
}

// Close flushes the pending text and stops accepting updates.
func (d *Debouncer) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	return d.Flush(ctx)
}

// take must be called with mu held.
func (d *Debouncer) take() *string {
	text := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return text
}
