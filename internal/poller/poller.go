// Package poller bridges the clipboard device into the history store.
// On a fixed cadence it compares the device's change token against the last
// observed value and captures the clipboard text when the token has moved.
// Every failure mode (unreadable clipboard, non-text payload, empty text)
// is a silent no-op tick — the poller never surfaces errors upward.
package poller

import (
	"log/slog"
	"sync"
	"time"

	"github.com/sdaveas/clipstash/internal/clip"
	"github.com/sdaveas/clipstash/internal/history"
)

// DefaultInterval is the poll cadence used when none is configured.
// Shorter intervals reduce perceived capture latency at the cost of more
// wake-ups; 500ms is imperceptible for a copy-then-open-panel workflow.
const DefaultInterval = 500 * time.Millisecond

// Poller owns the fixed-cadence capture loop. It is the only writer to the
// history store.
type Poller struct {
	device   clip.Device
	store    *history.Store
	interval time.Duration

	mu       sync.Mutex
	lastSeen uint64
	done     chan struct{}
	running  bool
}

// New returns a stopped poller. A non-positive interval selects
// DefaultInterval.
func New(device clip.Device, store *history.Store, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		device:   device,
		store:    store,
		interval: interval,
	}
}

// Start launches the poll loop. Calling Start on a running poller has no
// additional effect. The token is seeded from the device's current version
// so that whatever is already on the clipboard at startup is not captured
// as if it had just been copied.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.lastSeen = p.device.Version()
	p.done = make(chan struct{})
	p.running = true

	slog.Info("poller started", "device", p.device.Name(), "interval", p.interval)
	go p.loop(p.done)
}

// Stop halts the poll loop. Safe to call on a poller that was never
// started, and safe to call more than once.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	close(p.done)
	p.running = false
	slog.Info("poller stopped")
}

// MarkOwnWrite refreshes the last observed token immediately after this
// process wrote to the clipboard, so the next tick does not re-capture our
// own write as new external content.
func (p *Poller) MarkOwnWrite() {
	v := p.device.Version()
	p.mu.Lock()
	p.lastSeen = v
	p.mu.Unlock()
}

// Writer returns a history.Writer that writes through the device and marks
// the resulting token as already observed. Wire it into the store so that
// CopyOut does not produce a duplicate capture on the following tick.
func (p *Poller) Writer() history.Writer {
	return ownWriter{p}
}

func (p *Poller) loop(done <-chan struct{}) {
	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			p.tick()
		}
	}
}

// tick performs a single poll: compare token, read text, capture.
// Each tick is independent; missed ticks are never replayed.
func (p *Poller) tick() {
	v := p.device.Version()

	p.mu.Lock()
	changed := v != p.lastSeen
	p.lastSeen = v
	p.mu.Unlock()

	if !changed {
		return
	}

	text, ok := p.device.ReadText()
	if !ok || text == "" {
		slog.Debug("poller: clipboard changed but holds no text")
		return
	}
	if p.store.Capture(text) {
		slog.Debug("poller: captured clipboard change")
	}
}

// ownWriter is the history.Writer that suppresses self-capture.
type ownWriter struct {
	p *Poller
}

func (w ownWriter) WriteText(text string) error {
	if err := w.p.device.WriteText(text); err != nil {
		return err
	}
	w.p.MarkOwnWrite()
	return nil
}
