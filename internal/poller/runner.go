// internal/poller/runner.go
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tamzrod/badgewatch/internal/logging"
	"github.com/tamzrod/badgewatch/internal/status"
)

// Renderer receives every successful cycle.
// Implementations must not call Handle.Stop from inside Write.
type Renderer interface {
	Write(res FetchResult) error
}

// waitFunc blocks for d or until ctx is done; false means cancelled.
type waitFunc func(ctx context.Context, d time.Duration) bool

// Option tunes a Handle.
type Option func(*Handle)

// WithLogger sets the handle logger. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handle) {
		if l != nil {
			h.log = l
		}
	}
}

// withWait replaces the inter-cycle delay (tests).
func withWait(w waitFunc) Option {
	return func(h *Handle) { h.wait = w }
}

// Handle is one running updater.
// Running -> Stopped is the only transition.
type Handle struct {
	id     string
	poller *Poller
	r      Renderer
	log    *slog.Logger
	wait   waitFunc

	cancel context.CancelFunc
	once   sync.Once
	done   chan struct{}

	// mu serializes render against Stop.
	mu      sync.Mutex
	stopped bool
	snap    status.Snapshot
}

// Start validates cfg, issues an immediate fetch and keeps polling with a
// fixed delay between the end of one cycle and the start of the next.
// One goroutine per handle. No overlap. No retries.
func Start(ctx context.Context, cfg Config, client Fetcher, r Renderer, opts ...Option) (*Handle, error) {
	p, err := New(cfg, client)
	if err != nil {
		return nil, err
	}
	return p.Start(ctx, r, opts...), nil
}

// Start runs the poller under a new handle.
func (p *Poller) Start(ctx context.Context, r Renderer, opts ...Option) *Handle {
	runCtx, cancel := context.WithCancel(ctx)

	h := &Handle{
		id:     uuid.NewString(),
		poller: p,
		r:      r,
		log:    logging.Discard(),
		wait:   sleepCtx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With("badge", p.cfg.Name, "handle_id", h.id)

	h.snap = status.Snapshot{
		Name:   p.cfg.Name,
		ID:     h.id,
		State:  status.StateRunning,
		Health: status.HealthUnknown,
	}

	h.log.Info("updater started", "endpoint", p.cfg.Endpoint, "interval", p.cfg.Interval)

	go h.run(runCtx)
	return h
}

func (h *Handle) run(ctx context.Context) {
	defer close(h.done)
	defer h.Stop()

	for {
		res := h.poller.PollOnce(ctx)
		if ctx.Err() != nil {
			return
		}
		h.deliver(res)

		if !h.wait(ctx, h.poller.cfg.Interval) {
			return
		}
	}
}

// deliver renders one result unless the handle was stopped meanwhile.
func (h *Handle) deliver(res FetchResult) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		return
	}

	h.snap.Cycles++

	switch {
	case res.Err != nil:
		h.snap.Skipped++
		h.snap.Health = status.HealthError
		h.snap.LastError = res.Err.Error()
		h.log.Debug("cycle skipped", "error", res.Err)

	case !res.Success:
		h.snap.Skipped++
		h.snap.Health = status.HealthSkipped
		h.log.Debug("cycle skipped", "reason", "success flag not set")

	default:
		// missing fields render as zero; the payload shape is still worth noting
		if missing := h.poller.cfg.MissingFields(res); len(missing) > 0 {
			h.log.Debug("fields missing from payload", "fields", missing)
		}
		if err := h.r.Write(res); err != nil {
			h.log.Debug("render incomplete", "error", err)
		}
		h.snap.Health = status.HealthOK
		h.snap.LastError = ""
		h.snap.LastSuccess = res.At
	}
}

// Stop cancels pending work and the in-flight request.
// Idempotent. Once Stop returns, the handle never renders again.
func (h *Handle) Stop() {
	h.once.Do(func() {
		h.mu.Lock()
		h.stopped = true
		h.snap.State = status.StateStopped
		h.mu.Unlock()

		h.cancel()
		h.log.Info("updater stopped")
	})
}

// Done is closed once the polling goroutine has exited.
func (h *Handle) Done() <-chan struct{} { return h.done }

// ID is the unique handle id.
func (h *Handle) ID() string { return h.id }

// Name is the badge name from config.
func (h *Handle) Name() string { return h.poller.cfg.Name }

// Status returns the current snapshot.
func (h *Handle) Status() status.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snap
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
