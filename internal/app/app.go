// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tamzrod/badgewatch/internal/config"
	"github.com/tamzrod/badgewatch/internal/gate"
	"github.com/tamzrod/badgewatch/internal/logging"
	"github.com/tamzrod/badgewatch/internal/page"
	"github.com/tamzrod/badgewatch/internal/poller"
	"github.com/tamzrod/badgewatch/internal/status"
	"github.com/tamzrod/badgewatch/internal/writer"
)

// Options carries the collaborators App does not build itself.
type Options struct {
	Client poller.Fetcher
	Log    *slog.Logger

	// Registry is handed to the gate. Updaters already in it are stopped
	// when the session is not authenticated. Nil means a fresh registry.
	Registry *gate.Registry
}

// App is one page: its document, its updaters and its gate registry.
type App struct {
	page     *page.Page
	registry *gate.Registry
	handles  []*poller.Handle
	signals  gate.Signals
	log      *slog.Logger
}

// Start builds the page, runs the gate once, then starts every badge
// that passes its guards. cfg must already be validated and normalized.
func Start(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: config required")
	}
	if opts.Client == nil {
		return nil, errors.New("app: client required")
	}
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}
	if opts.Registry == nil {
		opts.Registry = gate.NewRegistry()
	}

	bw := cfg.Badgewatch

	a := &App{
		page:     page.New(bw.Page.Elements...),
		registry: opts.Registry,
		signals: gate.Signals{
			Authenticated: bw.Auth.Authenticated,
			Seller:        bw.Auth.Seller,
		},
		log: opts.Log,
	}

	// --------------------
	// Gate (once, before any start)
	// --------------------

	if n := gate.Apply(a.signals, a.registry, a.log); n > 0 {
		a.log.Info("gate stopped running updaters", "count", n)
	}

	// --------------------
	// Per-badge pipelines
	// --------------------

	for _, b := range bw.Badges {
		if skip, reason := a.guard(b); skip {
			a.log.Info("badge not started", "badge", b.Name, "reason", reason)
			continue
		}

		pc, err := poller.BuildConfig(b)
		if err != nil {
			a.Stop()
			return nil, err
		}

		p, err := poller.New(pc, opts.Client)
		if err != nil {
			a.Stop()
			return nil, fmt.Errorf("poller build failed (badge=%s): %w", b.Name, err)
		}

		// the plan follows the poller's own copy of the targets
		plan, err := writer.BuildPlan(p.Config())
		if err != nil {
			a.Stop()
			return nil, fmt.Errorf("writer plan failed (badge=%s): %w", b.Name, err)
		}

		h := p.Start(ctx, writer.New(plan, a.page), poller.WithLogger(a.log))
		a.handles = append(a.handles, h)

		if b.Gated {
			a.registry.Register(b.Name, h)
		}
	}

	return a, nil
}

// guard mirrors the page-load checks each badge script performed.
func (a *App) guard(b config.BadgeConfig) (bool, string) {
	if b.Gated && !a.signals.IsAuthenticated() {
		return true, "session not authenticated"
	}
	if b.SellerOnly && !a.signals.Seller {
		return true, "session is not a seller"
	}
	if b.StartIfPresent == nil || *b.StartIfPresent {
		if len(b.Targets) > 0 && !a.page.Has(b.Targets[0].ElementID) {
			return true, "element not in page"
		}
	}
	return false, ""
}

// Page returns the document updaters render into.
func (a *App) Page() *page.Page { return a.page }

// Registry returns the gate registry.
func (a *App) Registry() *gate.Registry { return a.registry }

// Handles returns the started updaters in config order.
func (a *App) Handles() []*poller.Handle {
	return append([]*poller.Handle(nil), a.handles...)
}

// Statuses returns one snapshot per started updater.
func (a *App) Statuses() []status.Snapshot {
	out := make([]status.Snapshot, 0, len(a.handles))
	for _, h := range a.handles {
		out = append(out, h.Status())
	}
	return out
}

// Stop stops every updater and waits for their goroutines.
func (a *App) Stop() {
	for _, h := range a.handles {
		h.Stop()
	}
	for _, h := range a.handles {
		<-h.Done()
	}
}
