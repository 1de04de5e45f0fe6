// internal/poller/poller.go
package poller

import (
	"context"
	"errors"
	"time"
)

// Fetcher abstracts the transport the poller needs.
// The poller depends on raw bytes only.
type Fetcher interface {
	Get(ctx context.Context, endpoint string) ([]byte, error)
}

// Config is the minimal runtime config the poller needs (one badge).
type Config struct {
	Name     string
	Endpoint string
	Interval time.Duration

	// RequireSuccess makes an absent success flag skip the cycle.
	RequireSuccess bool

	Targets []BadgeTarget
}

// Poller is a dumb reader for one endpoint.
type Poller struct {
	cfg    Config
	client Fetcher
}

// New creates a poller with immutable config.
func New(cfg Config, client Fetcher) (*Poller, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("poller: endpoint required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if len(cfg.Targets) == 0 {
		return nil, errors.New("poller: at least one target required")
	}
	if client == nil {
		return nil, errors.New("poller: client required")
	}

	targets := make([]BadgeTarget, len(cfg.Targets))
	copy(targets, cfg.Targets)
	cfg.Targets = targets

	return &Poller{cfg: cfg, client: client}, nil
}

// Config returns a copy of the poller config.
func (p *Poller) Config() Config {
	cfg := p.cfg
	cfg.Targets = append([]BadgeTarget(nil), p.cfg.Targets...)
	return cfg
}

// MissingFields lists target fields absent from a successful result,
// in target order. Companion text elements share their target's field.
func (c Config) MissingFields(res FetchResult) []string {
	if !res.Success {
		return nil
	}
	var out []string
	for _, t := range c.Targets {
		if _, ok := res.Value(t.Field); !ok {
			out = append(out, t.Field)
		}
	}
	return out
}

// PollOnce performs exactly one GET + decode.
// All-or-nothing: any failure yields a result with Err set and no values.
func (p *Poller) PollOnce(ctx context.Context) FetchResult {
	at := time.Now()

	body, err := p.client.Get(ctx, p.cfg.Endpoint)
	if err != nil {
		return FetchResult{Name: p.cfg.Name, At: at, Err: err}
	}

	res := Decode(body, p.cfg.RequireSuccess)
	res.Name = p.cfg.Name
	res.At = at
	return res
}
