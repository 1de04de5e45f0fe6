// Package gate disables gated badge polling for unauthenticated sessions.
//
// The gate runs once. It does not prevent later starts; callers decide what
// to start and hand the gate an explicit Registry of what is already running.
package gate

import (
	"log/slog"
	"sync"
)

// Signals are the two authentication hints a session carries.
type Signals struct {
	Authenticated bool
	Seller        bool
}

// IsAuthenticated reports whether either signal is set.
func (s Signals) IsAuthenticated() bool {
	return s.Authenticated || s.Seller
}

// Stopper is anything the gate can stop.
type Stopper interface {
	Stop()
}

type entry struct {
	name string
	s    Stopper
}

// Registry holds named stoppers in registration order.
type Registry struct {
	mu      sync.Mutex
	entries []entry
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds or replaces a named stopper.
// A nil stopper is kept as a placeholder and ignored by Apply.
func (r *Registry) Register(name string, s Stopper) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].name == name {
			r.entries[i].s = s
			return
		}
	}
	r.entries = append(r.entries, entry{name: name, s: s})
}

// Lookup returns the stopper registered under name.
func (r *Registry) Lookup(name string) (Stopper, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if e.name == name {
			return e.s, e.s != nil
		}
	}
	return nil, false
}

// Names returns registered names in order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.name)
	}
	return out
}

func (r *Registry) snapshot() []entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entry(nil), r.entries...)
}

// Apply stops every registered stopper when the session is not authenticated.
// Best effort: nil entries are skipped, a panicking stopper is ignored.
// Returns the number of Stop calls made.
func Apply(sig Signals, reg *Registry, log *slog.Logger) int {
	if sig.IsAuthenticated() || reg == nil {
		return 0
	}
	if log == nil {
		log = slog.Default()
	}

	stopped := 0
	for _, e := range reg.snapshot() {
		if e.s == nil {
			continue
		}
		stopped++
		if !safeStop(e.s) {
			log.Debug("gate: stop panicked", "badge", e.name)
			continue
		}
		log.Info("gate: polling disabled for unauthenticated session", "badge", e.name)
	}
	return stopped
}

func safeStop(s Stopper) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	s.Stop()
	return true
}
