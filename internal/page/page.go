// internal/page/page.go
package page

import (
	"sort"
	"sync"
)

// Display values an element can carry.
const (
	DisplayUnset       = ""
	DisplayInlineBlock = "inline-block"
	DisplayNone        = "none"
)

// Element is one addressable node of the page.
// Geometry only: id, text and display.
type Element struct {
	ID      string
	Text    string
	Display string
}

// Document is the contract updaters render into.
// Set is a no-op (returns false) when the element does not exist.
type Document interface {
	Lookup(id string) (Element, bool)
	Set(id string, fn func(*Element)) bool
}

// Page is an in-memory Document.
// The element set is fixed at construction; elements are never added later.
type Page struct {
	mu       sync.RWMutex
	elements map[string]*Element
}

// New creates a page holding the given element ids.
// Duplicate and empty ids are ignored.
func New(ids ...string) *Page {
	p := &Page{elements: make(map[string]*Element, len(ids))}
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := p.elements[id]; ok {
			continue
		}
		p.elements[id] = &Element{ID: id}
	}
	return p
}

// Has reports whether the element exists.
func (p *Page) Has(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.elements[id]
	return ok
}

// Lookup returns a copy of the element.
func (p *Page) Lookup(id string) (Element, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	el, ok := p.elements[id]
	if !ok {
		return Element{}, false
	}
	return *el, true
}

// Set mutates the element in place under the page lock.
func (p *Page) Set(id string, fn func(*Element)) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	el, ok := p.elements[id]
	if !ok {
		return false
	}
	fn(el)
	el.ID = id
	return true
}

// Snapshot returns a copy of all elements sorted by id.
func (p *Page) Snapshot() []Element {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]Element, 0, len(p.elements))
	for _, el := range p.elements {
		out = append(out, *el)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
