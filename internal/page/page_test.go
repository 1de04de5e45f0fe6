// internal/page/page_test.go
package page

import "testing"

func TestNew_IgnoresEmptyAndDuplicateIDs(t *testing.T) {
	p := New("a", "", "b", "a")

	snap := p.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(snap))
	}
	if snap[0].ID != "a" || snap[1].ID != "b" {
		t.Fatalf("unexpected order: %+v", snap)
	}
}

func TestSet_MissingElementIsNoop(t *testing.T) {
	p := New("a")

	called := false
	if p.Set("missing", func(*Element) { called = true }) {
		t.Fatalf("Set on missing element reported success")
	}
	if called {
		t.Fatalf("mutation func must not run for a missing element")
	}
}

func TestSet_MutatesAndLookupCopies(t *testing.T) {
	p := New("badge")

	p.Set("badge", func(el *Element) {
		el.Text = "3"
		el.Display = DisplayInlineBlock
		el.ID = "renamed"
	})

	el, ok := p.Lookup("badge")
	if !ok {
		t.Fatalf("element not found")
	}
	if el.ID != "badge" {
		t.Fatalf("element id must not change, got %q", el.ID)
	}
	if el.Text != "3" || el.Display != DisplayInlineBlock {
		t.Fatalf("unexpected element: %+v", el)
	}

	// mutating the copy must not leak back
	el.Text = "x"
	again, _ := p.Lookup("badge")
	if again.Text != "3" {
		t.Fatalf("Lookup must return a copy, got %q", again.Text)
	}
}
