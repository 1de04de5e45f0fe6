// internal/poller/types.go
package poller

import (
	"fmt"
	"time"
)

// RenderMode selects how one numeric value maps onto page elements.
type RenderMode uint8

const (
	// ModeBadge shows the count in a badge and hides it when empty.
	ModeBadge RenderMode = iota + 1
	// ModeBadgeText is ModeBadge plus a companion text element that always shows the count.
	ModeBadgeText
	// ModeText only writes the count as text; visibility is never touched.
	ModeText
)

// ParseMode maps a config string to a RenderMode.
func ParseMode(s string) (RenderMode, error) {
	switch s {
	case "badge":
		return ModeBadge, nil
	case "badge_text":
		return ModeBadgeText, nil
	case "text":
		return ModeText, nil
	default:
		return 0, fmt.Errorf("poller: unknown render mode %q", s)
	}
}

func (m RenderMode) String() string {
	switch m {
	case ModeBadge:
		return "badge"
	case ModeBadgeText:
		return "badge_text"
	case ModeText:
		return "text"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// BadgeTarget describes how one response field maps to one element.
type BadgeTarget struct {
	ElementID string
	Mode      RenderMode
	Field     string

	// TextElementID is only used by ModeBadgeText. Optional.
	TextElementID string
}

// FetchResult is the outcome of one poll cycle.
// Transient: never stored beyond the cycle that produced it.
type FetchResult struct {
	Name string
	At   time.Time

	// Success is false when the cycle must not render:
	// transport/JSON failure (Err != nil) or a falsy success flag (Err == nil).
	Success bool
	Values  map[string]int64

	Err error
}

// Value returns the count for a field; ok is false when the field is missing.
func (r FetchResult) Value(field string) (int64, bool) {
	if r.Values == nil {
		return 0, false
	}
	v, ok := r.Values[field]
	return v, ok
}
