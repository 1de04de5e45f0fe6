// internal/writer/render.go
package writer

import (
	"strconv"

	"github.com/tamzrod/badgewatch/internal/page"
	"github.com/tamzrod/badgewatch/internal/poller"
)

// RenderTarget applies one value to the target's element(s).
// ok=false means the field was missing; it renders like zero.
// Returns false when the primary element is absent (nothing was done).
func RenderTarget(doc page.Document, t poller.BadgeTarget, value int64, ok bool) bool {
	if !ok {
		value = 0
	}

	switch t.Mode {
	case poller.ModeBadge:
		return renderBadge(doc, t.ElementID, value)

	case poller.ModeBadgeText:
		found := renderBadge(doc, t.ElementID, value)
		if t.TextElementID != "" {
			doc.Set(t.TextElementID, func(el *page.Element) {
				el.Text = countText(value)
			})
		}
		return found

	case poller.ModeText:
		return doc.Set(t.ElementID, func(el *page.Element) {
			el.Text = countText(value)
		})

	default:
		return false
	}
}

// renderBadge: positive shows the count, anything else hides and clears.
func renderBadge(doc page.Document, id string, value int64) bool {
	return doc.Set(id, func(el *page.Element) {
		if value > 0 {
			el.Text = strconv.FormatInt(value, 10)
			el.Display = page.DisplayInlineBlock
			return
		}
		el.Text = ""
		el.Display = page.DisplayNone
	})
}

// countText never shows a negative count.
func countText(value int64) string {
	if value < 0 {
		value = 0
	}
	return strconv.FormatInt(value, 10)
}
