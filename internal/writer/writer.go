// internal/writer/writer.go
package writer

import (
	"fmt"
	"strings"

	"github.com/tamzrod/badgewatch/internal/page"
	"github.com/tamzrod/badgewatch/internal/poller"
)

func New(plan Plan, doc page.Document) Writer {
	return &pageWriter{
		plan: plan,
		doc:  doc,
	}
}

// Write renders every target in plan order.
// Unsuccessful results never touch the page.
// The returned error only lists targets whose element is absent;
// absence is tolerated and callers are free to ignore it.
func (w *pageWriter) Write(res poller.FetchResult) error {
	if res.Err != nil || !res.Success {
		return nil
	}

	var missing []string
	for _, tgt := range w.plan.Targets {
		v, ok := res.Value(tgt.Field)
		if !RenderTarget(w.doc, tgt, v, ok) {
			missing = append(missing, tgt.ElementID)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("writer: %s: elements not in page: %s", w.plan.Name, strings.Join(missing, ", "))
	}
	return nil
}
