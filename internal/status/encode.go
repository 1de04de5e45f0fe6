// internal/status/encode.go
package status

import (
	"fmt"
	"strings"
	"time"
)

// Encode converts a Snapshot into a single display line.
// No IO. No side effects.
func Encode(s Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s state=%s health=%s cycles=%d skipped=%d",
		s.Name,
		StateName(s.State),
		HealthName(s.Health),
		s.Cycles,
		s.Skipped,
	)

	if !s.LastSuccess.IsZero() {
		fmt.Fprintf(&b, " last_ok=%s", s.LastSuccess.Format(time.TimeOnly))
	}
	if s.LastError != "" {
		fmt.Fprintf(&b, " err=%q", s.LastError)
	}

	return b.String()
}
