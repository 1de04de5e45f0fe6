// internal/writer/types.go
package writer

import (
	"github.com/tamzrod/badgewatch/internal/page"
	"github.com/tamzrod/badgewatch/internal/poller"
)

// Plan is the fully-built render plan for one badge.
type Plan struct {
	Name    string
	Targets []poller.BadgeTarget
}

// Writer renders poll results into the page.
type Writer interface {
	Write(res poller.FetchResult) error
}

var _ Writer = (*pageWriter)(nil)

// pageWriter is the concrete implementation used by badgewatch.
type pageWriter struct {
	plan Plan
	doc  page.Document
}
