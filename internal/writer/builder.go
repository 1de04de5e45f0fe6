// internal/writer/builder.go
package writer

import (
	"errors"

	"github.com/tamzrod/badgewatch/internal/poller"
)

// BuildPlan converts one poller config into a render Plan.
func BuildPlan(pc poller.Config) (Plan, error) {
	if pc.Name == "" {
		return Plan{}, errors.New("writer: badge name required")
	}
	if len(pc.Targets) == 0 {
		return Plan{}, errors.New("writer: at least one target required")
	}

	plan := Plan{Name: pc.Name}
	plan.Targets = append(plan.Targets, pc.Targets...)
	return plan, nil
}
