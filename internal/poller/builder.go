// internal/poller/builder.go
package poller

import (
	"fmt"
	"time"

	cfg "github.com/tamzrod/badgewatch/internal/config"
)

// BuildConfig converts one badge config into a poller Config.
// Assumes config has already passed Validate and Normalize.
func BuildConfig(b cfg.BadgeConfig) (Config, error) {
	targets := make([]BadgeTarget, 0, len(b.Targets))
	for _, t := range b.Targets {
		mode, err := ParseMode(t.Mode)
		if err != nil {
			return Config{}, fmt.Errorf("badge %s: %w", b.Name, err)
		}
		targets = append(targets, BadgeTarget{
			ElementID:     t.ElementID,
			Mode:          mode,
			Field:         t.Field,
			TextElementID: t.TextElementID,
		})
	}

	return Config{
		Name:           b.Name,
		Endpoint:       b.Endpoint,
		Interval:       time.Duration(b.Poll.IntervalMs) * time.Millisecond,
		RequireSuccess: b.RequireSuccess,
		Targets:        targets,
	}, nil
}
