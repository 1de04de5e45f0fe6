// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
)

var knownModes = map[string]bool{
	"badge":      true,
	"badge_text": true,
	"text":       true,
}

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}
	bw := cfg.Badgewatch

	// ------------------------------------------------------------
	// TRANSPORT
	// ------------------------------------------------------------

	if bw.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	u, err := url.Parse(bw.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url %q: %w", bw.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url %q: scheme must be http or https", bw.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url %q: host is required", bw.BaseURL)
	}
	if bw.TimeoutMs < 0 {
		return fmt.Errorf("timeout_ms must be >= 0")
	}
	if bw.View.RefreshMs < 0 {
		return fmt.Errorf("view.refresh_ms must be >= 0")
	}

	// ------------------------------------------------------------
	// BADGES
	// ------------------------------------------------------------

	names := make(map[string]bool)

	// key = element id, value = owning badge
	owner := make(map[string]string)

	for i, b := range bw.Badges {
		if b.Name == "" {
			return fmt.Errorf("badge #%d: name is required", i)
		}
		if names[b.Name] {
			return fmt.Errorf("badge %q: duplicate name", b.Name)
		}
		names[b.Name] = true

		if b.Endpoint == "" {
			return fmt.Errorf("badge %q: endpoint is required", b.Name)
		}
		if _, err := url.Parse(b.Endpoint); err != nil {
			return fmt.Errorf("badge %q: endpoint %q: %w", b.Name, b.Endpoint, err)
		}
		if b.Poll.IntervalMs < 0 {
			return fmt.Errorf("badge %q: poll.interval_ms must be >= 0", b.Name)
		}
		if len(b.Targets) == 0 {
			return fmt.Errorf("badge %q: at least one target is required", b.Name)
		}

		for _, t := range b.Targets {
			if t.ElementID == "" {
				return fmt.Errorf("badge %q: target element_id is required", b.Name)
			}
			if t.Field == "" {
				return fmt.Errorf("badge %q: target %q: field is required", b.Name, t.ElementID)
			}
			if !knownModes[t.Mode] {
				return fmt.Errorf("badge %q: target %q: unknown mode %q", b.Name, t.ElementID, t.Mode)
			}
			if t.TextElementID != "" && t.Mode != "badge_text" {
				return fmt.Errorf(
					"badge %q: target %q: text_element_id is only valid with mode badge_text",
					b.Name,
					t.ElementID,
				)
			}
		}

		// one element, one owner: two badges racing on it is a conflict.
		// Within a badge, targets render in order, so reuse is allowed.
		seen := make(map[string]bool)
		for _, id := range b.ElementIDs() {
			if seen[id] {
				continue
			}
			seen[id] = true

			if prev, exists := owner[id]; exists {
				return fmt.Errorf(
					"element collision: %q driven by badges %q and %q",
					id,
					prev,
					b.Name,
				)
			}
			owner[id] = b.Name
		}
	}

	return nil
}
