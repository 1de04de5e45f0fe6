// internal/config/normalize.go
package config

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	bw := &cfg.Badgewatch

	if bw.TimeoutMs == 0 {
		bw.TimeoutMs = DefaultTimeoutMs
	}
	if bw.View.RefreshMs == 0 {
		bw.View.RefreshMs = DefaultRefreshMs
	}
	if bw.Session.CookieName == "" {
		bw.Session.CookieName = DefaultCookieName
	}

	for i := range bw.Badges {
		b := &bw.Badges[i]

		if b.Poll.IntervalMs == 0 {
			b.Poll.IntervalMs = DefaultIntervalMs
		}
		if b.StartIfPresent == nil {
			v := true
			b.StartIfPresent = &v
		}
	}

	// ------------------------------------------------------------
	// PAGE: derive from badges when not declared
	// ------------------------------------------------------------

	if len(bw.Page.Elements) == 0 {
		seen := make(map[string]bool)
		for _, b := range bw.Badges {
			for _, id := range b.ElementIDs() {
				if !seen[id] {
					seen[id] = true
					bw.Page.Elements = append(bw.Page.Elements, id)
				}
			}
		}
	}
}
