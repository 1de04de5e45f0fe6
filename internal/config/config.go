// internal/config/config.go
package config

type Config struct {
	Badgewatch BadgewatchConfig `yaml:"badgewatch"`
}

type BadgewatchConfig struct {
	BaseURL   string `yaml:"base_url"`
	TimeoutMs int    `yaml:"timeout_ms"`
	HTTP2     bool   `yaml:"http2"`

	Session SessionConfig `yaml:"session"`
	Auth    AuthConfig    `yaml:"auth"`
	Page    PageConfig    `yaml:"page"`
	View    ViewConfig    `yaml:"view"`

	Badges []BadgeConfig `yaml:"badges"`
}

// ---- SESSION ----

// SessionConfig is the cookie sent with every same-origin request.
type SessionConfig struct {
	CookieName  string `yaml:"cookie_name"`
	CookieValue string `yaml:"cookie_value"`
}

// ---- AUTH SIGNALS ----

type AuthConfig struct {
	Authenticated bool `yaml:"authenticated"`
	Seller        bool `yaml:"seller"`
}

// ---- PAGE ----

// PageConfig lists the element ids present in the page.
// Empty means: every element referenced by a badge.
type PageConfig struct {
	Elements []string `yaml:"elements"`
}

type ViewConfig struct {
	RefreshMs int `yaml:"refresh_ms"`
}

// ---- BADGE ----

type BadgeConfig struct {
	Name           string         `yaml:"name"`
	Endpoint       string         `yaml:"endpoint"`
	RequireSuccess bool           `yaml:"require_success"`
	Gated          bool           `yaml:"gated"`       // stopped by the auth gate
	SellerOnly     bool           `yaml:"seller_only"` // never started for non-sellers
	StartIfPresent *bool          `yaml:"start_if_present"`
	Poll           PollConfig     `yaml:"poll"`
	Targets        []TargetConfig `yaml:"targets"`
}

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- TARGET ----

type TargetConfig struct {
	ElementID     string `yaml:"element_id"`
	Mode          string `yaml:"mode"` // badge | badge_text | text
	Field         string `yaml:"field"`
	TextElementID string `yaml:"text_element_id"` // badge_text only
}

// ElementIDs returns every element id the badge drives, in target order.
func (b BadgeConfig) ElementIDs() []string {
	var ids []string
	for _, t := range b.Targets {
		ids = append(ids, t.ElementID)
		if t.TextElementID != "" {
			ids = append(ids, t.TextElementID)
		}
	}
	return ids
}
