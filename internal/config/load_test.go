// internal/config/load_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvBaseURL, EnvSessionCookie, EnvAuthenticated, EnvSeller} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Badgewatch.Badges) != 5 {
		t.Fatalf("expected 5 default badges, got %d", len(cfg.Badgewatch.Badges))
	}
	if cfg.Badgewatch.BaseURL != DefaultBaseURL {
		t.Fatalf("unexpected base url %q", cfg.Badgewatch.BaseURL)
	}
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, "config.yaml", `
badgewatch:
  base_url: https://shop.example.com
  http2: true
  auth:
    authenticated: true
  badges:
    - name: cart
      endpoint: /warehouse/dashboard/buyer_cart_count/
      require_success: true
      gated: true
      poll:
        interval_ms: 2500
      targets:
        - element_id: sidebar-buyer-cart-badge
          mode: badge
          field: cart_count
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	bw := cfg.Badgewatch
	if bw.BaseURL != "https://shop.example.com" || !bw.HTTP2 || !bw.Auth.Authenticated {
		t.Fatalf("top-level fields not loaded: %+v", bw)
	}
	if len(bw.Badges) != 1 {
		t.Fatalf("badges must replace defaults, got %d", len(bw.Badges))
	}
	b := bw.Badges[0]
	if b.Name != "cart" || !b.Gated || !b.RequireSuccess || b.Poll.IntervalMs != 2500 {
		t.Fatalf("badge not loaded: %+v", b)
	}
	if bw.TimeoutMs != DefaultTimeoutMs {
		t.Fatalf("unset fields must keep defaults, timeout=%d", bw.TimeoutMs)
	}
}

func TestLoad_EnvFileAndProcessEnv(t *testing.T) {
	clearEnv(t)

	envPath := writeFile(t, ".env", "BADGEWATCH_SESSION_COOKIE=from-file\nBADGEWATCH_SELLER=true\n")
	t.Setenv(EnvSessionCookie, "from-process")

	cfg, err := Load("", envPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Badgewatch.Session.CookieValue != "from-process" {
		t.Fatalf("process env must win, got %q", cfg.Badgewatch.Session.CookieValue)
	}
	if !cfg.Badgewatch.Auth.Seller {
		t.Fatalf("seller flag from env file not applied")
	}
}

func TestLoad_BadBoolInEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAuthenticated, "maybe")

	if _, err := Load("", ""); err == nil {
		t.Fatalf("expected error for non-bool %s", EnvAuthenticated)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), ""); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, "config.yaml", "badgewatch: [unclosed")
	if _, err := Load(path, ""); err == nil {
		t.Fatalf("expected parse error")
	}
}
