// internal/status/encode_test.go
package status

import (
	"strings"
	"testing"
	"time"
)

func TestEncode_RunningHealthy(t *testing.T) {
	s := Snapshot{
		Name:        "sidebar_orders",
		State:       StateRunning,
		Health:      HealthOK,
		Cycles:      4,
		LastSuccess: time.Date(2026, 1, 2, 13, 4, 5, 0, time.UTC),
	}

	got := Encode(s)
	want := "sidebar_orders state=running health=ok cycles=4 skipped=0 last_ok=13:04:05"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestEncode_ErrorIncludesLastError(t *testing.T) {
	s := Snapshot{
		Name:      "notif",
		State:     StateStopped,
		Health:    HealthError,
		Cycles:    1,
		Skipped:   1,
		LastError: "connection refused",
	}

	got := Encode(s)
	if !strings.Contains(got, "state=stopped") {
		t.Fatalf("missing state in %q", got)
	}
	if !strings.Contains(got, `err="connection refused"`) {
		t.Fatalf("missing error in %q", got)
	}
	if strings.Contains(got, "last_ok") {
		t.Fatalf("zero LastSuccess must be omitted: %q", got)
	}
}
