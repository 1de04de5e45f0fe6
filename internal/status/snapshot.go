// internal/status/snapshot.go
package status

import "time"

// Snapshot is the observable state of one updater.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Name string
	ID   string

	State  uint16
	Health uint16

	Cycles  uint64 // cycles completed (rendered or skipped)
	Skipped uint64 // cycles that did not render

	LastError   string
	LastSuccess time.Time
}

// StateName returns a human label for a state code.
func StateName(state uint16) string {
	switch state {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// HealthName returns a human label for a health code.
func HealthName(health uint16) string {
	switch health {
	case HealthOK:
		return "ok"
	case HealthError:
		return "error"
	case HealthSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}
