// internal/status/constants.go
package status

// Updater lifecycle states.
// Stopped is terminal for a handle; a new Start creates a new handle.

// ---- STATES ----

// StateRunning is the state right after Start.
const StateRunning uint16 = 1

// StateStopped is reached once Stop has been called.
const StateStopped uint16 = 2

// ---- HEALTH CODES ----

// HealthUnknown represents the boot state, before the first cycle finished.
const HealthUnknown uint16 = 0

// HealthOK means the last cycle rendered.
const HealthOK uint16 = 1

// HealthError means the last cycle failed (network, status code, JSON).
const HealthError uint16 = 2

// HealthSkipped means the last payload carried a falsy success flag.
const HealthSkipped uint16 = 3
