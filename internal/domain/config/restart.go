// Package config provides domain value objects for service configuration.
package config

import "github.com/kodflow/start/internal/domain/shared"

const (
	// defaultRestartDelaySecs is the default delay in seconds between restart attempts.
	defaultRestartDelaySecs int = 5
)

// RestartConfig defines service restart behavior: the policy and the delay
// before a respawn.
//
// No restart attempt budget is defined: a respawn is attempted every time
// the policy says to, for as long as the service keeps exiting. DelayMax
// bounds the backoff applied to the delay when a service is crash-looping;
// it shapes the inter-attempt wait, not the restart-or-not decision.
type RestartConfig struct {
	// Policy specifies when the service should be restarted.
	Policy RestartPolicy
	// Delay specifies the delay between restart attempts (restart_sec).
	Delay shared.Duration
	// DelayMax specifies the maximum backoff delay for repeated respawns.
	DelayMax shared.Duration
}

// RestartPolicy defines when to restart a service after it exits.
type RestartPolicy string

// Restart policy constants, matching the service unit's restart field.
const (
	// RestartNo never restarts the service after exit.
	RestartNo RestartPolicy = "no"
	// RestartOnSuccess restarts only when the exit was clean (code 0, no signal).
	RestartOnSuccess RestartPolicy = "on-success"
	// RestartOnFailure restarts only when the exit was not clean.
	RestartOnFailure RestartPolicy = "on-failure"
	// RestartOnAbnormal restarts only when the process was killed by a signal
	// or a graceful stop had to be escalated to a kill.
	RestartOnAbnormal RestartPolicy = "on-abnormal"
	// RestartAlways restarts regardless of exit status.
	RestartAlways RestartPolicy = "always"
)

// String returns the string representation of the restart policy.
//
// Returns:
//   - string: the policy value as a string.
func (p RestartPolicy) String() string {
	// convert policy to string
	return string(p)
}

// ExitOutcome describes how a supervised process most recently exited.
type ExitOutcome struct {
	// Code is the process exit code (meaningless when Signal != 0).
	Code int
	// Signal is the signal number that terminated the process, 0 if none.
	Signal int
	// StopTimedOut is true when an in-flight stop request escalated to a kill.
	StopTimedOut bool
}

// Success reports whether the exit was clean: code zero and no signal.
//
// Returns:
//   - bool: true if the process exited cleanly.
func (o ExitOutcome) Success() bool {
	return o.Signal == 0 && o.Code == 0
}

// Abnormal reports whether the exit was abnormal: killed by a signal, or a
// graceful stop had to be escalated to a kill.
//
// Returns:
//   - bool: true if the exit was abnormal.
func (o ExitOutcome) Abnormal() bool {
	return o.Signal != 0 || o.StopTimedOut
}

// ShouldRespawn determines whether the given outcome should trigger a
// respawn under this policy. Explicit stops are handled by the caller:
// restart policy is not consulted at all when a stop was requested.
//
// Params:
//   - outcome: how the process most recently exited.
//
// Returns:
//   - bool: true if the service should be restarted.
func (r RestartConfig) ShouldRespawn(outcome ExitOutcome) bool {
	switch r.Policy {
	case RestartNo:
		return false
	case RestartOnSuccess:
		return outcome.Success()
	case RestartOnFailure:
		return !outcome.Success()
	case RestartOnAbnormal:
		return outcome.Abnormal()
	case RestartAlways:
		return true
	default:
		return false
	}
}

// DefaultRestartConfig returns a RestartConfig with sensible defaults.
//
// Returns:
//   - RestartConfig: a configuration with on-failure policy and a 5s delay.
func DefaultRestartConfig() RestartConfig {
	return RestartConfig{Policy: RestartOnFailure, Delay: shared.Seconds(defaultRestartDelaySecs)}
}

// NewRestartConfig creates a new RestartConfig with the given policy.
//
// Params:
//   - policy: the restart policy to use.
//
// Returns:
//   - RestartConfig: a restart configuration with the given policy and default delay.
func NewRestartConfig(policy RestartPolicy) RestartConfig {
	return RestartConfig{Policy: policy, Delay: shared.Seconds(defaultRestartDelaySecs)}
}
