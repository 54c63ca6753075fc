// Package process provides domain entities and value objects for process lifecycle management.
package process

import (
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/kodflow/start/internal/domain/config"
)

// DefaultStabilityWindow is the duration of stable running required before
// the backoff delay resets to its initial value.
const DefaultStabilityWindow time.Duration = 5 * time.Minute

// defaultMaxIntervalMultiplier bounds backoff growth when no DelayMax is configured.
const defaultMaxIntervalMultiplier int = 10

// RestartTracker evaluates the restart policy for a service and computes the
// delay before the next respawn attempt.
//
// No restart attempt budget is tracked: ShouldRestart consults the policy
// only, never a retry counter. The delay between attempts grows with
// exponential backoff so a crash-looping service doesn't spin the CPU, and
// resets once the service has run stably for the configured window.
type RestartTracker struct {
	// config holds the restart configuration from the service definition.
	config *config.RestartConfig

	// backoff computes the delay before the next restart attempt.
	backoff *backoff.ExponentialBackOff

	// window defines the duration of stable running required before
	// the backoff delay resets.
	window time.Duration

	// count tracks the number of restart attempts since the last reset,
	// kept for observability only.
	count int
}

// NewRestartTracker creates a new restart tracker with the given configuration.
//
// Params:
//   - cfg: the restart configuration containing policy and delays.
//
// Returns:
//   - *RestartTracker: a new restart tracker instance.
func NewRestartTracker(cfg *config.RestartConfig) *RestartTracker {
	maxInterval := cfg.DelayMax.Duration()
	if maxInterval <= 0 {
		maxInterval = cfg.Delay.Duration() * time.Duration(defaultMaxIntervalMultiplier)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.Delay.Duration()
	b.MaxInterval = maxInterval
	b.RandomizationFactor = 0 // no jitter: delays start at Delay and never exceed MaxInterval
	b.MaxElapsedTime = 0 // no elapsed-time budget: keep offering a next interval
	b.Reset()

	return &RestartTracker{
		config:  cfg,
		backoff: b,
		window:  DefaultStabilityWindow,
	}
}

// ShouldRestart determines if a restart should be attempted for the given
// exit outcome, per the tracker's restart policy.
//
// Params:
//   - outcome: how the process most recently exited.
//
// Returns:
//   - bool: true if a restart should be attempted.
func (rt *RestartTracker) ShouldRestart(outcome config.ExitOutcome) bool {
	return rt.config.ShouldRespawn(outcome)
}

// RecordAttempt records a restart attempt by incrementing the attempt counter.
//
// Returns:
//   - void: this method modifies the tracker state.
func (rt *RestartTracker) RecordAttempt() {
	rt.count++
}

// Reset resets the attempt counter and the backoff delay to their initial state.
//
// Returns:
//   - void: this method modifies the tracker state.
func (rt *RestartTracker) Reset() {
	rt.count = 0
	rt.backoff.Reset()
}

// MaybeReset resets the tracker if the process has been running stably
// for at least the configured stability window duration.
//
// Params:
//   - uptime: the duration the process has been running since the last restart.
//
// Returns:
//   - void: this method may modify the tracker state.
func (rt *RestartTracker) MaybeReset(uptime time.Duration) {
	if uptime >= rt.window {
		rt.Reset()
	}
}

// Attempts returns the current number of restart attempts since the last reset.
//
// Returns:
//   - int: the current restart attempt count.
func (rt *RestartTracker) Attempts() int {
	return rt.count
}

// NextDelay calculates the next restart delay using exponential backoff.
//
// Returns:
//   - time.Duration: the calculated delay before the next restart attempt.
func (rt *RestartTracker) NextDelay() time.Duration {
	d := rt.backoff.NextBackOff()
	if d == backoff.Stop {
		return rt.backoff.MaxInterval
	}
	return d
}

// SetWindow sets the stability window duration.
//
// Params:
//   - window: the new stability window duration.
//
// Returns:
//   - void: this method modifies the tracker state.
func (rt *RestartTracker) SetWindow(window time.Duration) {
	rt.window = window
}
