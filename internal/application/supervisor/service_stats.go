// Package supervisor provides the application service for orchestrating multiple services.
// It manages the lifecycle of services including start, stop, restart, and reload operations.
package supervisor

import "sync/atomic"

// ServiceStats holds statistics for a single service.
// It tracks the number of starts, stops, failures, and restarts that have occurred
// during the lifetime of a service using atomic counters so callers outside the
// supervisor's own mutex can still read consistent values.
type ServiceStats struct {
	startCount   atomic.Int64
	stopCount    atomic.Int64
	failCount    atomic.Int64
	restartCount atomic.Int64
}

// NewServiceStats creates a new ServiceStats instance with zero values.
//
// Returns:
//   - *ServiceStats: a new ServiceStats instance initialized to zero.
func NewServiceStats() *ServiceStats {
	// Return a new ServiceStats with default zero values.
	return &ServiceStats{}
}

// IncrementStart atomically increments the start counter.
func (s *ServiceStats) IncrementStart() {
	s.startCount.Add(1)
}

// IncrementStop atomically increments the stop counter.
func (s *ServiceStats) IncrementStop() {
	s.stopCount.Add(1)
}

// IncrementFail atomically increments the fail counter.
func (s *ServiceStats) IncrementFail() {
	s.failCount.Add(1)
}

// IncrementRestart atomically increments the restart counter.
func (s *ServiceStats) IncrementRestart() {
	s.restartCount.Add(1)
}

// StartCount returns the current start count.
//
// Returns:
//   - int: the number of times the service has started.
func (s *ServiceStats) StartCount() int {
	return int(s.startCount.Load())
}

// StopCount returns the current stop count.
//
// Returns:
//   - int: the number of times the service has stopped normally.
func (s *ServiceStats) StopCount() int {
	return int(s.stopCount.Load())
}

// FailCount returns the current fail count.
//
// Returns:
//   - int: the number of times the service has failed.
func (s *ServiceStats) FailCount() int {
	return int(s.failCount.Load())
}

// RestartCount returns the current restart count.
//
// Returns:
//   - int: the number of times the service has been restarted.
func (s *ServiceStats) RestartCount() int {
	return int(s.restartCount.Load())
}

// Snapshot returns an immutable copy of the current counters.
//
// Returns:
//   - ServiceStatsSnapshot: a point-in-time copy of the counters.
func (s *ServiceStats) Snapshot() ServiceStatsSnapshot {
	return ServiceStatsSnapshot{
		StartCount:   s.StartCount(),
		StopCount:    s.StopCount(),
		FailCount:    s.FailCount(),
		RestartCount: s.RestartCount(),
	}
}
