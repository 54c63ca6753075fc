// Package lifecycle provides the application service for managing process lifecycle.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	appjournal "github.com/kodflow/start/internal/application/journal"
	"github.com/kodflow/start/internal/domain/config"
	domainjournal "github.com/kodflow/start/internal/domain/journal"
	"github.com/kodflow/start/internal/domain/logging"
	domain "github.com/kodflow/start/internal/domain/process"
)

// Manager configuration constants.
const (
	// eventBufferSize defines the channel buffer size for lifecycle events.
	eventBufferSize int = 16
	// defaultStopTimeout defines the default timeout for stopping processes.
	defaultStopTimeout time.Duration = 30 * time.Second
	// defaultStartTimeout bounds how long Start waits for readiness when the
	// service configuration leaves TimeoutStart unset.
	defaultStartTimeout time.Duration = 90 * time.Second
)

// Manager manages the lifecycle of a single process with restart policies.
//
// Manager coordinates process execution, monitors exit status, and applies
// restart policies including exponential backoff. It emits lifecycle events
// for monitoring and integrates with the domain executor abstraction.
type Manager struct {
	mu       sync.RWMutex
	config   *config.ServiceConfig
	executor domain.Executor
	tracker  *domain.RestartTracker
	events   chan domain.Event
	ctx      context.Context
	cancel   context.CancelFunc
	running  bool
	journal  domainjournal.Journal

	// ready signals the outcome of the current Start() call's readiness
	// wait: nil once the type-appropriate readiness criterion is reached,
	// or the error that made readiness unreachable. Start() creates it and
	// nils it out after the first signal so later restarts never block on it.
	ready chan error

	// Current process state
	pid        int
	instanceID string
	state      domain.State
	exitCode   int
	startTime  time.Time
	restarts   int
	waitCh     <-chan domain.ExitResult
	stdout     *appjournal.PipeWriter
	stderr     *appjournal.PipeWriter
}

// NewManager creates a new process lifecycle manager.
//
// Params:
//   - cfg: the service configuration defining command, restart policy, etc.
//   - executor: the domain executor for process operations.
//
// Returns:
//   - *Manager: a new manager instance ready to start the process.
func NewManager(cfg *config.ServiceConfig, executor domain.Executor) *Manager {
	// Return a new Manager with initialized fields.
	return &Manager{
		config:   cfg,
		executor: executor,
		tracker:  domain.NewRestartTracker(&cfg.Restart),
		events:   make(chan domain.Event, eventBufferSize),
		state:    domain.StateStopped,
	}
}

// SetJournal attaches a Journal that receives the managed process's stdout
// and stderr, split into lines. Must be called before Start; nil (the
// default) leaves stdout/stderr inherited from the supervisor.
//
// Params:
//   - j: the journal to route captured output into.
func (m *Manager) SetJournal(j domainjournal.Journal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.journal = j
}

// ServiceType returns the configured service type.
//
// Returns:
//   - config.ServiceType: the service type from configuration.
func (m *Manager) ServiceType() config.ServiceType {
	return m.config.Type
}

// Events returns the event channel for monitoring.
//
// Returns:
//   - <-chan domain.Event: read-only channel for lifecycle events.
func (m *Manager) Events() <-chan domain.Event {
	// Return the events channel for external monitoring.
	return m.events
}

// Name returns the service name.
//
// Returns:
//   - string: the service name from configuration.
//
// TODO(test): Add test coverage for Name method.
func (m *Manager) Name() string {
	// Return the service name from config.
	return m.config.Name
}

// State returns the current process state.
//
// Returns:
//   - domain.State: the current state of the managed process.
func (m *Manager) State() domain.State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Return the current state under read lock.
	return m.state
}

// PID returns the current process PID.
//
// Returns:
//   - int: the process ID or 0 if not running.
func (m *Manager) PID() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Return the current PID under read lock.
	return m.pid
}

// Uptime returns the process uptime in seconds.
//
// Returns:
//   - int64: the uptime in seconds or 0 if not running.
func (m *Manager) Uptime() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Check if process is not running.
	if m.state != domain.StateRunning {
		// Return zero uptime when not running.
		return 0
	}
	// Calculate and return uptime in seconds.
	return int64(time.Since(m.startTime).Seconds())
}

// Start starts the managed process with automatic restart handling and
// blocks until it reaches the type-appropriate readiness criterion (spawn
// succeeded for Simple/Notify/Idle, exit code 0 for Oneshot, parent exit
// code 0 for Forking) or TimeoutStart elapses.
//
// Returns:
//   - error: nil once readiness is reached. A no-op success if the manager
//     is already running. An error if readiness could not be reached or
//     TimeoutStart elapsed first.
//
// Goroutine lifecycle:
//   - Spawns a goroutine that runs until Stop is called or context is cancelled.
//   - The goroutine handles process lifecycle including restarts based on policy.
//   - Use Stop() to terminate the goroutine and cleanup resources.
func (m *Manager) Start() error {
	m.mu.Lock()
	// start_service on an already-running instance is a no-op success.
	if m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = true
	m.ctx, m.cancel = context.WithCancel(context.Background())
	ready := make(chan error, 1)
	m.ready = ready
	m.mu.Unlock()

	go m.run()

	timeout := m.config.TimeoutStart.Duration()
	if timeout <= 0 {
		timeout = defaultStartTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-ready:
		return err
	case <-timer.C:
		return fmt.Errorf("service %s: timed out waiting for readiness: %w", m.config.Name, domain.ErrProcessFailed)
	}
}

// signalReady delivers err as the outcome of the in-flight Start() call, if
// one is still waiting. It is safe to call more than once per run: only the
// first call after each Start() has an effect.
//
// Params:
//   - err: nil if readiness was reached, otherwise the failure reason.
func (m *Manager) signalReady(err error) {
	m.mu.Lock()
	ready := m.ready
	m.ready = nil
	m.mu.Unlock()
	if ready != nil {
		ready <- err
	}
}

// run is the main loop that manages the process lifecycle.
func (m *Manager) run() {
	defer func() {
		m.mu.Lock()
		m.running = false
		m.mu.Unlock()
		// Safety net: if the run ended without ever reaching a readiness
		// decision (e.g. Stop cancelled the context before the first spawn
		// attempt), don't leave Start() blocked until its timeout.
		m.signalReady(fmt.Errorf("manager stopped before reaching ready: %w", domain.ErrNotRunning))
	}()

	// Dispatch on service type: each type has its own readiness criterion.
	switch m.config.Type {
	case config.TypeOneshot:
		m.runOnce()
	case config.TypeForking:
		m.runForking()
	default:
		// Simple, Notify, and Idle all treat a successful spawn as readiness;
		// Idle's "start only once otherwise idle" semantics are enforced by
		// the Service Manager's batch scheduling, not here.
		m.runWithRestart()
	}
}

// runOnce runs the process once without restart. Readiness is reached when
// the process exits with code 0; a non-zero exit is a readiness failure.
func (m *Manager) runOnce() {
	// Attempt to start the process.
	if err := m.startProcess(); err != nil {
		m.sendEvent(domain.EventFailed, err)
		m.signalReady(err)
		// Return early on start failure.
		return
	}

	m.sendEvent(domain.EventStarted, nil)
	result := <-m.waitCh
	m.flushOutput()

	m.updateStateAfterExit(result)
	m.sendExitEvent(result)

	// Check if process exited with non-zero code.
	if result.Code != 0 {
		m.signalReady(fmt.Errorf("exit code %d: %w", result.Code, domain.ErrProcessFailed))
		// Return after reporting failure.
		return
	}

	m.signalReady(nil)
}

// runForking runs a forking service's parent command to completion.
// Readiness is the parent's exit code 0, not the spawn itself: the parent
// is expected to daemonize and exit, leaving an untracked child behind.
// There is no descendant PID tracking, so once the parent exits the manager
// has nothing left to supervise (best-effort, matching a forking service's
// documented degraded semantics).
func (m *Manager) runForking() {
	if err := m.startProcess(); err != nil {
		m.sendEvent(domain.EventFailed, err)
		m.signalReady(err)
		return
	}

	result := <-m.waitCh
	m.flushOutput()

	m.mu.Lock()
	m.pid = 0
	m.exitCode = result.Code
	if result.Code != 0 {
		m.state = domain.StateFailed
	}
	m.mu.Unlock()

	// Check if the forking parent exited non-zero.
	if result.Code != 0 {
		err := fmt.Errorf("forking parent exit code %d: %w", result.Code, domain.ErrProcessFailed)
		m.sendEvent(domain.EventFailed, err)
		m.signalReady(err)
		return
	}

	// Parent exited 0: the service is considered Running with no tracked
	// process (state was already set to Running by startProcess).
	m.sendEvent(domain.EventStarted, nil)
	m.signalReady(nil)
}

// runWithRestart runs the process with automatic restart based on policy.
func (m *Manager) runWithRestart() {
	// Loop continuously for restart handling.
	for {
		// Check if context was cancelled.
		if m.isContextCancelled() {
			// Return to exit restart loop.
			return
		}

		// Attempt to start the process.
		if !m.tryStartProcess() {
			// Return when start fails and no restart.
			return
		}

		// Wait for process exit or shutdown.
		if m.waitForProcessOrShutdown() {
			// Return when shutdown requested.
			return
		}
	}
}

// isContextCancelled checks if the context has been cancelled.
//
// Returns:
//   - bool: true if context is cancelled, false otherwise.
func (m *Manager) isContextCancelled() bool {
	select {
	// Check if context done channel is closed.
	case <-m.ctx.Done():
		// Return true when context is cancelled.
		return true
	// Default case for non-blocking check.
	default:
		// Return false when context is still active.
		return false
	}
}

// tryStartProcess attempts to start the process.
//
// Returns:
//   - bool: true if process started or restart scheduled, false to stop.
func (m *Manager) tryStartProcess() bool {
	// Attempt to start the underlying process.
	if err := m.startProcess(); err != nil {
		m.sendEvent(domain.EventFailed, err)
		// Check if restart policy allows retry.
		if !m.tracker.ShouldRestart(config.ExitOutcome{Code: -1}) {
			// No restart scheduled: readiness is unreachable.
			m.signalReady(err)
			// Return false when policy does not call for a restart.
			return false
		}
		// Wait and schedule restart.
		return m.waitAndRestart()
	}

	m.sendEvent(domain.EventStarted, nil)
	// Spawn succeeded: this is readiness for Simple/Notify/Idle services.
	m.signalReady(nil)
	// Return true on successful start.
	return true
}

// startProcess starts the underlying process.
//
// Returns:
//   - error: nil on success, error on failure.
func (m *Manager) startProcess() error {
	m.mu.Lock()
	m.state = domain.StateStarting
	journal := m.journal
	m.mu.Unlock()

	spec := domain.NewSpec(domain.SpecParams{
		Command: m.config.Command,
		Args:    m.config.Args,
		Dir:     m.config.WorkingDirectory,
		Env:     m.config.Environment,
		User:    m.config.User,
		Group:   m.config.Group,
	})

	// Route captured stdout/stderr into the Journal when one is configured.
	// The writers are constructed with PID 0 since the PID isn't known until
	// after Start returns; SetPID back-fills it immediately afterward.
	var stdout, stderr *appjournal.PipeWriter
	if journal != nil {
		stdout = appjournal.NewPipeWriter(journal, m.config.Name, 0, logging.LevelInfo)
		stderr = appjournal.NewPipeWriter(journal, m.config.Name, 0, logging.LevelError)
		spec = spec.WithOutput(stdout, stderr)
	}

	pid, wait, err := m.executor.Start(m.ctx, spec)
	// Check if start failed.
	if err != nil {
		m.mu.Lock()
		m.state = domain.StateFailed
		m.mu.Unlock()
		// Return the start error.
		return err
	}

	if stdout != nil {
		stdout.SetPID(pid)
		stderr.SetPID(pid)
	}

	m.mu.Lock()
	m.pid = pid
	m.instanceID = uuid.NewString()
	m.waitCh = wait
	m.startTime = time.Now()
	m.state = domain.StateRunning
	m.stdout = stdout
	m.stderr = stderr
	m.mu.Unlock()

	// Return nil on successful process start.
	return nil
}

// flushOutput flushes any buffered partial line from the process's captured
// stdout/stderr into the Journal. Called once the process has exited.
func (m *Manager) flushOutput() {
	m.mu.Lock()
	stdout, stderr := m.stdout, m.stderr
	m.stdout, m.stderr = nil, nil
	m.mu.Unlock()

	if stdout != nil {
		stdout.Flush()
	}
	if stderr != nil {
		stderr.Flush()
	}
}

// waitForProcessOrShutdown waits for process exit or shutdown signal.
// Stop errors during shutdown are intentionally discarded (best-effort cleanup).
// The process will be terminated when the parent exits regardless.
// A Failed event has already been sent if the process crashed.
//
// Returns:
//   - bool: true if shutdown requested, false if process exited.
func (m *Manager) waitForProcessOrShutdown() bool {
	select {
	// Handle context cancellation (shutdown).
	case <-m.ctx.Done():
		m.mu.Lock()
		pid := m.pid
		m.mu.Unlock()
		// Stop process if running (best-effort, errors discarded during shutdown).
		if pid > 0 {
			_ = m.executor.Stop(pid, defaultStopTimeout)
		}
		// Return true to indicate shutdown.
		return true
	// Handle process exit result.
	case result := <-m.waitCh:
		// Process the exit result.
		return m.handleProcessExit(result)
	}
}

// handleProcessExit handles process exit and determines if restart should occur.
//
// Params:
//   - result: the exit result containing exit code and error.
//
// Returns:
//   - bool: true if no restart should occur, false to continue restart loop.
func (m *Manager) handleProcessExit(result domain.ExitResult) bool {
	m.flushOutput()
	m.updateStateAfterExit(result)
	m.sendExitEvent(result)

	// Reset backoff counter if process ran stably for the configured window.
	uptime := m.calculateUptime()
	m.tracker.MaybeReset(uptime)

	// Check if restart policy allows restart.
	outcome := config.ExitOutcome{Code: result.Code, Signal: result.Signal, StopTimedOut: result.StopTimedOut}
	if !m.tracker.ShouldRestart(outcome) {
		// Return true to stop restart loop.
		return true
	}

	// Attempt to wait and restart.
	if !m.waitAndRestart() {
		// Return true when restart cancelled.
		return true
	}
	// Return false to continue restart loop.
	return false
}

// updateStateAfterExit updates the manager state after process exit.
//
// Params:
//   - result: the exit result containing exit code.
func (m *Manager) updateStateAfterExit(result domain.ExitResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.exitCode = result.Code
	m.pid = 0

	// Check if process exited successfully.
	if result.Code == 0 {
		m.state = domain.StateStopped
	} else {
		// Set failed state for non-zero exit.
		m.state = domain.StateFailed
	}
}

// sendExitEvent sends the appropriate event based on exit code.
//
// Params:
//   - result: the exit result containing exit code.
func (m *Manager) sendExitEvent(result domain.ExitResult) {
	// Check exit code for event type.
	if result.Code == 0 {
		m.sendEvent(domain.EventStopped, nil)
	} else {
		// Send failed event with exit code error.
		m.sendEvent(domain.EventFailed, fmt.Errorf("exit code %d: %w", result.Code, domain.ErrProcessFailed))
	}
}

// calculateUptime returns the process uptime before exit.
//
// Returns:
//   - time.Duration: the process uptime.
func (m *Manager) calculateUptime() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Calculate uptime based on start time.
	return time.Since(m.startTime)
}

// waitAndRestart waits the configured delay and prepares for restart.
//
// Returns:
//   - bool: true if restart should proceed, false if cancelled.
func (m *Manager) waitAndRestart() bool {
	m.tracker.RecordAttempt()
	m.mu.Lock()
	m.restarts++
	m.mu.Unlock()

	m.sendEvent(domain.EventRestarting, nil)

	delay := m.tracker.NextDelay()

	// Use NewTimer instead of time.After to allow proper cleanup.
	// time.After creates a timer that won't be GC'd until it fires.
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	// Handle context cancellation during delay.
	case <-m.ctx.Done():
		// Return false to cancel restart.
		return false
	// Wait for delay duration.
	case <-timer.C:
		// Return true to proceed with restart.
		return true
	}
}

// Stop stops the managed process.
//
// Returns:
//   - error: nil on success, error from executor on failure.
func (m *Manager) Stop() error {
	m.mu.Lock()
	// Check if manager is not running.
	if !m.running {
		m.mu.Unlock()
		// Return nil when already stopped.
		return nil
	}
	pid := m.pid
	m.mu.Unlock()

	// Cancel the context if set.
	if m.cancel != nil {
		m.cancel()
	}

	// Stop the process if PID is valid.
	if pid > 0 {
		// Return the result of executor stop.
		return m.executor.Stop(pid, defaultStopTimeout)
	}
	// Return nil when no process to stop.
	return nil
}

// Reload reloads the process. If ExecReload is configured, it is spawned
// through the executor and the manager transitions Running->Reloading
// until the reload command exits, returning to Running on exit code 0 or
// Failed otherwise. With no ExecReload configured, it falls back to
// sending SIGHUP to the managed process.
//
// Returns:
//   - error: ErrNotRunning if no process, ErrReloadFailed if the reload
//     command could not be started or exited non-zero, error from signal
//     delivery otherwise.
func (m *Manager) Reload() error {
	m.mu.RLock()
	pid := m.pid
	execReload := m.config.ExecReload
	m.mu.RUnlock()

	// Check if process is not running.
	if pid == 0 {
		// Return error when not running.
		return domain.ErrNotRunning
	}

	// No reload command configured: fall back to signal-based reload.
	if execReload == "" {
		return m.executor.Signal(pid, signalHUP)
	}

	m.mu.Lock()
	prevState := m.state
	m.state = domain.StateReloading
	m.mu.Unlock()

	spec := domain.NewSpec(domain.SpecParams{
		Command: execReload,
		Dir:     m.config.WorkingDirectory,
		Env:     m.config.Environment,
		User:    m.config.User,
		Group:   m.config.Group,
	})

	_, wait, err := m.executor.Start(m.ctx, spec)
	if err != nil {
		// Reload command could not even start: restore the prior state.
		m.mu.Lock()
		m.state = prevState
		m.mu.Unlock()
		return fmt.Errorf("starting reload command: %w", domain.ErrReloadFailed)
	}

	result := <-wait

	m.mu.Lock()
	if result.Code == 0 {
		m.state = domain.StateRunning
	} else {
		m.state = domain.StateFailed
	}
	m.mu.Unlock()

	if result.Code != 0 {
		return fmt.Errorf("reload command exit code %d: %w", result.Code, domain.ErrReloadFailed)
	}
	return nil
}

// sendEvent sends a lifecycle event.
//
// Params:
//   - eventType: the type of lifecycle event.
//   - err: optional error associated with the event.
func (m *Manager) sendEvent(eventType domain.EventType, err error) {
	m.mu.RLock()
	event := domain.NewEvent(eventType, m.config.Name, m.pid, m.exitCode, err)
	m.mu.RUnlock()

	select {
	// Attempt to send event to channel.
	case m.events <- event:
	// Drop event if channel is full.
	default:
	}
}

// Status returns the current status of the process.
//
// Returns:
//   - domain.Status: the complete status information.
func (m *Manager) Status() domain.Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return the current status snapshot.
	return domain.Status{
		Name:       m.config.Name,
		InstanceID: m.instanceID,
		State:      m.state,
		PID:        m.pid,
		Uptime:     time.Since(m.startTime),
		Restarts:   m.restarts,
		ExitCode:   m.exitCode,
	}
}

// InstanceID returns the identifier of the current (or most recent) run.
//
// Returns:
//   - string: a UUID regenerated on every process start, or "" before the
//     first start.
func (m *Manager) InstanceID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.instanceID
}
