// Package supervisor provides the application service for orchestrating multiple services.
// It manages the lifecycle of services including start, stop, restart, and reload operations.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	appconfig "github.com/kodflow/start/internal/application/config"
	applifecycle "github.com/kodflow/start/internal/application/lifecycle"
	domainconfig "github.com/kodflow/start/internal/domain/config"
	domainlifecycle "github.com/kodflow/start/internal/domain/lifecycle"
	domain "github.com/kodflow/start/internal/domain/process"
)

// State represents the supervisor state.
// It defines the current operational status of the supervisor.
type State int

// Supervisor state constants.
const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
)

// Errors for supervisor operations.
var (
	// ErrAlreadyRunning is returned when the supervisor is already running.
	ErrAlreadyRunning error = fmt.Errorf("supervisor already running")
	// ErrNotRunning is returned when the supervisor is not running.
	ErrNotRunning error = fmt.Errorf("supervisor not running")
	// ErrServiceNotFound is returned when a service is not found.
	ErrServiceNotFound error = fmt.Errorf("service not found")
	// ErrDependencyCycle is returned when the service dependency graph has a cycle.
	ErrDependencyCycle error = fmt.Errorf("dependency cycle detected")
)

// EventHandler is a callback function for process events.
// It is called when a service emits a lifecycle event.
type EventHandler func(serviceName string, event *domain.Event)

// ErrorHandler is a callback function for handling non-fatal errors.
// These errors occur in recovery/cleanup paths where the supervisor
// continues operating despite the error. Examples include:
//   - Errors stopping services during shutdown (best-effort cleanup)
//   - Errors restarting services during configuration reload
//
// If no handler is set, these errors are silently discarded.
// Setting a handler allows logging or monitoring of these conditions.
type ErrorHandler func(operation string, serviceName string, err error)

// Supervisor manages multiple services and their lifecycle.
// It coordinates starting, stopping, and monitoring of all configured services,
// starting them in dependency order with independent services started in parallel.
type Supervisor struct {
	// mu is the mutex for thread-safe access.
	mu sync.RWMutex
	// config is the service configuration.
	config *domainconfig.Config
	// loader is the configuration loader.
	loader appconfig.Loader
	// executor is the process execution.
	executor domain.Executor
	// managers is the map of service managers.
	managers map[string]*applifecycle.Manager
	// startOrder is the dependency-ordered batches of service names;
	// services within a batch may be started concurrently.
	startOrder [][]string
	// reaper is the zombie process reaper (domain port).
	reaper domainlifecycle.Reaper
	// state is the current supervisor state.
	state State
	// ctx is the context for cancellation.
	ctx context.Context
	// cancel is the cancel function.
	cancel context.CancelFunc
	// wg is the wait group for goroutines.
	wg sync.WaitGroup
	// eventHandler is the optional callback for events.
	eventHandler EventHandler
	// errorHandler is the optional callback for non-fatal errors in recovery paths.
	errorHandler ErrorHandler
	// stats holds per-service statistics.
	stats map[string]*ServiceStats
}

// NewSupervisor creates a new supervisor from configuration.
//
// Params:
//   - cfg: the service configuration.
//   - loader: the configuration loader for reloading.
//   - executor: the process execution.
//   - reaper: the zombie process reaper.
//
// Returns:
//   - *Supervisor: the new supervisor instance.
//   - error: an error if configuration is invalid or its dependency graph has a cycle.
func NewSupervisor(cfg *domainconfig.Config, loader appconfig.Loader, executor domain.Executor, reaper domainlifecycle.Reaper) (*Supervisor, error) {
	// Validate the configuration before creating the supervisor.
	if err := cfg.Validate(); err != nil {
		// Return nil supervisor and validation error.
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	order, err := buildStartOrder(cfg.Services)
	// Return error when dependencies cannot be resolved into an order.
	if err != nil {
		return nil, err
	}

	s := &Supervisor{
		config:     cfg,
		loader:     loader,
		executor:   executor,
		managers:   make(map[string]*applifecycle.Manager, len(cfg.Services)),
		startOrder: order,
		reaper:     reaper,
		state:      StateStopped,
		stats:      make(map[string]*ServiceStats, len(cfg.Services)),
	}

	// Create a manager for each configured service.
	for i := range cfg.Services {
		svc := &cfg.Services[i]
		s.managers[svc.Name] = applifecycle.NewManager(svc, executor)
		s.stats[svc.Name] = NewServiceStats()
	}

	// Return the configured supervisor.
	return s, nil
}

// buildStartOrder computes the dependency-ordered start batches for a set of
// services using Kahn's algorithm over the union of Requires, Wants and After
// edges. Each returned batch can be started concurrently because nothing in
// it depends on anything else in it.
//
// Params:
//   - services: the services to order.
//
// Returns:
//   - [][]string: successive batches of service names safe to start in parallel.
//   - error: ErrDependencyCycle if the graph is not a DAG.
func buildStartOrder(services []domainconfig.ServiceConfig) ([][]string, error) {
	edges := make(map[string][]string, len(services))
	indegree := make(map[string]int, len(services))
	// Seed every known service so isolated nodes are still scheduled.
	for i := range services {
		name := services[i].Name
		edges[name] = nil
		indegree[name] = 0
	}

	addEdge := func(from, to string) {
		edges[from] = append(edges[from], to)
		indegree[to]++
	}

	for i := range services {
		svc := &services[i]
		for _, dep := range svc.Requires {
			addEdge(dep, svc.Name)
		}
		for _, dep := range svc.Wants {
			addEdge(dep, svc.Name)
		}
		for _, dep := range svc.After {
			addEdge(dep, svc.Name)
		}
	}

	var order [][]string
	remaining := len(indegree)
	for remaining > 0 {
		var batch []string
		for name, degree := range indegree {
			// A node with no remaining incoming edges is ready this round.
			if degree == 0 {
				batch = append(batch, name)
			}
		}
		// No ready nodes but names remain: the graph has a cycle. The
		// remaining indegree keys are exactly the cycle's members (plus
		// anything downstream of it, still blocked on it).
		if len(batch) == 0 {
			names := make([]string, 0, len(indegree))
			for name := range indegree {
				names = append(names, name)
			}
			sort.Strings(names)
			return nil, fmt.Errorf("%w: %s", ErrDependencyCycle, strings.Join(names, ", "))
		}
		for _, name := range batch {
			delete(indegree, name)
			for _, next := range edges[name] {
				indegree[next]--
			}
		}
		order = append(order, batch)
		remaining -= len(batch)
	}
	return order, nil
}

// Start starts all managed services in dependency order.
//
// Params:
//   - ctx: the context for cancellation.
//
// Returns:
//   - error: an error if any service fails to start.
//
// Goroutine lifecycle:
//   - Spawns one goroutine per service for monitoring.
//   - Goroutines run until Stop is called or context is cancelled.
//   - Use Stop() to terminate all monitoring goroutines.
func (s *Supervisor) Start(ctx context.Context) error {
	// Initialize supervisor state and context.
	if err := s.initializeStart(ctx); err != nil {
		// Return initialization error.
		return err
	}

	// Start zombie reaper if configured.
	s.startReaper()

	// Start all managed services in dependency order.
	if err := s.startAllServices(); err != nil {
		// Return service start error.
		return err
	}

	// Start monitoring goroutines for each service.
	s.startMonitoringGoroutines()

	// Mark supervisor as running.
	s.mu.Lock()
	s.state = StateRunning
	s.mu.Unlock()

	// Return nil on successful start.
	return nil
}

// initializeStart sets up the supervisor state for starting.
//
// Params:
//   - ctx: the parent context.
//
// Returns:
//   - error: ErrAlreadyRunning if supervisor is already running.
func (s *Supervisor) initializeStart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Check if already running.
	if s.state != StateStopped {
		// Return error when supervisor is already running.
		return ErrAlreadyRunning
	}

	// Set state and create cancellable context.
	s.state = StateStarting
	s.ctx, s.cancel = context.WithCancel(ctx)
	// Return nil on successful initialization.
	return nil
}

// startReaper starts the zombie reaper if configured.
func (s *Supervisor) startReaper() {
	// Skip if reaper is not configured.
	if s.reaper == nil {
		// Return early when reaper is nil.
		return
	}
	s.reaper.Start()
}

// startAllServices starts all managed services batch by batch, following the
// dependency order computed at construction time. Services within a batch
// start concurrently; the supervisor waits for a batch to finish starting
// before moving to the next so dependents never race their dependencies.
//
// Idle-typed services are deferred out of their dependency batch and started
// last, after every other service is up, since their contract is to run only
// once the supervisor is otherwise idle rather than as soon as their
// dependencies are satisfied.
//
// Returns:
//   - error: the joined start errors of the first batch that failed, or nil on success.
func (s *Supervisor) startAllServices() error {
	var idle []string
	for _, batch := range s.startOrder {
		active, deferred := s.partitionIdle(batch)
		idle = append(idle, deferred...)
		if err := s.startBatch(active); err != nil {
			s.stopAll()
			s.mu.Lock()
			s.state = StateStopped
			s.mu.Unlock()
			// Return wrapped start error.
			return err
		}
	}
	if len(idle) > 0 {
		if err := s.startBatch(idle); err != nil {
			s.stopAll()
			s.mu.Lock()
			s.state = StateStopped
			s.mu.Unlock()
			return err
		}
	}
	// Return nil when all services started successfully.
	return nil
}

// partitionIdle splits a start batch into the services to start now and the
// idle-typed services to defer to the final trailing batch.
//
// Params:
//   - batch: the service names to partition.
//
// Returns:
//   - []string: the non-idle service names, to start in this batch.
//   - []string: the idle service names, deferred to start last.
func (s *Supervisor) partitionIdle(batch []string) (active []string, deferred []string) {
	for _, name := range batch {
		mgr, ok := s.managers[name]
		if ok && mgr.ServiceType() == domainconfig.TypeIdle {
			deferred = append(deferred, name)
			continue
		}
		active = append(active, name)
	}
	return active, deferred
}

// startBatch starts every service named in the batch concurrently.
//
// Params:
//   - batch: the service names to start, none of which depend on another in the batch.
//
// Returns:
//   - error: every start error in the batch, joined with errors.Join, or nil.
func (s *Supervisor) startBatch(batch []string) error {
	var wg sync.WaitGroup
	errs := make([]error, len(batch))
	for i, name := range batch {
		mgr, ok := s.managers[name]
		// Skip unknown names defensively; buildStartOrder only emits known services.
		if !ok {
			continue
		}
		wg.Add(1)
		go func(idx int, serviceName string, m *applifecycle.Manager) {
			defer wg.Done()
			if err := m.Start(); err != nil {
				errs[idx] = fmt.Errorf("failed to start service %s: %w", serviceName, err)
			}
		}(i, name, mgr)
	}
	wg.Wait()
	return errors.Join(errs...)
}

// startMonitoringGoroutines spawns monitoring goroutines for each service.
func (s *Supervisor) startMonitoringGoroutines() {
	// Start monitoring goroutine for each service.
	for name, mgr := range s.managers {
		s.wg.Add(1)
		go s.monitorService(name, mgr)
	}
}

// Stop gracefully stops all managed services.
//
// Returns:
//   - error: always nil, provided for interface compatibility.
func (s *Supervisor) Stop() error {
	s.mu.Lock()
	// Check if the supervisor is running.
	if s.state != StateRunning {
		s.mu.Unlock()
		// Return nil when not running.
		return nil
	}
	s.state = StateStopping
	s.cancel()
	s.mu.Unlock()

	s.stopAll()
	s.wg.Wait()

	// Stop the zombie reaper if available.
	if s.reaper != nil {
		s.reaper.Stop()
	}

	s.mu.Lock()
	s.state = StateStopped
	s.mu.Unlock()

	// Return nil on successful stop.
	return nil
}

// stopAll stops all managed services in reverse dependency order: the last
// start batch is stopped first, the first batch last, so a service never
// stops while something that depends on it is still running. Services
// within a batch stop concurrently since nothing in one depends on another.
// Errors during stop are reported via handleRecoveryError (best-effort cleanup).
//
// Goroutine lifecycle:
//   - Spawns one goroutine per service within each batch.
//   - All goroutines in a batch complete before the previous batch starts.
//   - Method blocks until every batch has stopped.
func (s *Supervisor) stopAll() {
	s.mu.RLock()
	order := s.startOrder
	s.mu.RUnlock()

	stopped := make(map[string]bool, len(s.managers))
	for i := len(order) - 1; i >= 0; i-- {
		s.stopBatch(order[i])
		for _, name := range order[i] {
			stopped[name] = true
		}
	}

	// Managers added after startOrder was last computed (e.g. via reload)
	// have no batch of their own; stop whatever is left, concurrently.
	var wg sync.WaitGroup
	for name, mgr := range s.managers {
		if stopped[name] {
			continue
		}
		serviceName := name
		m := mgr
		wg.Go(func() {
			if err := m.Stop(); err != nil {
				s.handleRecoveryError("stop", serviceName, err)
			}
		})
	}
	wg.Wait()
}

// stopBatch stops every service named in the batch concurrently and waits
// for all of them to finish before returning.
//
// Params:
//   - batch: the service names to stop.
func (s *Supervisor) stopBatch(batch []string) {
	var wg sync.WaitGroup
	for _, name := range batch {
		mgr, ok := s.managers[name]
		if !ok {
			continue
		}
		serviceName := name
		m := mgr
		wg.Go(func() {
			if err := m.Stop(); err != nil {
				s.handleRecoveryError("stop", serviceName, err)
			}
		})
	}
	wg.Wait()
}

// Reload reloads the configuration. Every service still configured is
// stopped and started again with its new definition, whether or not that
// definition changed; newly added services are started and services no
// longer configured are stopped and removed.
//
// Returns:
//   - error: an error if the reload fails.
func (s *Supervisor) Reload() error {
	// Check state and get config path without holding lock during I/O.
	s.mu.RLock()
	state := s.state
	configPath := s.config.ConfigPath
	s.mu.RUnlock()

	// Check if the supervisor is running.
	if state != StateRunning {
		// Return error when not running.
		return ErrNotRunning
	}

	// Load configuration without holding lock (I/O operation).
	newCfg, err := s.loader.Load(configPath)
	// Handle configuration load error.
	if err != nil {
		// Return wrapped error on load failure.
		return fmt.Errorf("failed to reload config: %w", err)
	}

	order, err := buildStartOrder(newCfg.Services)
	// Reject a reload that would leave the supervisor with an unorderable graph.
	if err != nil {
		return err
	}

	// Acquire write lock for state updates.
	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check state after acquiring lock (may have changed).
	if s.state != StateRunning {
		// Return error when no longer running.
		return ErrNotRunning
	}

	s.updateServices(newCfg)
	s.removeDeletedServices(newCfg)

	s.config = newCfg
	s.startOrder = order
	// Return nil on successful reload.
	return nil
}

// updateServices updates or adds managers for services in the new configuration.
// Errors during stop/start are reported via handleRecoveryError (best-effort reload).
//
// Params:
//   - newCfg: the new service configuration.
//
// Goroutine lifecycle:
//   - May spawn new goroutines for monitoring newly added services.
//   - Goroutines run until Stop is called or context is cancelled.
//   - Use Stop() to terminate all monitoring goroutines.
func (s *Supervisor) updateServices(newCfg *domainconfig.Config) {
	// Iterate through all services in the new configuration.
	for i := range newCfg.Services {
		svc := &newCfg.Services[i]
		// Check if the service already exists.
		if mgr, exists := s.managers[svc.Name]; exists {
			// Stop existing manager (best-effort).
			if err := mgr.Stop(); err != nil {
				s.handleRecoveryError("stop-for-reload", svc.Name, err)
			}
			s.managers[svc.Name] = applifecycle.NewManager(svc, s.executor)
			// Start new manager (best-effort).
			if err := s.managers[svc.Name].Start(); err != nil {
				s.handleRecoveryError("start-for-reload", svc.Name, err)
			}
		} else {
			// Create and start a new manager for the new service.
			s.managers[svc.Name] = applifecycle.NewManager(svc, s.executor)
			// Start new manager (best-effort).
			if err := s.managers[svc.Name].Start(); err != nil {
				s.handleRecoveryError("start-new-service", svc.Name, err)
			}
			s.wg.Add(1)
			go s.monitorService(svc.Name, s.managers[svc.Name])
		}
	}
}

// removeDeletedServices removes managers for services no longer in configuration.
// Errors during stop are reported via handleRecoveryError (best-effort cleanup).
//
// Params:
//   - newCfg: the new service configuration.
func (s *Supervisor) removeDeletedServices(newCfg *domainconfig.Config) {
	newServices := make(map[string]bool, len(newCfg.Services))
	// Build a map of services in the new configuration.
	for i := range newCfg.Services {
		newServices[newCfg.Services[i].Name] = true
	}
	// Remove services that are no longer in the configuration.
	for name, mgr := range s.managers {
		// Check if the service should be removed.
		if !newServices[name] {
			// Stop removed service (best-effort).
			if err := mgr.Stop(); err != nil {
				s.handleRecoveryError("stop-removed-service", name, err)
			}
			delete(s.managers, name)
		}
	}
}

// monitorService monitors a service for events.
//
// Params:
//   - name: the service name.
//   - mgr: the process manager interface.
func (s *Supervisor) monitorService(name string, mgr Eventser) {
	defer s.wg.Done()

	events := mgr.Events()
	// Loop until context is cancelled or events channel is closed.
	for {
		// Select between context cancellation and events.
		select {
		case <-s.ctx.Done():
			// Return when context is cancelled.
			return
		case event, ok := <-events:
			// Check if the events channel is closed.
			if !ok {
				// Return when channel is closed.
				return
			}
			// Handle the event: update stats and call handler.
			s.handleEvent(name, &event)
		}
	}
}

// handleEvent processes a service event.
// It updates statistics and calls the optional event handler.
//
// Params:
//   - name: the service name.
//   - event: the process event.
func (s *Supervisor) handleEvent(name string, event *domain.Event) {
	s.mu.Lock()
	// Get or create stats for this service.
	stats, ok := s.stats[name]
	// Create new stats entry if service not tracked yet.
	if !ok {
		stats = NewServiceStats()
		s.stats[name] = stats
	}

	s.mu.Unlock()

	// Update statistics based on event type. Counters are atomic so this
	// happens outside the map lock.
	switch event.Type {
	// Started: service successfully started.
	case domain.EventStarted:
		stats.IncrementStart()
	// Stopped: service stopped normally.
	case domain.EventStopped:
		stats.IncrementStop()
	// Failed: service exited with error.
	case domain.EventFailed:
		stats.IncrementFail()
	// Restarting: service is restarting after exit.
	case domain.EventRestarting:
		stats.IncrementRestart()
	}

	// Call user event handler if registered.
	if s.eventHandler != nil {
		s.eventHandler(name, event)
	}
}

// SetEventHandler sets the callback for process events.
//
// Params:
//   - handler: the callback function to invoke on events.
func (s *Supervisor) SetEventHandler(handler EventHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eventHandler = handler
}

// SetErrorHandler sets the callback for non-fatal errors in recovery paths.
// These errors occur during best-effort operations like shutdown cleanup
// or configuration reload where the supervisor continues despite errors.
//
// Params:
//   - handler: the callback function to invoke on non-fatal errors.
func (s *Supervisor) SetErrorHandler(handler ErrorHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorHandler = handler
}

// handleRecoveryError reports a non-fatal error to the error handler if set.
// This method is called from recovery/cleanup paths where errors don't stop
// the overall operation.
//
// Params:
//   - operation: description of the operation that failed (e.g., "stop", "start").
//   - serviceName: the name of the affected service.
//   - err: the error that occurred.
func (s *Supervisor) handleRecoveryError(operation, serviceName string, err error) {
	// Skip if no error.
	if err == nil {
		// Return early when there is no error to handle.
		return
	}

	s.mu.RLock()
	handler := s.errorHandler
	s.mu.RUnlock()

	// Call handler if registered.
	if handler != nil {
		handler(operation, serviceName, err)
	}
}

// Stats returns statistics for a specific service.
//
// Params:
//   - name: the service name.
//
// Returns:
//   - *ServiceStats: the service statistics, or nil if not found.
func (s *Supervisor) Stats(name string) *ServiceStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Return the tracked stats for the requested service, if any.
	if stats, ok := s.stats[name]; ok {
		return stats
	}
	// Service not found, return nil.
	return nil
}

// AllStats returns statistics for all services.
//
// Returns:
//   - map[string]*ServiceStats: all service statistics, keyed by name.
func (s *Supervisor) AllStats() map[string]*ServiceStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[string]*ServiceStats, len(s.stats))
	for name, stats := range s.stats {
		result[name] = stats
	}
	// Return the stats map.
	return result
}

// Eventser defines the interface for monitoring services.
// This interface is used to abstract the manager for testing.
type Eventser interface {
	// Events returns the event channel for monitoring.
	Events() <-chan domain.Event
}

// State returns the current supervisor state.
//
// Returns:
//   - State: the current state.
func (s *Supervisor) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Return the current state.
	return s.state
}

// Services returns information about all managed services.
//
// Returns:
//   - map[string]ServiceInfo: a map of service names to their information.
func (s *Supervisor) Services() map[string]ServiceInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := make(map[string]ServiceInfo, len(s.managers))
	// Collect information from each manager.
	for name, mgr := range s.managers {
		info[name] = ServiceInfo{
			Name:       name,
			InstanceID: mgr.InstanceID(),
			State:      mgr.State(),
			PID:        mgr.PID(),
			Uptime:     mgr.Uptime(),
		}
	}
	// Return the service information map.
	return info
}

// ServiceSnapshotsForTUI returns service data formatted for TUI display.
//
// Returns:
//   - []ServiceSnapshotForTUI: a slice of service snapshots.
func (s *Supervisor) ServiceSnapshotsForTUI() []ServiceSnapshotForTUI {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]ServiceSnapshotForTUI, 0, len(s.managers))
	for name, mgr := range s.managers {
		state := mgr.State()
		stats := s.stats[name]
		snap := ServiceSnapshotForTUI{
			Name:       mgr.Name(),
			StateInt:   int(state),
			StateName:  state.String(),
			PID:        mgr.PID(),
			UptimeSecs: mgr.Uptime(),
		}
		// Only a running process has ports worth probing.
		if pid := mgr.PID(); pid > 0 {
			snap.Ports = getListeningPorts(pid)
		}
		if stats != nil {
			snap.RestartCount = stats.RestartCount()
		}
		result = append(result, snap)
	}
	return result
}

// Service returns a specific service manager.
//
// Params:
//   - name: the service name.
//
// Returns:
//   - *applifecycle.Manager: the manager if found.
//   - bool: true if the service was found.
func (s *Supervisor) Service(name string) (*applifecycle.Manager, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mgr, ok := s.managers[name]
	// Return the manager and found status.
	return mgr, ok
}

// StartService starts a specific service.
//
// Params:
//   - name: the service name.
//
// Returns:
//   - error: an error if the service is not found or fails to start.
func (s *Supervisor) StartService(name string) error {
	s.mu.RLock()
	mgr, ok := s.managers[name]
	s.mu.RUnlock()

	// Check if the service exists.
	if !ok {
		// Return error for missing service.
		return fmt.Errorf("%w: %s", ErrServiceNotFound, name)
	}
	// Return the result of starting the service.
	return mgr.Start()
}

// StopService stops a specific service.
//
// Params:
//   - name: the service name.
//
// Returns:
//   - error: an error if the service is not found or fails to stop.
func (s *Supervisor) StopService(name string) error {
	s.mu.RLock()
	mgr, ok := s.managers[name]
	s.mu.RUnlock()

	// Check if the service exists.
	if !ok {
		// Return error for missing service.
		return fmt.Errorf("%w: %s", ErrServiceNotFound, name)
	}
	// Return the result of stopping the service.
	return mgr.Stop()
}

// RestartService restarts a specific service.
//
// Params:
//   - name: the service name.
//
// Returns:
//   - error: an error if the service is not found or fails to restart.
func (s *Supervisor) RestartService(name string) error {
	s.mu.RLock()
	mgr, ok := s.managers[name]
	s.mu.RUnlock()

	// Check if the service exists.
	if !ok {
		// Return error for missing service.
		return fmt.Errorf("%w: %s", ErrServiceNotFound, name)
	}

	// Stop the service first.
	if err := mgr.Stop(); err != nil {
		// Return stop error if failed.
		return err
	}
	// Return the result of starting the service.
	return mgr.Start()
}

// ReloadService reloads a specific service in place (signals it rather than
// restarting it), preserving its PID and restart count.
//
// Params:
//   - name: the service name.
//
// Returns:
//   - error: an error if the service is not found or fails to reload.
func (s *Supervisor) ReloadService(name string) error {
	s.mu.RLock()
	mgr, ok := s.managers[name]
	s.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrServiceNotFound, name)
	}
	return mgr.Reload()
}

// ServiceConfig returns the configuration for a known service, including its
// description and enabled bit.
//
// Params:
//   - name: the service name.
//
// Returns:
//   - *domainconfig.ServiceConfig: the service's configuration, if found.
//   - bool: true if the service is known.
func (s *Supervisor) ServiceConfig(name string) (*domainconfig.ServiceConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc := s.config.FindService(name)
	if svc == nil {
		return nil, false
	}
	return svc, true
}

// SetServiceEnabled updates the in-memory enabled bit for a known service.
// Persisting it across restarts is the caller's responsibility.
//
// Params:
//   - name: the service name.
//   - enabled: the new enabled value.
//
// Returns:
//   - error: ErrServiceNotFound if no such service is configured.
func (s *Supervisor) SetServiceEnabled(name string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc := s.config.FindService(name)
	if svc == nil {
		return fmt.Errorf("%w: %s", ErrServiceNotFound, name)
	}
	svc.Enabled = enabled
	return nil
}
