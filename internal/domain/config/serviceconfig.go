// Package config provides domain value objects for service configuration.
package config

import "github.com/kodflow/start/internal/domain/shared"

const (
	// defaultRestartDelaySeconds is the default delay in seconds between restart attempts.
	defaultRestartDelaySeconds int = 5
	// defaultTimeoutStartSeconds is the default time allotted for a service to reach ready.
	defaultTimeoutStartSeconds int = 90
	// defaultTimeoutStopSeconds is the default time allotted for a service to stop gracefully.
	defaultTimeoutStopSeconds int = 30
)

// ServiceType describes how the process manager should treat a service's
// main process, matching the service unit's type field.
type ServiceType string

const (
	// TypeSimple is the default: the listed command is the main process.
	TypeSimple ServiceType = "simple"
	// TypeForking expects the command to fork and exit, leaving a daemonized child.
	TypeForking ServiceType = "forking"
	// TypeOneshot runs once to completion and is not expected to stay running.
	TypeOneshot ServiceType = "oneshot"
	// TypeNotify expects the process to signal readiness explicitly.
	TypeNotify ServiceType = "notify"
	// TypeIdle delays execution until other start jobs have dispatched.
	TypeIdle ServiceType = "idle"
)

// ServiceLogging defines the log stream settings for a service's stdout and stderr.
type ServiceLogging struct {
	// Stdout configures the standard output stream.
	Stdout LogStreamConfig
	// Stderr configures the standard error stream.
	Stderr LogStreamConfig
}

// ServiceConfig defines a single service configuration.
// It specifies the command, environment, dependency ordering, and restart policy.
type ServiceConfig struct {
	// Name is the unique identifier for this service.
	Name string
	// Description is a human-readable summary of the service's purpose.
	Description string
	// Type controls how the process manager treats the main process.
	Type ServiceType
	// Command is the executable path or command used to start the service.
	Command string
	// Args contains command-line arguments passed to the command.
	Args []string
	// ExecStop is an optional command run to stop the service gracefully,
	// before escalating to a signal-based kill.
	ExecStop string
	// ExecReload is an optional command run on a reload request instead of
	// a full stop/start cycle.
	ExecReload string
	// User specifies the username under which the service runs.
	User string
	// Group specifies the group under which the service runs.
	Group string
	// WorkingDirectory specifies the working directory for the service process.
	WorkingDirectory string
	// Environment contains key-value pairs of environment variables.
	Environment map[string]string
	// Requires lists service names that must be running for this service to
	// start; a failure of a required dependency takes this service down too.
	Requires []string
	// Wants lists service names to order before this one without making
	// their failure fatal to this service.
	Wants []string
	// After lists service names this service must start after, without
	// implying a dependency (ordering only).
	After []string
	// Before lists service names that must start after this one.
	Before []string
	// Restart defines the restart behavior when the service exits.
	Restart RestartConfig
	// TimeoutStart bounds how long the manager waits for the service to
	// become ready before declaring the start failed.
	TimeoutStart shared.Duration
	// TimeoutStop bounds how long the manager waits after a graceful stop
	// request before escalating to a kill signal.
	TimeoutStop shared.Duration
	// Logging defines per-service logging configuration.
	Logging ServiceLogging
	// Enabled indicates whether the service starts automatically at boot.
	Enabled bool
}

// NewServiceConfig creates a new ServiceConfig with the given name and command.
//
// Params:
//   - name: unique identifier for the service.
//   - command: executable path or command to run.
//
// Returns:
//   - ServiceConfig: service configuration with default type, restart policy, and timeouts.
func NewServiceConfig(name, command string) ServiceConfig {
	return ServiceConfig{
		Name:    name,
		Command: command,
		Type:    TypeSimple,
		Restart: RestartConfig{
			Policy: RestartOnFailure,
			Delay:  shared.Seconds(defaultRestartDelaySeconds),
		},
		TimeoutStart: shared.Seconds(defaultTimeoutStartSeconds),
		TimeoutStop:  shared.Seconds(defaultTimeoutStopSeconds),
		Enabled:      true,
	}
}
