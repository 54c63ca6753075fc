// Package config provides domain value objects for service configuration.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validation errors.
var (
	// ErrNoServices indicates no services are configured.
	ErrNoServices error = errors.New("no services configured")
	// ErrEmptyServiceName indicates a service has no name.
	ErrEmptyServiceName error = errors.New("service name is required")
	// ErrEmptyCommand indicates a service has no command.
	ErrEmptyCommand error = errors.New("service command is required")
	// ErrDuplicateServiceName indicates duplicate service names.
	ErrDuplicateServiceName error = errors.New("duplicate service name")
	// ErrUnknownDependency indicates a service references a dependency that
	// does not exist in the configuration.
	ErrUnknownDependency error = errors.New("unknown dependency")
	// ErrSelfDependency indicates a service lists itself as a dependency.
	ErrSelfDependency error = errors.New("service cannot depend on itself")
)

// Validate validates the configuration.
//
// Params:
//   - cfg: configuration to validate.
//
// Returns:
//   - error: validation error if any.
func Validate(cfg *Config) error {
	// Check if at least one service is configured.
	if len(cfg.Services) == 0 {
		return ErrNoServices
	}

	names := make(map[string]bool, len(cfg.Services))

	for i := range cfg.Services {
		svc := &cfg.Services[i]

		if err := validateService(svc); err != nil {
			return fmt.Errorf("service %q: %w", svc.Name, err)
		}

		if names[svc.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateServiceName, svc.Name)
		}
		names[svc.Name] = true
	}

	for i := range cfg.Services {
		if err := validateDependencies(&cfg.Services[i], names); err != nil {
			return fmt.Errorf("service %q: %w", cfg.Services[i].Name, err)
		}
	}

	return nil
}

// validateService validates a single service configuration's own fields.
//
// Params:
//   - svc: service configuration to validate.
//
// Returns:
//   - error: validation error if any.
func validateService(svc *ServiceConfig) error {
	if svc.Name == "" {
		return ErrEmptyServiceName
	}

	if svc.Command == "" {
		return ErrEmptyCommand
	}

	return nil
}

// validateDependencies checks that every dependency a service references by
// name exists in the configuration and is not the service itself. Cycle
// detection over the resulting graph is the Service Manager's job, since it
// already builds the dependency DAG to compute a parallel start order.
//
// Params:
//   - svc: service configuration to validate.
//   - names: set of all known service names.
//
// Returns:
//   - error: validation error if any.
func validateDependencies(svc *ServiceConfig, names map[string]bool) error {
	groups := [][]string{svc.Requires, svc.Wants, svc.After, svc.Before}

	for _, group := range groups {
		for _, dep := range group {
			if dep == svc.Name {
				return ErrSelfDependency
			}
			if !names[dep] {
				return fmt.Errorf("%w: %s", ErrUnknownDependency, dep)
			}
		}
	}

	return nil
}

// dependencyNames returns the sorted, deduplicated union of Requires, Wants,
// and After for a service.
//
// Params:
//   - svc: service configuration to inspect.
//
// Returns:
//   - []string: deduplicated dependency service names.
func dependencyNames(svc *ServiceConfig) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(svc.Requires)+len(svc.Wants)+len(svc.After))

	for _, group := range [][]string{svc.Requires, svc.Wants, svc.After} {
		for _, dep := range group {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			out = append(out, dep)
		}
	}

	slices.Sort(out)
	return out
}
