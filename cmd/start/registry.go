//go:build linux

package main

import (
	"github.com/kodflow/start/internal/domain/unit"
	"github.com/kodflow/start/internal/infrastructure/persistence/config/systemdunit"
	"github.com/kodflow/start/internal/infrastructure/persistence/config/toml"
	"github.com/kodflow/start/internal/infrastructure/persistence/config/yamlunit"
)

// buildRegistry assembles the unit loader registry with every supported
// on-disk unit format: native TOML, secondary YAML, and the conservative
// foreign systemd-unit stub.
func buildRegistry() *unit.Registry {
	registry := unit.NewRegistry()
	registry.Register(toml.New())
	registry.Register(yamlunit.New())
	registry.Register(systemdunit.New())
	return registry
}
