//go:build linux

package main

import (
	"fmt"
	"os"

	"github.com/kodflow/start/internal/application/supervisor"
	"github.com/kodflow/start/internal/infrastructure/observability/logging/daemon"
	"github.com/kodflow/start/internal/infrastructure/persistence/config/unitdir"
	"github.com/kodflow/start/internal/infrastructure/process/executor"
	"github.com/kodflow/start/internal/infrastructure/process/reaper"
	infracontrol "github.com/kodflow/start/internal/infrastructure/transport/control"
)

// shouldUseControlSocket implements the control-plane's client-side
// dispatch rule: talk to a running daemon over the socket unless this
// process is itself PID 1, and only when the socket actually exists.
func shouldUseControlSocket(socketPath string) bool {
	if os.Getpid() == 1 {
		return false
	}
	return infracontrol.NewClient(socketPath).Available()
}

// buildLocalSupervisor loads the configured services and builds a
// throwaway, not-started supervisor for the CLI's local fallback: the
// operation the caller requested runs against this instance directly
// rather than against a daemon, since none is reachable.
func buildLocalSupervisor(servicesDir string) (*supervisor.Supervisor, error) {
	loader := unitdir.NewLoader(buildRegistry(), daemon.NewSilentLogger())
	cfg, err := loader.Load(servicesDir)
	if err != nil {
		return nil, fmt.Errorf("loading services: %w", err)
	}
	return supervisor.NewSupervisor(cfg, loader, executor.NewExecutor(), reaper.New())
}
