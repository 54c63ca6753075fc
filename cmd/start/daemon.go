//go:build linux

package main

import (
	"context"
	"fmt"

	appcontrol "github.com/kodflow/start/internal/application/control"
	"github.com/kodflow/start/internal/application/initsystem"
	"github.com/kodflow/start/internal/application/supervisor"
	"github.com/kodflow/start/internal/infrastructure/kernel/adapters"
	"github.com/kodflow/start/internal/infrastructure/observability/logging/daemon"
	"github.com/kodflow/start/internal/infrastructure/persistence/config/unitdir"
	"github.com/kodflow/start/internal/infrastructure/persistence/storage/boltdb"
	"github.com/kodflow/start/internal/infrastructure/process/executor"
	"github.com/kodflow/start/internal/infrastructure/process/reaper"
	"github.com/kodflow/start/internal/infrastructure/process/signals"
	infracontrol "github.com/kodflow/start/internal/infrastructure/transport/control"
)

// runDaemon boots the process as the init system: it loads the configured
// services, starts the supervisor, serves the control socket, and blocks
// in the PID-1 event loop until a termination signal or shutdown request
// is handled.
func runDaemon() error {
	logger := daemon.DefaultLogger()
	defer logger.Close()

	loader := unitdir.NewLoader(buildRegistry(), logger)
	cfg, err := loader.Load(globalFlags.servicesDir)
	if err != nil {
		return fmt.Errorf("loading services: %w", err)
	}

	sup, err := supervisor.NewSupervisor(cfg, loader, executor.NewExecutor(), reaper.New())
	if err != nil {
		return fmt.Errorf("creating supervisor: %w", err)
	}

	enabledStore, err := boltdb.NewEnabledStore(globalFlags.enabledDB)
	if err != nil {
		return fmt.Errorf("opening enabled-bit store: %w", err)
	}

	initCfg := initsystem.Config{
		MountFilesystems: !globalFlags.noMount,
		RequirePID1:      !globalFlags.noPID1,
	}
	in, err := initsystem.New(initCfg, sup, signals.New(), adapters.NewUnixSystemController(), logger)
	if err != nil {
		return fmt.Errorf("initializing init system: %w", err)
	}

	dispatcher := appcontrol.NewDispatcher(appcontrol.NewSupervisorAdapter(sup), enabledStore, in)
	server := infracontrol.NewServer(globalFlags.socketPath, dispatcher, logger)

	go func() {
		if err := server.Serve(); err != nil {
			logger.Warn("control", "serve", err.Error(), nil)
		}
	}()
	defer server.Close()

	if err := in.Run(context.Background()); err != nil {
		return fmt.Errorf("running init: %w", err)
	}
	return nil
}
