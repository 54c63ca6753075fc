//go:build linux

package main

import (
	"context"

	"github.com/spf13/cobra"

	domaincontrol "github.com/kodflow/start/internal/domain/control"
	domainprocess "github.com/kodflow/start/internal/domain/process"
	infracontrol "github.com/kodflow/start/internal/infrastructure/transport/control"
	"github.com/kodflow/start/internal/infrastructure/transport/tui"
	"github.com/kodflow/start/internal/infrastructure/transport/tui/model"
)

// stateByName maps the wire-facing state string back to the process state
// enum the TUI's service table renders.
var stateByName = map[string]domainprocess.State{
	"stopped":  domainprocess.StateStopped,
	"starting": domainprocess.StateStarting,
	"running":  domainprocess.StateRunning,
	"stopping": domainprocess.StateStopping,
	"failed":   domainprocess.StateFailed,
}

// socketServiceProvider feeds the watch TUI from repeated GetAllStatus polls
// over the control socket rather than an in-process supervisor reference.
type socketServiceProvider struct {
	client *infracontrol.Client
}

// Services implements tui.ServiceProvider.
func (p *socketServiceProvider) Services() []model.ServiceSnapshot {
	resp, err := p.client.Send(domaincontrol.NewBareCommand(domaincontrol.KindGetAllStatus))
	if err != nil {
		return nil
	}

	snapshots := make([]model.ServiceSnapshot, 0, len(resp.Services))
	for _, svc := range resp.Services {
		snapshots = append(snapshots, model.ServiceSnapshot{
			Name:  svc.Name,
			State: stateByName[svc.State],
		})
	}
	return snapshots
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch service state in a live-updating table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !shouldUseControlSocket(globalFlags.socketPath) {
				return errNoDaemon
			}

			config := tui.DefaultConfig(version)
			config.Mode = tui.ModeInteractive

			view := tui.New(config)
			view.SetServiceProvider(&socketServiceProvider{client: infracontrol.NewClient(globalFlags.socketPath)})
			view.SetConfigPath(globalFlags.servicesDir)

			return view.Run(context.Background())
		},
	}
}
