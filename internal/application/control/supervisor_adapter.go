package control

import (
	"github.com/kodflow/start/internal/application/supervisor"
	domainconfig "github.com/kodflow/start/internal/domain/config"
)

// SupervisorAdapter adapts *supervisor.Supervisor to the ServiceManager
// port this package depends on, converting its process-state vocabulary to
// the wire-facing one the control protocol uses.
type SupervisorAdapter struct {
	sup *supervisor.Supervisor
}

// NewSupervisorAdapter wraps a supervisor for use as a ServiceManager.
//
// Params:
//   - sup: the supervisor to adapt.
//
// Returns:
//   - *SupervisorAdapter: the adapter.
func NewSupervisorAdapter(sup *supervisor.Supervisor) *SupervisorAdapter {
	return &SupervisorAdapter{sup: sup}
}

// StartService delegates to the underlying supervisor.
func (a *SupervisorAdapter) StartService(name string) error { return a.sup.StartService(name) }

// StopService delegates to the underlying supervisor.
func (a *SupervisorAdapter) StopService(name string) error { return a.sup.StopService(name) }

// RestartService delegates to the underlying supervisor.
func (a *SupervisorAdapter) RestartService(name string) error { return a.sup.RestartService(name) }

// ReloadService delegates to the underlying supervisor.
func (a *SupervisorAdapter) ReloadService(name string) error { return a.sup.ReloadService(name) }

// ServiceConfig delegates to the underlying supervisor.
func (a *SupervisorAdapter) ServiceConfig(name string) (*domainconfig.ServiceConfig, bool) {
	return a.sup.ServiceConfig(name)
}

// SetServiceEnabled delegates to the underlying supervisor.
func (a *SupervisorAdapter) SetServiceEnabled(name string, enabled bool) error {
	return a.sup.SetServiceEnabled(name, enabled)
}

// Reload delegates to the underlying supervisor.
func (a *SupervisorAdapter) Reload() error { return a.sup.Reload() }

// Services converts the supervisor's ServiceInfo map to the wire-facing
// ServiceInfo shape.
func (a *SupervisorAdapter) Services() map[string]ServiceInfo {
	src := a.sup.Services()
	out := make(map[string]ServiceInfo, len(src))
	for name, info := range src {
		out[name] = ServiceInfo{
			State:      info.State.String(),
			PID:        info.PID,
			UptimeSecs: info.Uptime,
		}
	}
	return out
}

var _ ServiceManager = (*SupervisorAdapter)(nil)
