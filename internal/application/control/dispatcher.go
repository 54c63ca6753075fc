// Package control implements the application-level dispatch of control
// protocol commands onto the service manager.
package control

import (
	"fmt"

	domainconfig "github.com/kodflow/start/internal/domain/config"
	"github.com/kodflow/start/internal/domain/control"
)

// ServiceManager is the subset of the supervisor's contract the dispatcher
// depends on.
type ServiceManager interface {
	StartService(name string) error
	StopService(name string) error
	RestartService(name string) error
	ReloadService(name string) error
	ServiceConfig(name string) (*domainconfig.ServiceConfig, bool)
	SetServiceEnabled(name string, enabled bool) error
	Services() map[string]ServiceInfo
	Reload() error
}

// ServiceInfo is the minimal runtime view the dispatcher needs for status
// and listing responses.
type ServiceInfo struct {
	State      string
	PID        int
	UptimeSecs int64
}

// EnabledPersister persists a service's enabled bit across restarts.
type EnabledPersister interface {
	SetEnabled(service string, enabled bool) error
}

// ShutdownRequester enqueues a shutdown request on the init event loop.
type ShutdownRequester interface {
	RequestShutdown(shutdownType string) error
}

// Dispatcher routes decoded control commands to the service manager,
// persists the enabled bit on enable/disable, and requests shutdown via the
// init event loop.
type Dispatcher struct {
	manager  ServiceManager
	enabled  EnabledPersister
	shutdown ShutdownRequester
}

// NewDispatcher creates a control command dispatcher.
//
// Params:
//   - manager: the service manager to operate on.
//   - enabled: where to persist the enabled bit.
//   - shutdown: where to enqueue shutdown requests.
//
// Returns:
//   - *Dispatcher: a dispatcher ready to handle commands.
func NewDispatcher(manager ServiceManager, enabled EnabledPersister, shutdown ShutdownRequester) *Dispatcher {
	return &Dispatcher{manager: manager, enabled: enabled, shutdown: shutdown}
}

// Handle dispatches a single command and returns its response. It never
// returns a Go error: every failure is converted to an Error response, per
// the control protocol's contract that server errors never escape the
// connection handler.
//
// Params:
//   - cmd: the decoded command.
//
// Returns:
//   - control.Response: the response to serialize back to the client.
func (d *Dispatcher) Handle(cmd control.Command) control.Response {
	switch cmd.Kind {
	case control.KindStartService:
		return d.simple(cmd.Name, "started", d.manager.StartService)
	case control.KindStopService:
		return d.simple(cmd.Name, "stopped", d.manager.StopService)
	case control.KindRestartService:
		return d.simple(cmd.Name, "restarted", d.manager.RestartService)
	case control.KindReloadService:
		return d.simple(cmd.Name, "reloaded", d.manager.ReloadService)
	case control.KindEnableService:
		return d.setEnabled(cmd.Name, true)
	case control.KindDisableService:
		return d.setEnabled(cmd.Name, false)
	case control.KindGetServiceStatus:
		return d.getServiceStatus(cmd.Name)
	case control.KindGetAllStatus, control.KindListServices:
		return d.listServices()
	case control.KindShutdown:
		return d.requestShutdown(cmd.ShutdownType)
	case control.KindReloadDaemon:
		return d.reloadDaemon()
	case control.KindPing:
		return control.Pong()
	default:
		return control.Error(fmt.Sprintf("unknown command: %s", cmd.Kind))
	}
}

// simple dispatches a no-frills name-only operation and reports success or
// failure uniformly.
func (d *Dispatcher) simple(name, verb string, op func(string) error) control.Response {
	if err := op(name); err != nil {
		return control.Error(err.Error())
	}
	return control.Success(fmt.Sprintf("%s %s", name, verb))
}

func (d *Dispatcher) setEnabled(name string, enabled bool) control.Response {
	if err := d.manager.SetServiceEnabled(name, enabled); err != nil {
		return control.Error(err.Error())
	}
	if d.enabled != nil {
		if err := d.enabled.SetEnabled(name, enabled); err != nil {
			return control.Error(err.Error())
		}
	}
	verb := "disabled"
	if enabled {
		verb = "enabled"
	}
	return control.Success(fmt.Sprintf("%s %s", name, verb))
}

func (d *Dispatcher) getServiceStatus(name string) control.Response {
	infos := d.manager.Services()
	info, ok := infos[name]
	if !ok {
		return control.Error(fmt.Sprintf("service not found: %s", name))
	}

	var pid *int
	var uptime *int64
	if info.PID > 0 {
		p := info.PID
		pid = &p
		u := info.UptimeSecs
		uptime = &u
	}
	return control.NewServiceStatus(name, info.State, pid, uptime)
}

func (d *Dispatcher) listServices() control.Response {
	infos := d.manager.Services()
	summaries := make([]control.ServiceSummary, 0, len(infos))
	for name, info := range infos {
		summary := control.ServiceSummary{Name: name, State: info.State}
		if cfg, ok := d.manager.ServiceConfig(name); ok {
			summary.Enabled = cfg.Enabled
			summary.Description = cfg.Description
		}
		summaries = append(summaries, summary)
	}
	return control.NewServiceList(summaries)
}

func (d *Dispatcher) requestShutdown(shutdownType string) control.Response {
	if d.shutdown == nil {
		return control.Error("shutdown is not available: not running as init")
	}
	if err := d.shutdown.RequestShutdown(shutdownType); err != nil {
		return control.Error(err.Error())
	}
	return control.Success("shutdown requested")
}

func (d *Dispatcher) reloadDaemon() control.Response {
	if err := d.manager.Reload(); err != nil {
		return control.Error(err.Error())
	}
	return control.Success("daemon configuration reloaded")
}
