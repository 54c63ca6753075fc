// Package initsystem implements the PID-1 duties: mounting virtual
// filesystems, bringing the configured services up, and multiplexing
// termination signals and shutdown requests into a single event loop that
// ends in a kernel reboot call.
package initsystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	appcontrol "github.com/kodflow/start/internal/application/control"
	"github.com/kodflow/start/internal/domain/control"
	"github.com/kodflow/start/internal/domain/logging"
	"github.com/kodflow/start/internal/infrastructure/kernel/ports"
)

// ErrNotPID1 is returned by New when RequirePID1 is set but the current
// process is not PID 1.
var ErrNotPID1 = errors.New("initsystem: must run as PID 1")

// ErrShutdownAlreadyRequested is returned by RequestShutdown when a
// shutdown is already pending.
var ErrShutdownAlreadyRequested = errors.New("initsystem: shutdown already requested")

// mountTargets lists the virtual filesystems bootstrapped before services
// start, in the order they are mounted.
var mountTargets = []string{"/proc", "/sys", "/dev", "/dev/pts", "/run"}

// mountFstypes maps each bootstrap target to its filesystem type.
var mountFstypes = map[string]string{
	"/proc":    "proc",
	"/sys":     "sysfs",
	"/dev":     "devtmpfs",
	"/dev/pts": "devpts",
	"/run":     "tmpfs",
}

// Supervisor is the subset of the service manager's contract Init depends
// on to bring services up and tear them down.
type Supervisor interface {
	Start(ctx context.Context) error
	Stop() error
}

// Config configures an Init instance.
type Config struct {
	// MountFilesystems enables the virtual filesystem bootstrap.
	MountFilesystems bool
	// RequirePID1 enforces that the process is running as PID 1, and gates
	// whether shutdown ends in an actual kernel reboot call.
	RequirePID1 bool
}

// DefaultConfig returns the production configuration: PID 1 required,
// virtual filesystems mounted.
func DefaultConfig() Config {
	return Config{MountFilesystems: true, RequirePID1: true}
}

// Init owns PID-1 duties and the top-level event loop.
type Init struct {
	cfg     Config
	sup     Supervisor
	signals ports.SignalManager
	system  ports.SystemController
	logger  logging.Logger

	// shutdownCh carries a pending shutdown request from any goroutine
	// (the control server, a signal handler) to the event loop. Buffered to
	// capacity 1 so RequestShutdown never blocks its caller.
	shutdownCh chan string
}

// New creates an Init instance, enforcing the PID-1 requirement when
// configured.
//
// Params:
//   - cfg: the init configuration.
//   - sup: the service manager to start and stop.
//   - signals: the signal manager used to watch for termination signals.
//   - system: the system controller used to mount filesystems and reboot.
//   - logger: the ambient logger for lifecycle diagnostics.
//
// Returns:
//   - *Init: a configured, not-yet-running init instance.
//   - error: ErrNotPID1 if cfg.RequirePID1 is set and the process is not PID 1.
func New(cfg Config, sup Supervisor, signals ports.SignalManager, system ports.SystemController, logger logging.Logger) (*Init, error) {
	if cfg.RequirePID1 && os.Getpid() != 1 {
		return nil, fmt.Errorf("%w: pid %d", ErrNotPID1, os.Getpid())
	}
	return &Init{
		cfg:        cfg,
		sup:        sup,
		signals:    signals,
		system:     system,
		logger:     logger,
		shutdownCh: make(chan string, 1),
	}, nil
}

// NewForTest builds an Init with the PID-1 check and filesystem mounts
// disabled, for use in tests and in non-PID-1 operation such as the CLI's
// local in-process fallback.
//
// Params:
//   - sup: the service manager to start and stop.
//   - signals: the signal manager used to watch for termination signals.
//   - system: the system controller; Reboot is never invoked in this mode.
//   - logger: the ambient logger for lifecycle diagnostics.
//
// Returns:
//   - *Init: a configured init instance that never enforces PID 1 or reboots.
func NewForTest(sup Supervisor, signals ports.SignalManager, system ports.SystemController, logger logging.Logger) *Init {
	in, _ := New(Config{MountFilesystems: false, RequirePID1: false}, sup, signals, system, logger)
	return in
}

// Run mounts virtual filesystems if configured, starts the service
// manager, and blocks in the event loop until a termination signal or
// shutdown request is handled.
//
// Params:
//   - ctx: the context governing service startup and the run's lifetime.
//
// Returns:
//   - error: non-nil if services failed to start; nil once shutdown completes.
func (in *Init) Run(ctx context.Context) error {
	in.info("starting")

	if in.cfg.MountFilesystems {
		in.mountFilesystems()
	}

	if err := in.sup.Start(ctx); err != nil {
		return fmt.Errorf("starting services: %w", err)
	}

	return in.eventLoop()
}

// mountFilesystems mounts the fixed virtual filesystem set. Failures are
// warnings, not fatal: a container runtime may have already mounted some of
// these, or may not permit mounting at all.
func (in *Init) mountFilesystems() {
	in.info("mounting virtual filesystems")
	for _, target := range mountTargets {
		if err := in.system.Mount(mountFstypes[target], target); err != nil {
			in.warn(fmt.Sprintf("mount %s", target), err)
		}
	}
}

// eventLoop multiplexes termination signals and shutdown requests until one
// of them is handled, then returns once shutdown completes.
func (in *Init) eventLoop() error {
	termCh := in.signals.Notify(syscall.SIGTERM, syscall.SIGINT)
	in.info("ready, entering event loop")

	select {
	case sig := <-termCh:
		in.info(fmt.Sprintf("received %v, initiating shutdown", sig))
		return in.shutdown(control.ShutdownPowerOff)
	case shutdownType := <-in.shutdownCh:
		return in.shutdown(shutdownType)
	}
}

// RequestShutdown enqueues a shutdown request for the event loop. It never
// blocks: if a shutdown is already pending, it reports
// ErrShutdownAlreadyRequested instead of waiting.
//
// Params:
//   - shutdownType: one of the control.Shutdown* constants.
//
// Returns:
//   - error: ErrShutdownAlreadyRequested if a request is already pending.
func (in *Init) RequestShutdown(shutdownType string) error {
	select {
	case in.shutdownCh <- shutdownType:
		return nil
	default:
		return ErrShutdownAlreadyRequested
	}
}

// shutdown stops all services in reverse dependency order, flushes
// filesystem buffers, and invokes the kernel reboot call unless running in
// test mode.
func (in *Init) shutdown(shutdownType string) error {
	in.info(fmt.Sprintf("shutting down: %s", shutdownType))

	if err := in.sup.Stop(); err != nil {
		in.warn("stop_all", err)
	}

	in.system.Sync()

	if !in.cfg.RequirePID1 {
		return nil
	}

	mode, err := rebootMode(shutdownType)
	if err != nil {
		return err
	}
	return in.system.Reboot(mode)
}

// rebootMode maps a wire-facing shutdown type to the kernel reboot mode.
func rebootMode(shutdownType string) (ports.RebootMode, error) {
	switch shutdownType {
	case control.ShutdownPowerOff:
		return ports.RebootPowerOff, nil
	case control.ShutdownReboot:
		return ports.RebootRestart, nil
	case control.ShutdownHalt:
		return ports.RebootHalt, nil
	default:
		return 0, fmt.Errorf("initsystem: unknown shutdown type %q", shutdownType)
	}
}

func (in *Init) info(message string) {
	if in.logger == nil {
		return
	}
	in.logger.Info("init", "lifecycle", message, nil)
}

func (in *Init) warn(operation string, err error) {
	if in.logger == nil {
		return
	}
	in.logger.Warn("init", operation, err.Error(), nil)
}

var _ appcontrol.ShutdownRequester = (*Init)(nil)
