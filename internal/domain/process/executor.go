// Package process provides domain entities and value objects for process lifecycle management.
package process

import (
	"context"
	"os"
	"time"
)

// Executor abstracts OS process execution.
// This is the primary port for process infrastructure.
//
// Implementations own a PID->tracked-process table: Start registers the PID
// before returning, and the table is the source of truth Signal/TryWait/
// IsRunning consult, rather than asking the kernel whether a PID merely
// exists (which says nothing about whether this supervisor spawned it).
type Executor interface {
	// Start starts a process with the given specification.
	// Returns the PID, a channel that receives the exit result, and any error.
	Start(ctx context.Context, spec Spec) (pid int, wait <-chan ExitResult, err error)

	// Stop gracefully stops the process with the given PID.
	Stop(pid int, timeout time.Duration) error

	// Signal sends a signal to the process. Returns ErrProcessNotFound if
	// pid is not tracked by this executor.
	Signal(pid int, sig os.Signal) error

	// TryWait performs a non-blocking exit check on a tracked PID. If the
	// process has exited, it returns the exit result and deregisters the
	// PID. Returns ok=false if the process is still alive or untracked.
	TryWait(pid int) (result ExitResult, ok bool)

	// IsRunning reports whether pid is both tracked by this executor and
	// still alive at the OS level.
	IsRunning(pid int) bool
}
