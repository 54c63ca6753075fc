//go:build linux

package adapters

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/kodflow/start/internal/infrastructure/kernel/ports"
)

// Mount mounts fstype at target, creating target if it does not exist.
//
// Params:
//   - fstype: the filesystem type, e.g. "proc", "sysfs", "devtmpfs".
//   - target: the mount point.
//
// Returns:
//   - error: non-nil if the target could not be created or the mount failed.
func (c *UnixSystemController) Mount(fstype, target string) error {
	if err := os.MkdirAll(target, 0o755); err != nil && !os.IsExist(err) {
		return fmt.Errorf("creating mount target %s: %w", target, err)
	}
	if err := unix.Mount(fstype, target, fstype, 0, ""); err != nil {
		return fmt.Errorf("mounting %s at %s: %w", fstype, target, err)
	}
	return nil
}

// Sync flushes filesystem buffers to disk.
func (c *UnixSystemController) Sync() {
	unix.Sync()
}

// Reboot performs the requested reboot mode via the kernel reboot syscall.
// On success this call does not return.
//
// Params:
//   - mode: the reboot mode to perform.
//
// Returns:
//   - error: non-nil if mode is unrecognized or the syscall fails.
func (c *UnixSystemController) Reboot(mode ports.RebootMode) error {
	var cmd int
	switch mode {
	case ports.RebootPowerOff:
		cmd = unix.LINUX_REBOOT_CMD_POWER_OFF
	case ports.RebootRestart:
		cmd = unix.LINUX_REBOOT_CMD_RESTART
	case ports.RebootHalt:
		cmd = unix.LINUX_REBOOT_CMD_HALT
	default:
		return fmt.Errorf("unknown reboot mode: %d", mode)
	}
	return unix.Reboot(cmd)
}
