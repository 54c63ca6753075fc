//go:build !linux

package adapters

import "github.com/kodflow/start/internal/infrastructure/kernel/ports"

// Mount is not supported outside Linux.
func (c *UnixSystemController) Mount(_, _ string) error {
	return ports.ErrNotSupported
}

// Sync is a no-op outside Linux.
func (c *UnixSystemController) Sync() {}

// Reboot is not supported outside Linux.
func (c *UnixSystemController) Reboot(_ ports.RebootMode) error {
	return ports.ErrNotSupported
}
