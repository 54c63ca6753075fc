package journal

import "errors"

// ErrServiceNotFound is returned when no entries exist for the requested service.
var ErrServiceNotFound = errors.New("journal: no entries for service")

// Journal is the contract for the per-service log journal. Implementations
// keep a bounded in-memory ring per service and best-effort mirror entries
// to an on-disk file; disk failures are never propagated to Log's caller.
type Journal interface {
	// Log appends entry to the service's ring and, best-effort, to its file.
	Log(entry Entry)

	// GetLogs returns up to limit entries for service, most recent last.
	// It reads from disk when available, falling back to the in-memory ring.
	// A limit <= 0 means "no limit".
	GetLogs(service string, limit int) ([]Entry, error)

	// Clear drops both the in-memory ring and the on-disk file for service.
	Clear(service string) error
}

// Sink is the port through which a Journal mirrors entries to durable
// storage. Infrastructure adapters implement this; the application layer
// only depends on the interface.
type Sink interface {
	// Append writes one formatted line (no trailing newline) to the
	// service's file, creating it if absent.
	Append(service string, line string) error

	// Read returns up to limit lines from the service's file, most recent
	// last. A limit <= 0 means "no limit". It returns ErrServiceNotFound if
	// no file exists for the service.
	Read(service string, limit int) ([]string, error)

	// Remove deletes the service's file, if any.
	Remove(service string) error
}
