// Package journal provides domain entities and contracts for the per-service
// log journal: a bounded in-memory ring plus an append-only on-disk mirror.
package journal

import (
	"strconv"
	"time"

	"github.com/kodflow/start/internal/domain/logging"
)

// Entry is a single journal line: one event emitted by or about a service.
type Entry struct {
	// Timestamp is when the entry was produced.
	Timestamp time.Time
	// Service is the service name this entry belongs to.
	Service string
	// PID is the process ID that produced the entry, or 0 if not applicable.
	PID int
	// Priority is the entry's severity.
	Priority logging.Level
	// Message is the entry's text, without a trailing newline.
	Message string
}

// NewEntry creates an Entry stamped with the current time.
//
// Params:
//   - service: the service name the entry belongs to.
//   - pid: the process ID that produced the entry, or 0.
//   - priority: the entry's severity.
//   - message: the entry's text.
//
// Returns:
//   - Entry: the constructed entry.
func NewEntry(service string, pid int, priority logging.Level, message string) Entry {
	return Entry{
		Timestamp: time.Now(),
		Service:   service,
		PID:       pid,
		Priority:  priority,
		Message:   message,
	}
}

// Format renders the entry in the on-disk line format:
// "<ts> <service> [<pid>]<PRIORITY>: <message>".
//
// Returns:
//   - string: the formatted line, without a trailing newline.
func (e Entry) Format() string {
	return e.Timestamp.Format(time.RFC3339) + " " + e.Service +
		" [" + strconv.Itoa(e.PID) + "]" + e.Priority.String() + ": " + e.Message
}
