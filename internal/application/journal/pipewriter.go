package journal

import (
	"bytes"
	"sync/atomic"

	domainjournal "github.com/kodflow/start/internal/domain/journal"
	"github.com/kodflow/start/internal/domain/logging"
)

// PipeWriter is the output-pipe helper: an io.Writer that buffers partial
// lines and, for each complete line, enqueues a journal entry via Log.
// Stdout is wrapped with LevelInfo, stderr with LevelError, matching the
// source's priority mapping for captured process output.
type PipeWriter struct {
	journal  domainjournal.Journal
	service  string
	pid      atomic.Int32
	priority logging.Level
	buf      []byte
}

// NewPipeWriter creates a PipeWriter bound to a service and priority.
//
// Params:
//   - j: the journal to enqueue entries into.
//   - service: the service name the output belongs to.
//   - pid: the PID of the process producing the output.
//   - priority: the priority to stamp on every line (Info for stdout, Error for stderr).
//
// Returns:
//   - *PipeWriter: the created writer.
func NewPipeWriter(j domainjournal.Journal, service string, pid int, priority logging.Level) *PipeWriter {
	w := &PipeWriter{
		journal:  j,
		service:  service,
		priority: priority,
	}
	w.pid.Store(int32(pid))
	return w
}

// SetPID updates the PID stamped on entries written from this point on. The
// writer is constructed before the executor's Start call returns the real
// PID, so callers attach it to the process spec first and back-fill the PID
// once Start succeeds.
//
// Params:
//   - pid: the process ID to stamp on subsequent entries.
func (w *PipeWriter) SetPID(pid int) {
	w.pid.Store(int32(pid))
}

// Write implements io.Writer. It never returns an error: a reader draining
// a process's output pipe treats EOF or a read error as silent termination,
// per contract, so Write itself has nothing to fail on beyond buffering.
//
// Params:
//   - p: bytes to buffer and split into lines.
//
// Returns:
//   - int: len(p), always.
//   - error: always nil.
func (w *PipeWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		idx := bytes.IndexByte(w.buf, '\n')
		if idx < 0 {
			break
		}
		line := string(bytes.TrimRight(w.buf[:idx], "\r"))
		w.buf = w.buf[idx+1:]
		w.journal.Log(domainjournal.NewEntry(w.service, int(w.pid.Load()), w.priority, line))
	}
	return len(p), nil
}

// Flush enqueues any buffered partial line as a final entry. Call it once
// after the underlying pipe reports EOF.
func (w *PipeWriter) Flush() {
	if len(w.buf) == 0 {
		return
	}
	line := string(bytes.TrimRight(w.buf, "\r"))
	w.buf = nil
	w.journal.Log(domainjournal.NewEntry(w.service, int(w.pid.Load()), w.priority, line))
}

// Close flushes any buffered partial line. It implements io.Closer so a
// PipeWriter can be combined with other writers behind a MultiWriter.
//
// Returns:
//   - error: always nil.
func (w *PipeWriter) Close() error {
	w.Flush()
	return nil
}
