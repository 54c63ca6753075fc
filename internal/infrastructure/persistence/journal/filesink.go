// Package journal provides the on-disk adapter for the per-service log
// journal: one append-only, non-rotating file per service under a journal
// directory, matching the source's on-disk journal layout.
package journal

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"

	domainjournal "github.com/kodflow/start/internal/domain/journal"
)

// dirPermissions is the mode used for the journal directory (rwxr-x---).
const dirPermissions os.FileMode = 0o750

// filePermissions is the mode used for per-service journal files (rw-------).
const filePermissions os.FileMode = 0o600

// defaultReadBufSize is the initial scanner buffer size for reading back logs.
const defaultReadBufSize = 64 * 1024

var _ domainjournal.Sink = (*FileSink)(nil)

// FileSink implements domainjournal.Sink by keeping one append-only file per
// service under dir. It performs no rotation: the contract explicitly
// states the core does not rotate journal files, tolerating truncation by
// an external rotator on next open.
type FileSink struct {
	mu   sync.Mutex
	dir  string
	open map[string]*os.File
}

// NewFileSink creates a FileSink rooted at dir, creating it if absent.
//
// Params:
//   - dir: the journal directory.
//
// Returns:
//   - *FileSink: the created sink.
//   - error: non-nil if dir could not be created.
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, err
	}
	return &FileSink{
		dir:  dir,
		open: make(map[string]*os.File),
	}, nil
}

// path returns the on-disk path for service's journal file.
func (s *FileSink) path(service string) string {
	return filepath.Join(s.dir, service+".log")
}

// Append writes one formatted line to service's file, creating it if absent.
//
// Params:
//   - service: the service name.
//   - line: the formatted line, without a trailing newline.
//
// Returns:
//   - error: non-nil if the file could not be opened or written to.
func (s *FileSink) Append(service string, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.open[service]
	if !ok {
		var err error
		f, err = os.OpenFile(s.path(service), os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePermissions)
		if err != nil {
			return err
		}
		s.open[service] = f
	}

	_, err := f.WriteString(line + "\n")
	return err
}

// Read returns up to limit lines from service's file, most recent last.
//
// Params:
//   - service: the service name.
//   - limit: the maximum number of lines to return; <= 0 means no limit.
//
// Returns:
//   - []string: the selected lines, oldest first.
//   - error: domainjournal.ErrServiceNotFound if no file exists for service.
func (s *FileSink) Read(service string, limit int) ([]string, error) {
	f, err := os.Open(s.path(service))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domainjournal.ErrServiceNotFound
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, defaultReadBufSize), defaultReadBufSize)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if limit > 0 && len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	return lines, nil
}

// Remove deletes service's file, closing any open handle first.
//
// Params:
//   - service: the service name.
//
// Returns:
//   - error: non-nil on an unexpected removal failure.
func (s *FileSink) Remove(service string) error {
	s.mu.Lock()
	if f, ok := s.open[service]; ok {
		_ = f.Close()
		delete(s.open, service)
	}
	s.mu.Unlock()

	err := os.Remove(s.path(service))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close closes all open file handles.
//
// Returns:
//   - error: the first error encountered while closing, if any.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for name, f := range s.open {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(s.open, name)
	}
	return firstErr
}
