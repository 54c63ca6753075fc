package journal

import (
	"sync"

	domainjournal "github.com/kodflow/start/internal/domain/journal"
	"github.com/kodflow/start/internal/domain/logging"
)

// defaultRingCapacity is the default number of entries retained per service
// in memory, matching the source's bounded VecDeque default.
const defaultRingCapacity = 1000

var _ domainjournal.Journal = (*Service)(nil)

// Service is the application-level Journal. It keeps one bounded ring per
// service and mirrors each entry to a Sink on a best-effort basis.
type Service struct {
	mu       sync.Mutex
	rings    map[string]*ring
	capacity int
	sink     domainjournal.Sink
	logger   logging.Logger
}

// NewService creates a Service with the default ring capacity.
//
// Params:
//   - sink: the durable storage adapter; may be nil to disable disk mirroring.
//   - logger: used to report best-effort sink failures; may be nil.
//
// Returns:
//   - *Service: the created journal service.
func NewService(sink domainjournal.Sink, logger logging.Logger) *Service {
	return NewServiceWithCapacity(sink, logger, defaultRingCapacity)
}

// NewServiceWithCapacity creates a Service with an explicit per-service ring
// capacity, for tests and non-default configurations.
//
// Params:
//   - sink: the durable storage adapter; may be nil to disable disk mirroring.
//   - logger: used to report best-effort sink failures; may be nil.
//   - capacity: the maximum number of in-memory entries retained per service.
//
// Returns:
//   - *Service: the created journal service.
func NewServiceWithCapacity(sink domainjournal.Sink, logger logging.Logger, capacity int) *Service {
	return &Service{
		rings:    make(map[string]*ring),
		capacity: capacity,
		sink:     sink,
		logger:   logger,
	}
}

// Log appends entry to the service's ring and, best-effort, to its file.
//
// Params:
//   - entry: the entry to record.
func (s *Service) Log(entry domainjournal.Entry) {
	s.mu.Lock()
	r, ok := s.rings[entry.Service]
	if !ok {
		r = newRing(s.capacity)
		s.rings[entry.Service] = r
	}
	r.push(entry)
	s.mu.Unlock()

	if s.sink == nil {
		return
	}
	// Disk mirroring failures are warned but never propagated, per contract.
	if err := s.sink.Append(entry.Service, entry.Format()); err != nil && s.logger != nil {
		s.logger.Warn(entry.Service, "journal_write_failed", err.Error(), nil)
	}
}

// GetLogs returns up to limit entries for service, most recent last. It
// prefers the on-disk copy when a sink is configured and has a file for the
// service, falling back to the in-memory ring.
//
// Params:
//   - service: the service name.
//   - limit: the maximum number of entries to return; <= 0 means no limit.
//
// Returns:
//   - []domainjournal.Entry: the selected entries, oldest first.
//   - error: non-nil only on an unexpected failure of a configured sink.
func (s *Service) GetLogs(service string, limit int) ([]domainjournal.Entry, error) {
	if s.sink != nil {
		lines, err := s.sink.Read(service, limit)
		switch {
		case err == nil:
			return linesToEntries(service, lines), nil
		case err != domainjournal.ErrServiceNotFound:
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rings[service]
	if !ok {
		return nil, nil
	}
	return r.tail(limit), nil
}

// Clear drops both the in-memory ring and the on-disk file for service.
//
// Params:
//   - service: the service name.
//
// Returns:
//   - error: non-nil if the sink failed to remove the on-disk file.
func (s *Service) Clear(service string) error {
	s.mu.Lock()
	delete(s.rings, service)
	s.mu.Unlock()

	if s.sink == nil {
		return nil
	}
	return s.sink.Remove(service)
}

// linesToEntries wraps raw on-disk lines as entries carrying only the text;
// the formatted line already embeds timestamp/pid/priority, but the Entry
// message field is kept as the verbatim line so callers can display it
// without re-parsing the on-disk format.
func linesToEntries(service string, lines []string) []domainjournal.Entry {
	out := make([]domainjournal.Entry, len(lines))
	for i, line := range lines {
		out[i] = domainjournal.Entry{
			Service:  service,
			Priority: logging.LevelInfo,
			Message:  line,
		}
	}
	return out
}
