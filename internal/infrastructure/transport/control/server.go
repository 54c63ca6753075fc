// Package control implements the control-socket transport: a line-delimited
// JSON protocol served over a Unix domain socket, one connection at a time.
package control

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"

	appcontrol "github.com/kodflow/start/internal/application/control"
	domaincontrol "github.com/kodflow/start/internal/domain/control"
	"github.com/kodflow/start/internal/domain/logging"
)

// socketFileMode restricts the control socket to owner and group access.
const socketFileMode os.FileMode = 0o660

// socketDirMode is used when the parent directory must be created.
const socketDirMode os.FileMode = 0o750

// Server accepts connections on a Unix domain socket, decodes one
// line-delimited JSON command per connection, dispatches it, and writes
// back one line-delimited JSON response before closing.
type Server struct {
	path       string
	dispatcher *appcontrol.Dispatcher
	logger     logging.Logger

	mu       sync.Mutex
	listener net.Listener
}

// NewServer creates a control server bound to path once Serve is called.
//
// Params:
//   - path: the Unix socket path.
//   - dispatcher: the command dispatcher to invoke per request.
//   - logger: the ambient logger for connection-level diagnostics.
//
// Returns:
//   - *Server: a server ready to Serve.
func NewServer(path string, dispatcher *appcontrol.Dispatcher, logger logging.Logger) *Server {
	return &Server{path: path, dispatcher: dispatcher, logger: logger}
}

// Serve creates the parent directory if missing, replaces a stale socket
// file, binds, restricts its file mode, and accepts connections serially
// until Close is called.
//
// Returns:
//   - error: non-nil if the socket could not be created.
func (s *Server) Serve() error {
	if err := os.MkdirAll(filepath.Dir(s.path), socketDirMode); err != nil {
		return fmt.Errorf("creating control socket directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		if err := os.Remove(s.path); err != nil {
			return fmt.Errorf("removing stale control socket: %w", err)
		}
	}

	listener, err := net.Listen("unix", s.path)
	if err != nil {
		return fmt.Errorf("binding control socket: %w", err)
	}

	if err := os.Chmod(s.path, socketFileMode); err != nil {
		_ = listener.Close()
		return fmt.Errorf("setting control socket permissions: %w", err)
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accepting control connection: %w", err)
		}
		s.handleConn(conn)
	}
}

// handleConn reads exactly one command, dispatches it, writes exactly one
// response, and closes the connection. Errors at any stage are converted
// to an Error response rather than propagated, per the control protocol's
// contract.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		s.warn("read_command", err)
		return
	}

	var cmd domaincontrol.Command
	if err := json.Unmarshal([]byte(line), &cmd); err != nil {
		s.writeResponse(conn, domaincontrol.Error(fmt.Sprintf("malformed command: %v", err)))
		return
	}

	resp := s.dispatcher.Handle(cmd)
	s.writeResponse(conn, resp)
}

func (s *Server) writeResponse(conn net.Conn, resp domaincontrol.Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.warn("marshal_response", err)
		return
	}
	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		s.warn("write_response", err)
	}
}

func (s *Server) warn(operation string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Warn("control", operation, err.Error(), nil)
}

// Close stops accepting new connections and removes the socket file.
//
// Returns:
//   - error: non-nil if the listener failed to close.
func (s *Server) Close() error {
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()

	if listener == nil {
		return nil
	}

	err := listener.Close()
	if removeErr := os.Remove(s.path); removeErr != nil && !os.IsNotExist(removeErr) {
		if err == nil {
			err = removeErr
		}
	}
	return err
}
