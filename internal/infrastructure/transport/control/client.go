package control

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	domaincontrol "github.com/kodflow/start/internal/domain/control"
)

// dialTimeout bounds how long a client waits to connect to the socket.
const dialTimeout = 2 * time.Second

// Client sends one command per connection to a running daemon's control
// socket and reads back its single-line JSON reply, mirroring Server's
// one-command-per-connection contract from the other side.
type Client struct {
	path string
}

// NewClient creates a control client bound to a Unix socket path.
//
// Params:
//   - path: the control socket path.
//
// Returns:
//   - *Client: a client ready to Send commands.
func NewClient(path string) *Client {
	return &Client{path: path}
}

// Available reports whether a control socket exists at the client's path.
// It does not attempt to connect, so it cannot distinguish a live daemon
// from a stale socket file left behind by an unclean shutdown.
//
// Returns:
//   - bool: true if a file exists at the socket path.
func (c *Client) Available() bool {
	_, err := os.Stat(c.path)
	return err == nil
}

// Send dials the socket, writes cmd as a single JSON line, reads back one
// JSON line, and closes the connection.
//
// Params:
//   - cmd: the command to send.
//
// Returns:
//   - domaincontrol.Response: the daemon's reply.
//   - error: non-nil if the socket could not be reached or the reply could
//     not be decoded.
func (c *Client) Send(cmd domaincontrol.Command) (domaincontrol.Response, error) {
	conn, err := net.DialTimeout("unix", c.path, dialTimeout)
	if err != nil {
		return domaincontrol.Response{}, fmt.Errorf("dialing control socket: %w", err)
	}
	defer conn.Close()

	data, err := json.Marshal(cmd)
	if err != nil {
		return domaincontrol.Response{}, fmt.Errorf("encoding command: %w", err)
	}
	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		return domaincontrol.Response{}, fmt.Errorf("writing command: %w", err)
	}

	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && line == "" {
		return domaincontrol.Response{}, fmt.Errorf("reading response: %w", err)
	}

	var resp domaincontrol.Response
	if err := json.Unmarshal([]byte(line), &resp); err != nil {
		return domaincontrol.Response{}, fmt.Errorf("decoding response: %w", err)
	}
	if resp.Kind == domaincontrol.KindError {
		return resp, errors.New(resp.Message)
	}
	return resp, nil
}
