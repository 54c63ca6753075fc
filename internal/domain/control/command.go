// Package control defines the wire types for the line-delimited JSON control
// protocol: one Command per request, one Response per reply, each message a
// single JSON value terminated by a newline.
package control

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Command kinds, matching the JSON tags used on the wire.
const (
	KindStartService     = "StartService"
	KindStopService      = "StopService"
	KindRestartService   = "RestartService"
	KindReloadService    = "ReloadService"
	KindEnableService    = "EnableService"
	KindDisableService   = "DisableService"
	KindGetServiceStatus = "GetServiceStatus"
	KindGetAllStatus     = "GetAllStatus"
	KindListServices     = "ListServices"
	KindShutdown         = "Shutdown"
	KindReloadDaemon     = "ReloadDaemon"
	KindPing             = "Ping"
)

// Shutdown types, matching the JSON values used on the wire.
const (
	ShutdownPowerOff = "PowerOff"
	ShutdownReboot   = "Reboot"
	ShutdownHalt     = "Halt"
)

// ErrUnknownCommand is returned when a command's tag matches none of the
// known kinds.
var ErrUnknownCommand = errors.New("control: unknown command")

// ErrMalformedCommand is returned when an object-form command does not
// carry exactly one tag.
var ErrMalformedCommand = errors.New("control: malformed command")

// namedCommandKinds are commands shaped as {"Kind":{"name":"..."}}.
var namedCommandKinds = map[string]bool{
	KindStartService:     true,
	KindStopService:      true,
	KindRestartService:   true,
	KindReloadService:    true,
	KindEnableService:    true,
	KindDisableService:   true,
	KindGetServiceStatus: true,
}

// bareCommandKinds are commands shaped as a bare JSON string.
var bareCommandKinds = map[string]bool{
	KindGetAllStatus: true,
	KindListServices: true,
	KindReloadDaemon: true,
	KindPing:         true,
}

// Command is a single request value of the control protocol. Only the
// fields relevant to Kind are populated.
type Command struct {
	Kind         string
	Name         string
	ShutdownType string
}

// NewNamedCommand builds a command of one of the per-service kinds.
//
// Params:
//   - kind: one of the Kind* constants taking a service name.
//   - name: the service name.
//
// Returns:
//   - Command: the constructed command.
func NewNamedCommand(kind, name string) Command {
	return Command{Kind: kind, Name: name}
}

// NewBareCommand builds a command with no payload.
//
// Params:
//   - kind: one of the Kind* constants with no payload.
//
// Returns:
//   - Command: the constructed command.
func NewBareCommand(kind string) Command {
	return Command{Kind: kind}
}

// NewShutdownCommand builds a Shutdown command.
//
// Params:
//   - shutdownType: one of the Shutdown* constants.
//
// Returns:
//   - Command: the constructed command.
func NewShutdownCommand(shutdownType string) Command {
	return Command{Kind: KindShutdown, ShutdownType: shutdownType}
}

// MarshalJSON implements json.Marshaler, reproducing the externally-tagged
// shape the wire protocol expects.
func (c Command) MarshalJSON() ([]byte, error) {
	switch {
	case bareCommandKinds[c.Kind]:
		return json.Marshal(c.Kind)
	case namedCommandKinds[c.Kind]:
		return json.Marshal(map[string]any{c.Kind: map[string]string{"name": c.Name}})
	case c.Kind == KindShutdown:
		return json.Marshal(map[string]any{c.Kind: map[string]string{"shutdown_type": c.ShutdownType}})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, c.Kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler, accepting either a bare string
// (for no-payload commands) or a single-key object (for commands carrying a
// name or shutdown type).
func (c *Command) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var kind string
		if err := json.Unmarshal(trimmed, &kind); err != nil {
			return err
		}
		if !bareCommandKinds[kind] {
			return fmt.Errorf("%w: %q", ErrUnknownCommand, kind)
		}
		c.Kind = kind
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if len(obj) != 1 {
		return ErrMalformedCommand
	}

	for kind, payload := range obj {
		switch {
		case namedCommandKinds[kind]:
			var named struct {
				Name string `json:"name"`
			}
			if err := json.Unmarshal(payload, &named); err != nil {
				return err
			}
			c.Kind = kind
			c.Name = named.Name
		case kind == KindShutdown:
			var shutdown struct {
				ShutdownType string `json:"shutdown_type"`
			}
			if err := json.Unmarshal(payload, &shutdown); err != nil {
				return err
			}
			c.Kind = kind
			c.ShutdownType = shutdown.ShutdownType
		default:
			return fmt.Errorf("%w: %q", ErrUnknownCommand, kind)
		}
	}
	return nil
}
