package control

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Response kinds, matching the JSON tags used on the wire.
const (
	KindSuccess       = "Success"
	KindError         = "Error"
	KindServiceStatus = "ServiceStatus"
	KindServiceList   = "ServiceList"
	KindPong          = "Pong"
)

// ServiceSummary is one entry of a ServiceList response.
type ServiceSummary struct {
	Name        string `json:"name"`
	State       string `json:"state"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description,omitempty"`
}

// Response is a single reply value of the control protocol. Only the
// fields relevant to Kind are populated.
type Response struct {
	Kind       string
	Message    string
	Name       string
	State      string
	PID        *int
	UptimeSecs *int64
	Services   []ServiceSummary
}

// Success builds a Success response.
//
// Params:
//   - message: a human-readable description of what succeeded.
//
// Returns:
//   - Response: the constructed response.
func Success(message string) Response {
	return Response{Kind: KindSuccess, Message: message}
}

// Error builds an Error response.
//
// Params:
//   - message: a human-readable description of the failure.
//
// Returns:
//   - Response: the constructed response.
func Error(message string) Response {
	return Response{Kind: KindError, Message: message}
}

// Pong builds the reply to Ping.
//
// Returns:
//   - Response: the constructed response.
func Pong() Response {
	return Response{Kind: KindPong}
}

// NewServiceStatus builds a ServiceStatus response.
//
// Params:
//   - name: the service name.
//   - state: the service's current state as a lowercase string.
//   - pid: the main PID, or nil if not running.
//   - uptimeSecs: the uptime in seconds, or nil if not running.
//
// Returns:
//   - Response: the constructed response.
func NewServiceStatus(name, state string, pid *int, uptimeSecs *int64) Response {
	return Response{Kind: KindServiceStatus, Name: name, State: state, PID: pid, UptimeSecs: uptimeSecs}
}

// NewServiceList builds a ServiceList response.
//
// Params:
//   - services: the summaries of every known service.
//
// Returns:
//   - Response: the constructed response.
func NewServiceList(services []ServiceSummary) Response {
	return Response{Kind: KindServiceList, Services: services}
}

// MarshalJSON implements json.Marshaler.
func (r Response) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case KindSuccess:
		return json.Marshal(map[string]any{r.Kind: map[string]string{"message": r.Message}})
	case KindError:
		return json.Marshal(map[string]any{r.Kind: map[string]string{"message": r.Message}})
	case KindPong:
		return json.Marshal(r.Kind)
	case KindServiceStatus:
		return json.Marshal(map[string]any{r.Kind: map[string]any{
			"name":        r.Name,
			"state":       r.State,
			"pid":         r.PID,
			"uptime_secs": r.UptimeSecs,
		}})
	case KindServiceList:
		services := r.Services
		if services == nil {
			services = []ServiceSummary{}
		}
		return json.Marshal(map[string]any{r.Kind: map[string]any{"services": services}})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, r.Kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Response) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var kind string
		if err := json.Unmarshal(trimmed, &kind); err != nil {
			return err
		}
		r.Kind = kind
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
		r.Kind = kind
		switch kind {
		case KindSuccess, KindError:
			var body struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(payload, &body); err != nil {
				return err
			}
			r.Message = body.Message
		case KindServiceStatus:
			var body struct {
				Name       string `json:"name"`
				State      string `json:"state"`
				PID        *int   `json:"pid"`
				UptimeSecs *int64 `json:"uptime_secs"`
			}
			if err := json.Unmarshal(payload, &body); err != nil {
				return err
			}
			r.Name, r.State, r.PID, r.UptimeSecs = body.Name, body.State, body.PID, body.UptimeSecs
		case KindServiceList:
			var body struct {
				Services []ServiceSummary `json:"services"`
			}
			if err := json.Unmarshal(payload, &body); err != nil {
				return err
			}
			r.Services = body.Services
		default:
			return fmt.Errorf("%w: %q", ErrUnknownCommand, kind)
		}
	}
	return nil
}
