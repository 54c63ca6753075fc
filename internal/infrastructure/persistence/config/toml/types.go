// Package toml provides the native unit-file loader: one TOML file decodes
// to exactly one service definition.
package toml

import (
	"strconv"
	"time"

	"github.com/kodflow/start/internal/domain/config"
	"github.com/kodflow/start/internal/domain/shared"
)

// Duration accepts either a bare integer (seconds) or a Go duration string
// ("30s", "1m") in a TOML value, matching the unit format's documented
// duration fields.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for Duration.
//
// Params:
//   - text: the raw TOML value as text.
//
// Returns:
//   - error: non-nil if text is neither an integer nor a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	if secs, err := strconv.Atoi(s); err == nil {
		*d = Duration(time.Duration(secs) * time.Second)
		return nil
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// ServiceUnitDTO is the TOML representation of one unit file. Field names
// map 1:1 to the native unit format.
type ServiceUnitDTO struct {
	Name             string            `toml:"name"`
	Description      string            `toml:"description"`
	Type             string            `toml:"service_type"`
	ExecStart        string            `toml:"exec_start"`
	ExecStop         string            `toml:"exec_stop"`
	ExecReload       string            `toml:"exec_reload"`
	User             string            `toml:"user"`
	Group            string            `toml:"group"`
	WorkingDirectory string            `toml:"working_directory"`
	Environment      map[string]string `toml:"environment"`
	Requires         []string          `toml:"requires"`
	Wants            []string          `toml:"wants"`
	After            []string          `toml:"after"`
	Before           []string          `toml:"before"`
	Restart          string            `toml:"restart"`
	RestartSec       Duration          `toml:"restart_sec"`
	TimeoutStartSec  Duration          `toml:"timeout_start_sec"`
	TimeoutStopSec   Duration          `toml:"timeout_stop_sec"`
	Enabled          *bool             `toml:"enabled"`
}

// ToDomain converts a parsed unit DTO to the domain ServiceConfig. ExecStart
// is split on whitespace into command and args here (via splitExecStart),
// matching the Process Supervisor's own spawn contract.
//
// Returns:
//   - config.ServiceConfig: the converted service definition.
func (u *ServiceUnitDTO) ToDomain() config.ServiceConfig {
	serviceType := config.ServiceType(u.Type)
	if serviceType == "" {
		serviceType = config.TypeSimple
	}

	restartPolicy := config.RestartPolicy(u.Restart)
	if restartPolicy == "" {
		restartPolicy = config.RestartOnFailure
	}

	enabled := true
	if u.Enabled != nil {
		enabled = *u.Enabled
	}

	command, args := splitExecStart(u.ExecStart)

	return config.ServiceConfig{
		Name:             u.Name,
		Description:      u.Description,
		Type:             serviceType,
		Command:          command,
		Args:             args,
		ExecStop:         u.ExecStop,
		ExecReload:       u.ExecReload,
		User:             u.User,
		Group:            u.Group,
		WorkingDirectory: u.WorkingDirectory,
		Environment:      u.Environment,
		Requires:         u.Requires,
		Wants:            u.Wants,
		After:            u.After,
		Before:           u.Before,
		Restart: config.RestartConfig{
			Policy: restartPolicy,
			Delay:  shared.Duration(u.RestartSec),
		},
		TimeoutStart: shared.Duration(u.TimeoutStartSec),
		TimeoutStop:  shared.Duration(u.TimeoutStopSec),
		Enabled:      enabled,
	}
}
