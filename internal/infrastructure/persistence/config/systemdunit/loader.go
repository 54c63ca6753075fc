// Package systemdunit implements the conservative foreign-format unit loader:
// a minimal, directly-translatable subset of the systemd unit-file grammar
// decodes to one ServiceConfig, and anything it cannot faithfully translate
// is rejected rather than silently dropped or guessed at.
package systemdunit

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/kodflow/start/internal/domain/config"
)

// extension is the file suffix this loader claims, without the dot.
const extension = "service"

// ErrExecStartRequired is returned when a [Service] section has no ExecStart.
var ErrExecStartRequired = errors.New("systemdunit: ExecStart is required")

// ErrUnsupportedField is returned when a unit uses a directive this
// conservative loader cannot translate to the domain ServiceConfig.
var ErrUnsupportedField = errors.New("systemdunit: unsupported field")

// unsupportedServiceKeys lists [Service] directives this loader refuses to
// translate, rather than silently ignoring them and producing a service that
// does not behave the way the unit file describes.
var unsupportedServiceKeys = []string{
	"ExecStartPre", "ExecStartPost", "ExecStopPost",
	"Sockets", "BusName", "NotifyAccess", "WatchdogSec",
}

// restartPolicyByUnitValue maps the systemd Restart= values this loader
// understands to the domain restart policy.
var restartPolicyByUnitValue = map[string]config.RestartPolicy{
	"no":         config.RestartNo,
	"":           config.RestartNo,
	"always":     config.RestartAlways,
	"on-failure": config.RestartOnFailure,
}

// Loader is the conservative foreign-format unit loader.
type Loader struct{}

// New creates a conservative systemd-unit-file loader.
//
// Returns:
//   - *Loader: a loader ready to parse ".service" unit files.
func New() *Loader {
	return &Loader{}
}

// Load reads and parses a single unit file.
//
// Params:
//   - path: the unit file path.
//
// Returns:
//   - *config.ServiceConfig: the parsed service definition.
//   - error: ErrUnsupportedField if the unit uses a directive this loader
//     cannot translate; ErrExecStartRequired if [Service] has no ExecStart;
//     otherwise any read or parse error.
func (l *Loader) Load(path string) (*config.ServiceConfig, error) {
	f, err := ini.LoadSources(ini.LoadOptions{AllowShadows: true}, path)
	if err != nil {
		return nil, fmt.Errorf("reading unit file: %w", err)
	}

	section := f.Section("Service")

	if unsupported := findUnsupportedKey(section); unsupported != "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedField, unsupported)
	}

	unitType := strings.TrimSpace(section.Key("Type").String())
	if unitType != "" && unitType != "simple" {
		return nil, fmt.Errorf("%w: Type=%s", ErrUnsupportedField, unitType)
	}

	execStart := strings.TrimSpace(section.Key("ExecStart").String())
	if execStart == "" {
		return nil, fmt.Errorf("%w: %s", ErrExecStartRequired, path)
	}

	command, args := splitExecStart(execStart)

	policy, ok := restartPolicyByUnitValue[strings.TrimSpace(section.Key("Restart").String())]
	if !ok {
		return nil, fmt.Errorf("%w: Restart=%s", ErrUnsupportedField, section.Key("Restart").String())
	}

	name := strings.TrimSuffix(filepath.Base(path), "."+extension)

	return &config.ServiceConfig{
		Name:             name,
		Description:      f.Section("Unit").Key("Description").String(),
		Type:             config.TypeSimple,
		Command:          command,
		Args:             args,
		User:             section.Key("User").String(),
		Group:            section.Key("Group").String(),
		WorkingDirectory: section.Key("WorkingDirectory").String(),
		Environment:      parseEnvironment(section),
		Requires:         splitUnitList(f.Section("Unit").Key("Requires").String()),
		After:            splitUnitList(f.Section("Unit").Key("After").String()),
		Restart:          config.RestartConfig{Policy: policy},
		Enabled:          true,
	}, nil
}

// SupportsExtension reports whether ext is "service".
//
// Params:
//   - ext: the file extension, without the leading dot.
//
// Returns:
//   - bool: true if ext equals "service".
func (l *Loader) SupportsExtension(ext string) bool {
	return ext == extension
}

// Name identifies this loader for logging.
//
// Returns:
//   - string: "systemd".
func (l *Loader) Name() string {
	return "systemd"
}

// findUnsupportedKey reports the first [Service] key this loader cannot
// translate, or "" if none are present.
func findUnsupportedKey(section *ini.Section) string {
	for _, key := range unsupportedServiceKeys {
		if section.HasKey(key) {
			return key
		}
	}
	return ""
}

// parseEnvironment splits repeated Environment= assignments into a map.
func parseEnvironment(section *ini.Section) map[string]string {
	values := section.Key("Environment").ValueWithShadows()
	if len(values) == 0 {
		return nil
	}

	env := make(map[string]string, len(values))
	for _, v := range values {
		name, value, found := strings.Cut(v, "=")
		if !found {
			continue
		}
		env[name] = value
	}
	return env
}

// splitUnitList splits a space-separated unit reference list and strips the
// ".service" suffix each entry carries in native systemd syntax.
func splitUnitList(raw string) []string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSuffix(f, "."+extension)
	}
	return out
}

// splitExecStart splits a unit's ExecStart line into a program and its
// arguments on whitespace, matching the Process Supervisor's spawn contract.
func splitExecStart(execStart string) (string, []string) {
	fields := strings.Fields(execStart)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
