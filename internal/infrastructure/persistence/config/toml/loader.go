package toml

import (
	"errors"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/kodflow/start/internal/domain/config"
	"github.com/kodflow/start/internal/domain/shared"
)

// extension is the file suffix this loader claims, without the dot.
const extension = "toml"

// defaultTimeoutStartSeconds and defaultTimeoutStopSeconds mirror the
// defaults applied by the YAML loader for parity across unit formats.
const (
	defaultTimeoutStartSeconds = 90
	defaultTimeoutStopSeconds  = 30
)

// ErrEmptyExecStart is returned when a unit declares no command to run.
var ErrEmptyExecStart = errors.New("toml: exec_start is required")

// Loader is the native unit-file loader: TOML in, one ServiceConfig out.
type Loader struct{}

// New creates a native TOML unit loader.
//
// Returns:
//   - *Loader: a loader ready to parse ".toml" unit files.
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
//   - error: non-nil on read, decode, or validation failure.
func (l *Loader) Load(path string) (*config.ServiceConfig, error) {
	data, err := os.ReadFile(path) // #nosec G304 - unit path is trusted input from the services directory
	if err != nil {
		return nil, fmt.Errorf("reading unit file: %w", err)
	}

	var dto ServiceUnitDTO
	if err := toml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("parsing unit file: %w", err)
	}

	if dto.ExecStart == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyExecStart, path)
	}

	svc := dto.ToDomain()
	applyDefaults(&svc)

	return &svc, nil
}

// SupportsExtension reports whether ext is "toml".
//
// Params:
//   - ext: the file extension, without the leading dot.
//
// Returns:
//   - bool: true if ext equals "toml".
func (l *Loader) SupportsExtension(ext string) bool {
	return ext == extension
}

// Name identifies this loader for logging.
//
// Returns:
//   - string: "toml".
func (l *Loader) Name() string {
	return extension
}

// applyDefaults fills in zero-valued optional fields the same way every
// unit loader must, so the Service Manager sees a uniform definition
// regardless of source format.
//
// Params:
//   - svc: the service definition to default in place.
func applyDefaults(svc *config.ServiceConfig) {
	if svc.TimeoutStart == 0 {
		svc.TimeoutStart = shared.Seconds(defaultTimeoutStartSeconds)
	}
	if svc.TimeoutStop == 0 {
		svc.TimeoutStop = shared.Seconds(defaultTimeoutStopSeconds)
	}
}

// splitExecStart splits a unit's exec_start line into a program and its
// arguments on whitespace, matching the Process Supervisor's spawn contract.
//
// Params:
//   - execStart: the raw command line.
//
// Returns:
//   - string: the program to execute.
//   - []string: the arguments, if any.
func splitExecStart(execStart string) (string, []string) {
	fields := strings.Fields(execStart)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
