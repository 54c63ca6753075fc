// Package yamlunit implements the secondary unit-file loader: one YAML file
// decodes to exactly one service definition, reusing the same ServiceConfigDTO
// and Duration conventions as the whole-config YAML loader.
package yamlunit

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kodflow/start/internal/domain/config"
	kyaml "github.com/kodflow/start/internal/infrastructure/persistence/config/yaml"
)

// extensions is the set of file suffixes this loader claims, without the dot.
var extensions = map[string]bool{"yaml": true, "yml": true}

// ErrEmptyCommand is returned when a unit declares no command to run.
var ErrEmptyCommand = errors.New("yamlunit: command is required")

// Loader is the secondary unit-file loader: YAML in, one ServiceConfig out.
type Loader struct{}

// New creates a secondary YAML unit loader.
//
// Returns:
//   - *Loader: a loader ready to parse ".yaml"/".yml" unit files.
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

	var dto kyaml.ServiceConfigDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("parsing unit file: %w", err)
	}

	if dto.Command == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCommand, path)
	}

	svc := dto.ToDomain()
	return &svc, nil
}

// SupportsExtension reports whether ext is "yaml" or "yml".
//
// Params:
//   - ext: the file extension, without the leading dot.
//
// Returns:
//   - bool: true if ext is a recognized YAML suffix.
func (l *Loader) SupportsExtension(ext string) bool {
	return extensions[ext]
}

// Name identifies this loader for logging.
//
// Returns:
//   - string: "yaml".
func (l *Loader) Name() string {
	return "yaml"
}
