// Package unitdir implements the application config Loader port by scanning
// a services directory and loading each unit file through a unit.Registry,
// the "services directory" model spec.md's load_services describes (as
// opposed to the teacher's original single whole-config-file model).
package unitdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	appconfig "github.com/kodflow/start/internal/application/config"
	"github.com/kodflow/start/internal/domain/config"
	"github.com/kodflow/start/internal/domain/logging"
	"github.com/kodflow/start/internal/domain/unit"
)

// Loader loads a Config by reading every recognized unit file in a
// directory. Unrecognized extensions are ignored; a unit file that fails to
// parse is logged and skipped rather than aborting the whole load, per
// spec.md's "malformed units are logged and skipped."
type Loader struct {
	registry *unit.Registry
	logger   logging.Logger
}

// NewLoader creates a directory-scanning Loader backed by registry.
//
// Params:
//   - registry: the unit loader registry to dispatch by extension.
//   - logger: optional logger for skipped/malformed units.
//
// Returns:
//   - *Loader: a loader ready to Load a services directory.
func NewLoader(registry *unit.Registry, logger logging.Logger) *Loader {
	return &Loader{registry: registry, logger: logger}
}

// Load reads every unit file directly under dir and assembles them into a
// Config. Subdirectories are not recursed into.
//
// Params:
//   - dir: the services directory.
//
// Returns:
//   - *config.Config: the assembled configuration, with ConfigPath set to dir.
//   - error: non-nil if dir could not be read.
func (l *Loader) Load(dir string) (*config.Config, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading services directory %s: %w", dir, err)
	}

	cfg := config.DefaultConfig()
	cfg.ConfigPath = dir

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.TrimPrefix(filepath.Ext(entry.Name()), ".")
		if l.registry.FindLoader(ext) == nil {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		svc, loadErr := l.registry.Load(path)
		if loadErr != nil {
			l.warn(entry.Name(), loadErr)
			continue
		}

		cfg.Services = append(cfg.Services, *svc)
	}

	return cfg, nil
}

func (l *Loader) warn(unitName string, err error) {
	if l.logger == nil {
		return
	}
	l.logger.Warn("", "unit_load_skipped", fmt.Sprintf("%s: %v", unitName, err), nil)
}

var _ appconfig.Loader = (*Loader)(nil)
