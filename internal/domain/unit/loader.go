// Package unit defines the contract shared by every unit-file loader and the
// registry that dispatches a unit path to the loader for its extension.
package unit

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kodflow/start/internal/domain/config"
)

// ErrUnsupportedExtension is returned when no registered loader claims a
// unit file's extension.
var ErrUnsupportedExtension = errors.New("unit: unsupported extension")

// Loader parses one on-disk unit file into a single ServiceConfig.
type Loader interface {
	// Load reads and parses the unit file at path.
	Load(path string) (*config.ServiceConfig, error)
	// SupportsExtension reports whether this loader handles the given
	// extension (without the leading dot, e.g. "toml").
	SupportsExtension(ext string) bool
	// Name identifies the loader for logging.
	Name() string
}

// Registry dispatches a unit file path to the loader registered for its
// extension.
type Registry struct {
	loaders []Loader
}

// NewRegistry creates an empty loader registry.
//
// Returns:
//   - *Registry: a registry with no loaders registered.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a loader to the registry.
//
// Params:
//   - l: the loader to register.
func (r *Registry) Register(l Loader) {
	r.loaders = append(r.loaders, l)
}

// FindLoader returns the loader registered for ext, if any.
//
// Params:
//   - ext: the file extension, without the leading dot.
//
// Returns:
//   - Loader: the matching loader, or nil if none is registered.
func (r *Registry) FindLoader(ext string) Loader {
	for _, l := range r.loaders {
		if l.SupportsExtension(ext) {
			return l
		}
	}
	return nil
}

// Load selects a loader by the extension of path and parses it.
//
// Params:
//   - path: the unit file path.
//
// Returns:
//   - *config.ServiceConfig: the parsed service definition.
//   - error: ErrUnsupportedExtension if no loader matches, else the
//     loader's own parse error.
func (r *Registry) Load(path string) (*config.ServiceConfig, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	l := r.FindLoader(ext)
	if l == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
	return l.Load(path)
}
