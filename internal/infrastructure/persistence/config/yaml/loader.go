// Package yaml provides YAML configuration loading infrastructure.
package yaml

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kodflow/start/internal/domain/config"
)

// Default configuration values.
const (
	// defaultVersion is the default configuration schema version.
	defaultVersion string = "1"
	// defaultBaseDir is the default base directory for log files.
	defaultBaseDir string = "/var/log/daemon"
	// defaultTimestampFormat is the default timestamp format for logs.
	defaultTimestampFormat string = "iso8601"
	// defaultMaxSize is the default maximum log file size.
	defaultMaxSize string = "100MB"
	// defaultMaxFiles is the default maximum number of rotated log files.
	defaultMaxFiles int = 10
	// defaultRestartDelay is the default delay between restart attempts.
	defaultRestartDelay string = "5s"
	// defaultTimeoutStart is the default time allotted for a service to reach ready.
	defaultTimeoutStart string = "90s"
	// defaultTimeoutStop is the default time allotted for a service to stop gracefully.
	defaultTimeoutStop string = "30s"
)

// ErrNoConfigurationLoaded is returned when Reload is called without a prior Load.
var ErrNoConfigurationLoaded error = errors.New("no configuration loaded")

// Loader loads configuration from YAML files.
// It maintains state about the last loaded configuration path
// to support configuration reloading.
type Loader struct {
	lastPath string
}

// New creates a new YAML configuration loader.
//
// Returns:
//   - *Loader: a new loader instance ready to load configurations
func New() *Loader {
	return &Loader{}
}

// Load reads and parses a configuration file from the given path.
//
// Params:
//   - path: absolute or relative path to the YAML configuration file
//
// Returns:
//   - *config.Config: parsed and validated configuration
//   - error: any error during reading, parsing, or validation
func (l *Loader) Load(path string) (*config.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - config path is trusted input
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := l.Parse(data)
	if err != nil {
		return nil, err
	}

	cfg.ConfigPath = path
	l.lastPath = path

	return cfg, nil
}

// Parse parses configuration from YAML bytes.
//
// Params:
//   - data: raw YAML configuration bytes
//
// Returns:
//   - *config.Config: parsed and validated configuration
//   - error: any error during parsing or validation
func (l *Loader) Parse(data []byte) (*config.Config, error) {
	var dto ConfigDTO

	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	applyDefaults(&dto)

	cfg := dto.ToDomain("")

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Reload reloads configuration from the last loaded path.
//
// Returns:
//   - *config.Config: reloaded and validated configuration
//   - error: error if no configuration was previously loaded or reload fails
func (l *Loader) Reload() (*config.Config, error) {
	if l.lastPath == "" {
		return nil, fmt.Errorf("%w", ErrNoConfigurationLoaded)
	}
	return l.Load(l.lastPath)
}

// applyDefaults sets default values for unset configuration options.
//
// Params:
//   - cfg: configuration DTO to apply defaults to
func applyDefaults(cfg *ConfigDTO) {
	if cfg.Version == "" {
		cfg.Version = defaultVersion
	}

	if cfg.Logging.BaseDir == "" {
		cfg.Logging.BaseDir = defaultBaseDir
	}

	if cfg.Logging.Defaults.TimestampFormat == "" {
		cfg.Logging.Defaults.TimestampFormat = defaultTimestampFormat
	}

	if cfg.Logging.Defaults.Rotation.MaxSize == "" {
		cfg.Logging.Defaults.Rotation.MaxSize = defaultMaxSize
	}

	if cfg.Logging.Defaults.Rotation.MaxFiles == 0 {
		cfg.Logging.Defaults.Rotation.MaxFiles = defaultMaxFiles
	}

	for i := range cfg.Services {
		applyServiceDefaults(&cfg.Services[i], &cfg.Logging)
	}
}

// applyServiceDefaults applies default values to a service configuration.
//
// Params:
//   - svc: service configuration DTO to apply defaults to
//   - logging: global logging configuration for inheriting defaults
func applyServiceDefaults(svc *ServiceConfigDTO, logging *LoggingConfigDTO) {
	if svc.Type == "" {
		svc.Type = string(config.TypeSimple)
	}

	applyRestartDefaults(&svc.Restart)

	if svc.TimeoutStart == 0 {
		parsed, _ := parseDuration(defaultTimeoutStart)
		svc.TimeoutStart = parsed
	}
	if svc.TimeoutStop == 0 {
		parsed, _ := parseDuration(defaultTimeoutStop)
		svc.TimeoutStop = parsed
	}

	if svc.Logging.Stdout.File == "" {
		svc.Logging.Stdout.File = svc.Name + ".out.log"
	}
	if svc.Logging.Stdout.TimestampFormat == "" {
		svc.Logging.Stdout.TimestampFormat = logging.Defaults.TimestampFormat
	}
	if svc.Logging.Stdout.Rotation.MaxSize == "" {
		svc.Logging.Stdout.Rotation = logging.Defaults.Rotation
	}

	if svc.Logging.Stderr.File == "" {
		svc.Logging.Stderr.File = svc.Name + ".err.log"
	}
	if svc.Logging.Stderr.TimestampFormat == "" {
		svc.Logging.Stderr.TimestampFormat = logging.Defaults.TimestampFormat
	}
	if svc.Logging.Stderr.Rotation.MaxSize == "" {
		svc.Logging.Stderr.Rotation = logging.Defaults.Rotation
	}
}

// applyRestartDefaults applies default values to restart configuration.
//
// Params:
//   - restart: restart configuration DTO to apply defaults to
func applyRestartDefaults(restart *RestartConfigDTO) {
	if restart.Policy == "" {
		restart.Policy = string(config.RestartOnFailure)
	}

	if restart.Delay == 0 {
		parsed, _ := parseDuration(defaultRestartDelay)
		restart.Delay = parsed
	}
}

// parseDuration parses a duration string.
//
// Params:
//   - s: duration string in Go duration format (e.g., "5s", "1m30s")
//
// Returns:
//   - Duration: parsed duration value
//   - error: any error during parsing
func parseDuration(s string) (Duration, error) {
	var duration Duration
	err := duration.UnmarshalYAML(func(v any) error {
		if sp, ok := v.(*string); ok {
			*sp = s
		}
		return nil
	})
	return duration, err
}
