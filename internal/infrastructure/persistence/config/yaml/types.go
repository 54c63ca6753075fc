// Package yaml provides YAML configuration loading infrastructure.
// It handles parsing and conversion of YAML configuration files to domain objects.
package yaml

import (
	"time"

	"github.com/kodflow/start/internal/domain/config"
	"github.com/kodflow/start/internal/domain/shared"
)

// Duration is a wrapper around time.Duration for YAML serialization.
// It enables parsing of human-readable duration strings like "30s" or "5m" from YAML files.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
// It parses a string duration value from YAML into a Duration type.
//
// Params:
//   - unmarshal: callback function to unmarshal the YAML value
//
// Returns:
//   - error: parsing error if the duration string is invalid
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string

	if err := unmarshal(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	*d = Duration(parsed)

	return nil
}

// MarshalText implements encoding.TextMarshaler for Duration.
// It converts a Duration back to a byte slice for serialization.
// This approach is used instead of yaml.Marshaler to avoid returning interface{}.
//
// Returns:
//   - []byte: the duration as a formatted string in bytes
//   - error: always nil for this implementation
func (d *Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(*d).String()), nil
}

// ConfigDTO is the YAML representation of the root configuration.
// It serves as the data transfer object for parsing the main configuration file.
type ConfigDTO struct {
	Version  string             `yaml:"version"`
	Logging  LoggingConfigDTO   `yaml:"logging"`
	Services []ServiceConfigDTO `yaml:"services"`
}

// ServiceConfigDTO is the YAML representation of a service configuration.
// It contains all settings needed to define and manage a supervised service.
type ServiceConfigDTO struct {
	Name             string            `yaml:"name"`
	Description      string            `yaml:"description,omitempty"`
	Type             string            `yaml:"type,omitempty"`
	Command          string            `yaml:"command"`
	Args             []string          `yaml:"args,omitempty"`
	ExecStop         string            `yaml:"exec_stop,omitempty"`
	ExecReload       string            `yaml:"exec_reload,omitempty"`
	User             string            `yaml:"user,omitempty"`
	Group            string            `yaml:"group,omitempty"`
	WorkingDirectory string            `yaml:"working_dir,omitempty"`
	Environment      map[string]string `yaml:"environment,omitempty"`
	Requires         []string          `yaml:"requires,omitempty"`
	Wants            []string          `yaml:"wants,omitempty"`
	After            []string          `yaml:"after,omitempty"`
	Before           []string          `yaml:"before,omitempty"`
	Restart          RestartConfigDTO  `yaml:"restart"`
	TimeoutStart     Duration          `yaml:"timeout_start,omitempty"`
	TimeoutStop      Duration          `yaml:"timeout_stop,omitempty"`
	Logging          ServiceLoggingDTO `yaml:"logging,omitempty"`
	Enabled          *bool             `yaml:"enabled,omitempty"`
}

// RestartConfigDTO is the YAML representation of restart configuration.
// It defines the restart policy and timing parameters for service recovery.
type RestartConfigDTO struct {
	Policy   string   `yaml:"policy"`
	Delay    Duration `yaml:"delay,omitempty"`
	DelayMax Duration `yaml:"delay_max,omitempty"`
}

// LoggingConfigDTO is the YAML representation of logging configuration.
// It contains global logging settings including defaults and base directory.
type LoggingConfigDTO struct {
	Defaults LogDefaultsDTO `yaml:"defaults"`
	BaseDir  string         `yaml:"base_dir"`
}

// LogDefaultsDTO is the YAML representation of logging defaults.
// It defines default timestamp format and rotation settings for all log streams.
type LogDefaultsDTO struct {
	TimestampFormat string            `yaml:"timestamp_format"`
	Rotation        RotationConfigDTO `yaml:"rotation"`
}

// RotationConfigDTO is the YAML representation of rotation configuration.
// It specifies log file rotation parameters like size limits and retention.
type RotationConfigDTO struct {
	MaxSize  string `yaml:"max_size"`
	MaxAge   string `yaml:"max_age"`
	MaxFiles int    `yaml:"max_files"`
}

// ServiceLoggingDTO is the YAML representation of service logging.
// It defines separate configurations for stdout and stderr log streams.
type ServiceLoggingDTO struct {
	Stdout LogStreamConfigDTO `yaml:"stdout,omitempty"`
	Stderr LogStreamConfigDTO `yaml:"stderr,omitempty"`
}

// LogStreamConfigDTO is the YAML representation of a log stream.
// It configures file path, format, and rotation for a single log stream.
type LogStreamConfigDTO struct {
	File            string            `yaml:"file,omitempty"`
	TimestampFormat string            `yaml:"timestamp_format,omitempty"`
	Rotation        RotationConfigDTO `yaml:"rotation,omitempty"`
}

// ToDomain converts ConfigDTO to domain Config.
// It transforms the YAML data transfer object into the domain model.
//
// Params:
//   - configPath: the filesystem path of the loaded configuration file
//
// Returns:
//   - *config.Config: the converted domain configuration object
func (c *ConfigDTO) ToDomain(configPath string) *config.Config {
	services := make([]config.ServiceConfig, 0, len(c.Services))

	for i := range c.Services {
		services = append(services, c.Services[i].ToDomain())
	}

	return &config.Config{
		Version:    c.Version,
		ConfigPath: configPath,
		Logging:    c.Logging.ToDomain(),
		Services:   services,
	}
}

// ToDomain converts ServiceConfigDTO to domain ServiceConfig.
// It maps all service settings from YAML format to the domain model.
//
// Returns:
//   - config.ServiceConfig: the converted domain service configuration
func (s *ServiceConfigDTO) ToDomain() config.ServiceConfig {
	serviceType := config.ServiceType(s.Type)
	if serviceType == "" {
		serviceType = config.TypeSimple
	}

	enabled := true
	if s.Enabled != nil {
		enabled = *s.Enabled
	}

	return config.ServiceConfig{
		Name:             s.Name,
		Description:      s.Description,
		Type:             serviceType,
		Command:          s.Command,
		Args:             s.Args,
		ExecStop:         s.ExecStop,
		ExecReload:       s.ExecReload,
		User:             s.User,
		Group:            s.Group,
		WorkingDirectory: s.WorkingDirectory,
		Environment:      s.Environment,
		Requires:         s.Requires,
		Wants:            s.Wants,
		After:            s.After,
		Before:           s.Before,
		Restart:          s.Restart.ToDomain(),
		TimeoutStart:     shared.FromTimeDuration(time.Duration(s.TimeoutStart)),
		TimeoutStop:      shared.FromTimeDuration(time.Duration(s.TimeoutStop)),
		Logging:          s.Logging.ToDomain(),
		Enabled:          enabled,
	}
}

// ToDomain converts RestartConfigDTO to domain RestartConfig.
// It transforms restart policy settings to the domain model format.
//
// Returns:
//   - config.RestartConfig: the converted domain restart configuration
func (r *RestartConfigDTO) ToDomain() config.RestartConfig {
	return config.RestartConfig{
		Policy:   config.RestartPolicy(r.Policy),
		Delay:    shared.FromTimeDuration(time.Duration(r.Delay)),
		DelayMax: shared.FromTimeDuration(time.Duration(r.DelayMax)),
	}
}

// ToDomain converts LoggingConfigDTO to domain LoggingConfig.
// It transforms global logging settings to the domain model format.
//
// Returns:
//   - config.LoggingConfig: the converted domain logging configuration
func (l *LoggingConfigDTO) ToDomain() config.LoggingConfig {
	return config.LoggingConfig{
		BaseDir:  l.BaseDir,
		Defaults: l.Defaults.ToDomain(),
	}
}

// ToDomain converts LogDefaultsDTO to domain LogDefaults.
// It maps default logging parameters to the domain model format.
//
// Returns:
//   - config.LogDefaults: the converted domain log defaults
func (l *LogDefaultsDTO) ToDomain() config.LogDefaults {
	return config.LogDefaults{
		TimestampFormat: l.TimestampFormat,
		Rotation:        l.Rotation.ToDomain(),
	}
}

// ToDomain converts RotationConfigDTO to domain RotationConfig.
// It transforms log rotation settings to the domain model format.
//
// Returns:
//   - config.RotationConfig: the converted domain rotation configuration
func (r *RotationConfigDTO) ToDomain() config.RotationConfig {
	return config.RotationConfig{
		MaxSize:  r.MaxSize,
		MaxAge:   r.MaxAge,
		MaxFiles: r.MaxFiles,
	}
}

// ToDomain converts ServiceLoggingDTO to domain ServiceLogging.
// It maps service-specific logging settings to the domain model format.
//
// Returns:
//   - config.ServiceLogging: the converted domain service logging configuration
func (s *ServiceLoggingDTO) ToDomain() config.ServiceLogging {
	return config.ServiceLogging{
		Stdout: s.Stdout.ToDomain(),
		Stderr: s.Stderr.ToDomain(),
	}
}

// ToDomain converts LogStreamConfigDTO to domain LogStreamConfig.
// It transforms individual log stream settings to the domain model format.
//
// Returns:
//   - config.LogStreamConfig: the converted domain log stream configuration
func (l *LogStreamConfigDTO) ToDomain() config.LogStreamConfig {
	return config.LogStreamConfig{
		FilePath:       l.File,
		Format:         l.TimestampFormat,
		RotationConfig: l.Rotation.ToDomain(),
	}
}
