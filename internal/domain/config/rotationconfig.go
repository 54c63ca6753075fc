// Package config provides domain value objects for service configuration.
package config

// defaultMaxFilesToRetain defines the default number of rotated log files to keep.
const defaultMaxFilesToRetain int = 10

// RotationConfig defines log rotation settings for the daemon's own ambient
// event log (see internal/domain/logging). The per-service journal never
// rotates; this type has no bearing on journal output.
type RotationConfig struct {
	// MaxSize specifies the maximum size of a log file before rotation (e.g., "100MB").
	MaxSize string
	// MaxAge specifies the maximum age of log files before deletion (e.g., "7d").
	MaxAge string
	// MaxFiles specifies the maximum number of rotated log files to retain.
	MaxFiles int
}

// DefaultRotationConfig returns sensible rotation defaults.
//
// Returns:
//   - RotationConfig: default rotation settings.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		MaxSize:  "100MB",
		MaxFiles: defaultMaxFilesToRetain,
	}
}
