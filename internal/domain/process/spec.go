// Package process provides domain entities and value objects for process lifecycle management.
package process

import "io"

// Spec contains process execution parameters.
// This is a value object passed to the Executor.
type Spec struct {
	// Command is the executable path or command to run.
	Command string
	// Args contains command-line arguments.
	Args []string
	// Dir is the working directory.
	Dir string
	// Env contains environment variables as key=value pairs.
	Env map[string]string
	// User specifies the username to run as.
	User string
	// Group specifies the group to run as.
	Group string
	// Stdout receives the child's standard output when set. A nil Stdout
	// means the executor inherits the supervisor's own stdout.
	Stdout io.Writer
	// Stderr receives the child's standard error when set. A nil Stderr
	// means the executor inherits the supervisor's own stderr.
	Stderr io.Writer
}

// NewSpec creates a new process specification from configuration parameters.
// It initializes a Spec with the provided execution parameters.
//
// Params:
//   - params: the configuration parameters for the process
//
// Returns:
//   - Spec: a configured process specification ready for execution
func NewSpec(params SpecParams) Spec {
	return Spec{
		Command: params.Command,
		Args:    params.Args,
		Dir:     params.Dir,
		Env:     params.Env,
		User:    params.User,
		Group:   params.Group,
	}
}

// WithOutput returns a copy of the spec with stdout/stderr writers attached.
// Used by the Service Manager to route a service's output into its Journal
// stream before starting the process.
//
// Params:
//   - stdout: writer to receive the child's standard output.
//   - stderr: writer to receive the child's standard error.
//
// Returns:
//   - Spec: a new Spec value with Stdout/Stderr set; the receiver is unchanged.
func (s Spec) WithOutput(stdout, stderr io.Writer) Spec {
	s.Stdout = stdout
	s.Stderr = stderr
	return s
}
