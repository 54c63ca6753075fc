// Package metrics provides domain value objects for per-process resource
// usage, as displayed by the TUI and reported over the control socket.
package metrics

// ProcessCPU holds a process's CPU usage at a point in time.
type ProcessCPU struct {
	// UsagePercent is the process's CPU usage, 0-100 per core.
	UsagePercent float64
}

// ProcessMemory holds a process's memory usage at a point in time.
type ProcessMemory struct {
	// RSS is the resident set size in bytes.
	RSS uint64
}

// ProcessMetrics is a snapshot of a single service's resource usage.
type ProcessMetrics struct {
	// CPU is the process's current CPU usage.
	CPU ProcessCPU
	// Memory is the process's current memory usage.
	Memory ProcessMemory
}
