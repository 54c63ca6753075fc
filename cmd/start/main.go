//go:build linux

// Package main is the entry point for the start init system: run without
// arguments to act as PID 1, or invoke a subcommand to drive a running
// daemon (or, absent one, a throwaway local instance) from the CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// globalFlags holds the persistent flags shared by every subcommand.
var globalFlags struct {
	servicesDir string
	socketPath  string
	journalDir  string
	enabledDB   string
	noPID1      bool
	noMount     bool
}

var rootCmd = &cobra.Command{
	Use:           "start",
	Short:         "start init system - PID 1 service manager",
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDaemon()
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.servicesDir, "services-dir", "/etc/start/services", "directory of service unit files")
	rootCmd.PersistentFlags().StringVar(&globalFlags.socketPath, "socket", "/run/start/control.sock", "control socket path")
	rootCmd.PersistentFlags().StringVar(&globalFlags.journalDir, "journal-dir", "/var/log/start", "per-service journal directory")
	rootCmd.PersistentFlags().StringVar(&globalFlags.enabledDB, "enabled-db", "/var/lib/start/enabled.db", "enabled-bit persistence file")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.noPID1, "no-pid1", false, "don't require running as PID 1")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.noMount, "no-mount", false, "don't mount virtual filesystems")

	rootCmd.AddCommand(
		newStartCmd(),
		newStopCmd(),
		newRestartCmd(),
		newStatusCmd(),
		newListCmd(),
		newNewCmd(),
		newShutdownCmd(),
		newWatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
