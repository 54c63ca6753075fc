//go:build linux

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	pelletiertoml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	domaincontrol "github.com/kodflow/start/internal/domain/control"
	kodtoml "github.com/kodflow/start/internal/infrastructure/persistence/config/toml"
	infracontrol "github.com/kodflow/start/internal/infrastructure/transport/control"
)

// errNoDaemon is reported when an operation that requires a running daemon
// finds neither a reachable control socket nor a way to proceed locally.
var errNoDaemon = errors.New("no running daemon: control socket not found")

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <name>",
		Short: "Start a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatchSimple(args[0], domaincontrol.KindStartService,
				func(name string) error {
					sup, err := buildLocalSupervisor(globalFlags.servicesDir)
					if err != nil {
						return err
					}
					return sup.StartService(name)
				})
		},
	}
}

func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop <name>",
		Short: "Stop a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatchSimple(args[0], domaincontrol.KindStopService,
				func(name string) error {
					sup, err := buildLocalSupervisor(globalFlags.servicesDir)
					if err != nil {
						return err
					}
					return sup.StopService(name)
				})
		},
	}
}

func newRestartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restart <name>",
		Short: "Restart a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatchSimple(args[0], domaincontrol.KindRestartService,
				func(name string) error {
					sup, err := buildLocalSupervisor(globalFlags.servicesDir)
					if err != nil {
						return err
					}
					return sup.RestartService(name)
				})
		},
	}
}

// dispatchSimple sends a named command over the control socket if a daemon
// is reachable, otherwise runs localFallback against a throwaway instance.
func dispatchSimple(name, kind string, localFallback func(string) error) error {
	if shouldUseControlSocket(globalFlags.socketPath) {
		client := infracontrol.NewClient(globalFlags.socketPath)
		resp, err := client.Send(domaincontrol.NewNamedCommand(kind, name))
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil
	}
	return localFallback(name)
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [name]",
		Short: "Show service status",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if shouldUseControlSocket(globalFlags.socketPath) {
				return statusOverSocket(args)
			}
			return statusLocal(args)
		},
	}
}

func statusOverSocket(args []string) error {
	client := infracontrol.NewClient(globalFlags.socketPath)

	if len(args) == 1 {
		resp, err := client.Send(domaincontrol.NewNamedCommand(domaincontrol.KindGetServiceStatus, args[0]))
		if err != nil {
			return err
		}
		printServiceStatusLine(resp.Name, resp.State, resp.PID, resp.UptimeSecs)
		return nil
	}

	resp, err := client.Send(domaincontrol.NewBareCommand(domaincontrol.KindGetAllStatus))
	if err != nil {
		return err
	}
	if len(resp.Services) == 0 {
		fmt.Println("No services found")
		return nil
	}
	for _, svc := range resp.Services {
		fmt.Printf("%s - %s (enabled=%v)\n", svc.Name, svc.State, svc.Enabled)
	}
	return nil
}

func statusLocal(args []string) error {
	sup, err := buildLocalSupervisor(globalFlags.servicesDir)
	if err != nil {
		return err
	}

	infos := sup.Services()
	if len(args) == 1 {
		info, ok := infos[args[0]]
		if !ok {
			return fmt.Errorf("service not found: %s", args[0])
		}
		var pid *int
		var uptime *int64
		if info.PID > 0 {
			pid, uptime = &info.PID, &info.Uptime
		}
		printServiceStatusLine(args[0], info.State.String(), pid, uptime)
		return nil
	}

	if len(infos) == 0 {
		fmt.Println("No services found")
		return nil
	}
	for name, info := range infos {
		fmt.Printf("%s - %s\n", name, info.State.String())
	}
	return nil
}

func printServiceStatusLine(name, state string, pid *int, uptimeSecs *int64) {
	fmt.Printf("%s - %s\n", name, state)
	if pid != nil {
		fmt.Printf("  PID: %d\n", *pid)
	}
	if uptimeSecs != nil {
		fmt.Printf("  Uptime: %ds\n", *uptimeSecs)
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all services",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shouldUseControlSocket(globalFlags.socketPath) {
				client := infracontrol.NewClient(globalFlags.socketPath)
				resp, err := client.Send(domaincontrol.NewBareCommand(domaincontrol.KindListServices))
				if err != nil {
					return err
				}
				if len(resp.Services) == 0 {
					fmt.Println("No services found")
					return nil
				}
				fmt.Println("Services:")
				for _, svc := range resp.Services {
					fmt.Printf("  %s\n", svc.Name)
				}
				return nil
			}

			sup, err := buildLocalSupervisor(globalFlags.servicesDir)
			if err != nil {
				return err
			}
			infos := sup.Services()
			if len(infos) == 0 {
				fmt.Println("No services found")
				return nil
			}
			fmt.Println("Services:")
			for name := range infos {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}
}

func newShutdownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shutdown <poweroff|reboot|halt>",
		Short: "Shut down the system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shutdownType, err := parseShutdownType(args[0])
			if err != nil {
				return err
			}
			if !shouldUseControlSocket(globalFlags.socketPath) {
				return errNoDaemon
			}
			client := infracontrol.NewClient(globalFlags.socketPath)
			resp, err := client.Send(domaincontrol.NewShutdownCommand(shutdownType))
			if err != nil {
				return err
			}
			fmt.Println(resp.Message)
			return nil
		},
	}
}

func parseShutdownType(s string) (string, error) {
	switch s {
	case "poweroff", "power-off":
		return domaincontrol.ShutdownPowerOff, nil
	case "reboot":
		return domaincontrol.ShutdownReboot, nil
	case "halt":
		return domaincontrol.ShutdownHalt, nil
	default:
		return "", fmt.Errorf("unknown shutdown type: %s", s)
	}
}

func newNewCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "new <name> <exec>",
		Short: "Create a new service definition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, exec := args[0], args[1]

			path := output
			if path == "" {
				path = filepath.Join(globalFlags.servicesDir, name+".toml")
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
				return fmt.Errorf("creating services directory: %w", err)
			}

			dto := kodtoml.ServiceUnitDTO{Name: name, ExecStart: exec}
			data, err := pelletiertoml.Marshal(dto)
			if err != nil {
				return fmt.Errorf("encoding unit file: %w", err)
			}
			if err := os.WriteFile(path, data, 0o640); err != nil {
				return fmt.Errorf("writing unit file: %w", err)
			}

			fmt.Printf("Created service definition: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	return cmd
}
