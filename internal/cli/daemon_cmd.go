package cli

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/config"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Manage the agent daemon",
}

var daemonStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the agent daemon if it isn't running",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := EnsureDaemon(); err != nil {
			return err
		}

		_, info, err := config.IsDaemonRunning()
		if err != nil {
			return err
		}
		fmt.Printf("Daemon running on port %d (PID %d)\n", info.Port, info.PID)
		return nil
	},
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the agent daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		running, info, err := config.IsDaemonRunning()
		if err != nil {
			return err
		}
		if !running {
			fmt.Println("Daemon is not running")
			return nil
		}

		process, err := os.FindProcess(info.PID)
		if err != nil {
			return fmt.Errorf("failed to find daemon process: %w", err)
		}
		if err := process.Signal(syscall.SIGTERM); err != nil {
			return fmt.Errorf("failed to signal daemon: %w", err)
		}

		// Wait for it to exit and clean up its info file
		for i := 0; i < 50; i++ {
			time.Sleep(100 * time.Millisecond)
			running, _, _ := config.IsDaemonRunning()
			if !running {
				fmt.Println("Daemon stopped")
				return nil
			}
		}
		return fmt.Errorf("daemon did not stop within timeout")
	},
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon process status",
	RunE: func(cmd *cobra.Command, args []string) error {
		running, info, err := config.IsDaemonRunning()
		if err != nil {
			return err
		}
		if !running {
			fmt.Println("Daemon is not running")
			return nil
		}

		fmt.Printf("Daemon running on %s:%d (PID %d)\n", info.Host, info.Port, info.PID)
		fmt.Printf("  Agent ID: %s\n", info.AgentID)
		fmt.Printf("  Started: %s\n", info.StartedAt.Local().Format(time.RFC1123))
		return nil
	},
}

func init() {
	daemonCmd.AddCommand(daemonStartCmd)
	daemonCmd.AddCommand(daemonStopCmd)
	daemonCmd.AddCommand(daemonStatusCmd)
}
