package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/agentcard"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/config"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe the agent daemon and print its status",
	RunE: func(cmd *cobra.Command, args []string) error {
		port := agentcard.DefaultPort
		if info, err := config.LoadDaemonInfo(); err == nil && info != nil {
			port = info.Port
		}

		signal := status.NewSignal()
		monitor := status.NewMonitor(signal, fmt.Sprintf("http://localhost:%d", port), time.Second)

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		result := monitor.ProbeOnce(ctx)

		printStatus(signal.Value(), port, result.Latency)
		return nil
	},
}

// printStatus renders the one-shot equivalent of the console badge: green
// dot and active label with the port/card line, or red dot and the
// initializing label.
func printStatus(initialized bool, port int, latency time.Duration) {
	if initialized {
		dot := color.New(color.FgGreen).Sprint("●")
		fmt.Printf("%s A2A Agent: Active\n", dot)
		fmt.Printf("  Port: %d | Card: %s\n", port, agentcard.WellKnownPath)
		fmt.Printf("  Probe latency: %s\n", latency.Round(time.Millisecond))
		return
	}

	dot := color.New(color.FgRed).Sprint("●")
	fmt.Printf("%s A2A Agent: Initializing...\n", dot)
}
