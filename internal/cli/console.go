package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/tui"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the interactive console",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("console requires an interactive terminal")
		}
		return tui.Run()
	},
}
