// Package main is the entry point for the a2a CLI/console.
package main

import (
	"os"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
