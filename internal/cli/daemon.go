package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/config"
)

// EnsureDaemon makes sure the daemon is running, starting it if necessary.
func EnsureDaemon() error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}

	if running {
		return nil
	}

	// Clean up stale daemon info if it exists
	if info != nil {
		_ = config.RemoveDaemonInfo()
	}

	return startDaemon()
}

// startDaemon starts the daemon process in the background.
func startDaemon() error {
	daemonPath, err := findDaemonBinary()
	if err != nil {
		return err
	}

	cmd := exec.Command(daemonPath, "-foreground")
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start daemon: %w", err)
	}

	// Wait for daemon to be ready (max 5 seconds)
	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		running, _, err := config.IsDaemonRunning()
		if err == nil && running {
			return nil
		}
	}

	return fmt.Errorf("daemon failed to start within timeout")
}

// findDaemonBinary locates the a2ad binary.
func findDaemonBinary() (string, error) {
	// Try PATH first
	path, err := exec.LookPath("a2ad")
	if err == nil {
		return path, nil
	}

	// Try same directory as the current executable
	execPath, err := os.Executable()
	if err == nil {
		daemonPath := filepath.Join(filepath.Dir(execPath), "a2ad")
		if _, err := os.Stat(daemonPath); err == nil {
			return daemonPath, nil
		}
	}

	// Try build directory
	if _, err := os.Stat("./build/a2ad"); err == nil {
		return "./build/a2ad", nil
	}

	return "", fmt.Errorf("a2ad not found. Install or build it first")
}
