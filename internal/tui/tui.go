// Package tui implements the interactive console for the A2A agent daemon.
package tui

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/agentcard"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/config"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/notify"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/status"
)

// Run launches the console. It owns the root-scoped resources: the
// notification hub, the liveness monitor, and the settings watcher all live
// exactly as long as the shell.
func Run() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// The daemon info file records the actual port; fall back to the
	// conventional one when the daemon hasn't registered yet.
	port := agentcard.DefaultPort
	if info, err := config.LoadDaemonInfo(); err == nil && info != nil {
		port = info.Port
	}

	hub := notify.NewHub()
	defer hub.Close()

	signal := status.NewSignal()
	signalCh, cancelSub := signal.Subscribe()
	defer cancelSub()

	monitor := status.NewMonitor(signal, fmt.Sprintf("http://localhost:%d", port), settings.ProbeInterval())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go monitor.Run(ctx)

	watcher, err := config.WatchSettings()
	if err != nil {
		// The console works without live settings reload.
		log.Printf("Settings watch unavailable: %v", err)
		watcher = nil
	} else {
		defer watcher.Stop()
	}

	model := NewModel(settings, port, monitor, signalCh, hub, watcher)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
