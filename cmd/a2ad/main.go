// Package main is the entry point for the a2ad agent daemon.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/agentcard"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/config"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/daemon/server"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/daemon/tray"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/models"
)

func main() {
	// .env overrides are optional; missing file is fine.
	_ = godotenv.Load()

	foreground := flag.Bool("foreground", false, "Run in foreground (no system tray)")
	port := flag.Int("port", defaultPort(), "Port to listen on (0 for dynamic allocation)")
	flag.Parse()

	log.SetPrefix("[a2ad] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := config.EnsureGlobalDir(); err != nil {
		log.Fatalf("Failed to create global directory: %v", err)
	}

	// Check if daemon is already running
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		log.Fatalf("Failed to check daemon status: %v", err)
	}
	if running {
		log.Fatalf("Daemon already running on port %d (PID %d)", info.Port, info.PID)
	}

	if *foreground {
		log.Println("Running in foreground mode (no system tray)")
		runForeground(*port)
	} else {
		log.Println("Running in background mode (with system tray)")
		runWithTray(*port)
	}
}

// defaultPort returns the A2A_PORT override or the conventional port 3001.
func defaultPort() int {
	if v := os.Getenv("A2A_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			return p
		}
	}
	return agentcard.DefaultPort
}

// newServer builds the server from settings with a fresh agent ID.
func newServer(port int) (*server.Server, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	spec := agentcard.Spec{
		AgentID:     uuid.NewString(),
		Name:        settings.Agent.Name,
		Description: settings.Agent.Description,
		Version:     settings.Agent.Version,
	}
	return server.New(port, spec)
}

// register writes the daemon info file so clients can discover us.
func register(srv *server.Server) error {
	info := models.NewDaemonInfo("localhost", srv.Port(), os.Getpid(), srv.Card().AgentID)
	return config.SaveDaemonInfo(info)
}

// runForeground runs the daemon without a system tray, blocking on signals.
func runForeground(port int) {
	srv, err := newServer(port)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if err := register(srv); err != nil {
		log.Fatalf("Failed to write daemon info: %v", err)
	}

	log.Printf("Daemon started on port %d (PID %d)", srv.Port(), os.Getpid())
	log.Printf("Agent card: http://localhost:%d%s", srv.Port(), agentcard.WellKnownPath)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal %v, shutting down...", sig)
	case err := <-errCh:
		log.Printf("Server error: %v", err)
	}

	srv.Stop()

	if err := config.RemoveDaemonInfo(); err != nil {
		log.Printf("Failed to remove daemon info: %v", err)
	}

	fmt.Println("Daemon stopped")
}

// runWithTray runs the daemon with a system tray icon on the main goroutine.
// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
func runWithTray(port int) {
	var srv *server.Server

	onStart := func() {
		var err error
		srv, err = newServer(port)
		if err != nil {
			log.Fatalf("Failed to create server: %v", err)
		}

		if err := register(srv); err != nil {
			log.Fatalf("Failed to write daemon info: %v", err)
		}

		log.Printf("Daemon started on port %d (PID %d)", srv.Port(), os.Getpid())

		// Serve HTTP in background
		go func() {
			if err := srv.Serve(); err != nil {
				log.Printf("Server error: %v", err)
				tray.Quit()
			}
		}()

		// Handle OS signals — quit tray on SIGINT/SIGTERM
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			log.Printf("Received signal %v, shutting down...", sig)
			tray.Quit()
		}()
	}

	onExit := func() {
		if srv != nil {
			srv.Stop()
		}

		if err := config.RemoveDaemonInfo(); err != nil {
			log.Printf("Failed to remove daemon info: %v", err)
		}

		fmt.Println("Daemon stopped")
	}

	// The tray needs a DaemonState before the server exists, so a lazy
	// wrapper defers to the real TrayState once onStart has run.
	lazyState := &lazyDaemonState{getSrv: func() *server.Server { return srv }}

	// This blocks the main goroutine until the tray exits.
	tray.Run(lazyState, onStart, onExit)
}

// lazyDaemonState wraps server.TrayState with lazy initialization.
// The server is nil at tray startup and created inside onStart.
type lazyDaemonState struct {
	getSrv func() *server.Server
}

func (l *lazyDaemonState) Port() int {
	if srv := l.getSrv(); srv != nil {
		return server.NewTrayState(srv).Port()
	}
	return 0
}

func (l *lazyDaemonState) AgentName() string {
	if srv := l.getSrv(); srv != nil {
		return server.NewTrayState(srv).AgentName()
	}
	return ""
}

func (l *lazyDaemonState) Initialized() bool {
	if srv := l.getSrv(); srv != nil {
		return server.NewTrayState(srv).Initialized()
	}
	return false
}

func (l *lazyDaemonState) RequestShutdown() {
	if srv := l.getSrv(); srv != nil {
		server.NewTrayState(srv).RequestShutdown()
	}
}
