// Package server implements the agent daemon's HTTP surface.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/agentcard"
)

// Server serves the A2A discovery document and daemon status over HTTP.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	port       int
	card       *agentcard.Card
	startedAt  time.Time
}

// New creates a server listening on the specified port and advertising the
// given agent identity. Pass port 0 for dynamic allocation.
func New(port int, spec agentcard.Spec) (*Server, error) {
	listener, err := (&net.ListenConfig{}).Listen(context.TODO(), "tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	// Get actual port if dynamically allocated
	actualPort := listener.Addr().(*net.TCPAddr).Port
	baseURL := fmt.Sprintf("http://localhost:%d", actualPort)

	srv := &Server{
		listener:  listener,
		port:      actualPort,
		card:      agentcard.New(spec, baseURL),
		startedAt: time.Now().UTC(),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get(agentcard.WellKnownPath, srv.handleAgentCard)
	r.Get("/health", srv.handleHealth)
	r.Get("/status", srv.handleStatus)

	srv.httpServer = &http.Server{Handler: r}
	return srv, nil
}

// Port returns the port the server is listening on.
func (s *Server) Port() int {
	return s.port
}

// Card returns the agent card the server advertises.
func (s *Server) Card() *agentcard.Card {
	return s.card
}

// Serve starts serving requests. This blocks until Stop is called.
func (s *Server) Serve() error {
	err := s.httpServer.Serve(s.listener)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop gracefully stops the server.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.httpServer.Shutdown(ctx)
}

// Handler returns the HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// handleAgentCard serves the agent card at the well-known path (A2A spec 5.3).
func (s *Server) handleAgentCard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.card)
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleStatus returns daemon identity and uptime.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"agentId":   s.card.AgentID,
		"port":      s.port,
		"startedAt": s.startedAt.Format(time.RFC3339),
		"uptimeSec": int(time.Since(s.startedAt).Seconds()),
	})
}

// TrayState adapts a Server to the tray.DaemonState interface.
type TrayState struct {
	srv *Server
}

// NewTrayState creates a TrayState for the given server.
func NewTrayState(srv *Server) *TrayState {
	return &TrayState{srv: srv}
}

// Port returns the port the server is listening on.
func (t *TrayState) Port() int {
	return t.srv.Port()
}

// AgentName returns the advertised agent name.
func (t *TrayState) AgentName() string {
	return t.srv.card.Name
}

// Initialized reports whether the daemon is serving. Once the server exists
// it is initialized; the tray's "Initializing..." rendering covers the
// window before that.
func (t *TrayState) Initialized() bool {
	return t.srv != nil
}

// RequestShutdown sends SIGINT to the current process to trigger a graceful shutdown.
func (t *TrayState) RequestShutdown() {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return
	}
	_ = p.Signal(syscall.SIGINT)
}
