package status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/agentcard"
)

func cardHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	card := agentcard.New(agentcard.Spec{
		AgentID: "agent-1",
		Name:    "test-agent",
		Version: "0.1.0",
	}, "http://localhost:3001")

	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != agentcard.WellKnownPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(card)
	}
}

func TestMonitorProbeSuccess(t *testing.T) {
	srv := httptest.NewServer(cardHandler(t))
	defer srv.Close()

	signal := NewSignal()
	m := NewMonitor(signal, srv.URL, time.Second)

	result := m.ProbeOnce(context.Background())

	require.NotNil(t, result)
	assert.True(t, result.OK)
	assert.Empty(t, result.Error)
	assert.True(t, signal.Value(), "signal should flip true on a good probe")

	card := m.Card()
	require.NotNil(t, card)
	assert.Equal(t, "test-agent", card.Name)
}

func TestMonitorProbeConnectionRefused(t *testing.T) {
	// Grab a port nothing listens on.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	signal := NewSignal()
	signal.Set(true) // simulate a previously healthy agent

	m := NewMonitor(signal, url, time.Second)
	result := m.ProbeOnce(context.Background())

	assert.False(t, result.OK)
	assert.NotEmpty(t, result.Error)
	assert.False(t, signal.Value(), "signal should revert to false when the agent goes away")
}

func TestMonitorProbeNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	signal := NewSignal()
	m := NewMonitor(signal, srv.URL, time.Second)
	result := m.ProbeOnce(context.Background())

	assert.False(t, result.OK)
	assert.False(t, signal.Value())
}

func TestMonitorProbeMalformedCard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name": 42`))
	}))
	defer srv.Close()

	signal := NewSignal()
	m := NewMonitor(signal, srv.URL, time.Second)
	result := m.ProbeOnce(context.Background())

	assert.False(t, result.OK)
	assert.False(t, signal.Value())
}

func TestMonitorProbeCardMissingIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	signal := NewSignal()
	m := NewMonitor(signal, srv.URL, time.Second)
	result := m.ProbeOnce(context.Background())

	assert.False(t, result.OK, "a card without identity fields should not count as initialized")
}

func TestMonitorResultsStream(t *testing.T) {
	srv := httptest.NewServer(cardHandler(t))
	defer srv.Close()

	m := NewMonitor(NewSignal(), srv.URL, time.Second)
	m.ProbeOnce(context.Background())

	select {
	case result := <-m.Results():
		assert.True(t, result.OK)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for probe result")
	}
}

func TestMonitorRunStopsOnCancel(t *testing.T) {
	srv := httptest.NewServer(cardHandler(t))
	defer srv.Close()

	signal := NewSignal()
	m := NewMonitor(signal, srv.URL, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	// Let it probe at least once.
	require.Eventually(t, signal.Value, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
