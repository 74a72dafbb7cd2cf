package status

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/agentcard"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/models"
)

const probeTimeout = 3 * time.Second

// Monitor drives a Signal by periodically probing the agent daemon's
// well-known discovery endpoint. A probe succeeds only when the endpoint
// answers 200 with a parseable agent card; everything else (connection
// refused, timeout, non-200, malformed body) reads as not initialized.
type Monitor struct {
	signal     *Signal
	target     string
	interval   time.Duration
	httpClient *http.Client

	results chan *models.ProbeResult

	mu   sync.RWMutex
	last *models.ProbeResult
	card *agentcard.Card
}

// NewMonitor creates a monitor probing the given base URL
// (e.g. "http://localhost:3001") at the given interval.
func NewMonitor(signal *Signal, baseURL string, interval time.Duration) *Monitor {
	return &Monitor{
		signal:   signal,
		target:   baseURL + agentcard.WellKnownPath,
		interval: interval,
		results:  make(chan *models.ProbeResult, 8),
		httpClient: &http.Client{
			Timeout: probeTimeout,
		},
	}
}

// Signal returns the signal driven by this monitor.
func (m *Monitor) Signal() *Signal {
	return m.signal
}

// Results returns the channel carrying every completed probe, newest last.
// A slow consumer loses the oldest pending results, never blocks probing.
func (m *Monitor) Results() <-chan *models.ProbeResult {
	return m.results
}

// LastResult returns the most recent probe result, or nil before the first
// probe completes.
func (m *Monitor) LastResult() *models.ProbeResult {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}

// Card returns the agent card from the most recent successful probe.
func (m *Monitor) Card() *agentcard.Card {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.card
}

// Run probes immediately and then on every interval tick until ctx is
// cancelled.
func (m *Monitor) Run(ctx context.Context) {
	m.ProbeOnce(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.ProbeOnce(ctx)
		}
	}
}

// ProbeOnce performs a single probe, updates the signal, and returns the
// result.
func (m *Monitor) ProbeOnce(ctx context.Context) *models.ProbeResult {
	started := time.Now()
	card, err := m.fetchCard(ctx)

	result := &models.ProbeResult{
		Target:    m.target,
		OK:        err == nil,
		Latency:   time.Since(started),
		CheckedAt: started.UTC(),
	}
	if err != nil {
		result.Error = err.Error()
	}

	m.mu.Lock()
	m.last = result
	if err == nil {
		m.card = card
	}
	m.mu.Unlock()

	m.signal.Set(err == nil)

	for {
		select {
		case m.results <- result:
			return result
		default:
			select {
			case <-m.results:
			default:
			}
		}
	}
}

func (m *Monitor) fetchCard(ctx context.Context) (*agentcard.Card, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agent card: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent card endpoint returned %s", resp.Status)
	}

	var card agentcard.Card
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("failed to decode agent card: %w", err)
	}
	if err := card.Validate(); err != nil {
		return nil, err
	}

	return &card, nil
}
