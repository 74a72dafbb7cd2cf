package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/agentcard"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(0, agentcard.Spec{
		AgentID:     "agent-1",
		Name:        "test-agent",
		Description: "test agent",
		Version:     "0.1.0",
	})
	require.NoError(t, err)
	t.Cleanup(srv.Stop)
	return srv
}

func TestServerAllocatesDynamicPort(t *testing.T) {
	srv := newTestServer(t)
	assert.NotZero(t, srv.Port())
}

func TestWellKnownAgentCard(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, agentcard.WellKnownPath, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var card agentcard.Card
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&card))
	assert.Equal(t, "agent-1", card.AgentID)
	assert.Equal(t, "test-agent", card.Name)
	assert.NoError(t, card.Validate())
}

func TestCardEndpointsUseListeningPort(t *testing.T) {
	srv := newTestServer(t)
	assert.Contains(t, srv.Card().Endpoints.Task, "http://localhost:")
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestStatus(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "agent-1", body["agentId"])
	assert.EqualValues(t, srv.Port(), body["port"])
}

func TestUnknownPathIs404(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
