package agentcard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildsEndpointsFromBaseURL(t *testing.T) {
	card := New(Spec{
		AgentID:     "agent-1",
		Name:        "demo",
		Description: "a demo agent",
		Version:     "1.2.3",
	}, "http://localhost:3001")

	assert.Equal(t, "http://localhost:3001/agents/agent-1/tasks", card.Endpoints.Task)
	assert.Equal(t, "http://localhost:3001/agents/agent-1/tasks/{taskId}", card.Endpoints.Status)
	assert.NotEmpty(t, card.Capabilities)
	assert.NoError(t, card.Validate())
}

func TestCardJSONFieldNames(t *testing.T) {
	card := New(Spec{AgentID: "agent-1", Name: "demo"}, "http://localhost:3001")

	data, err := json.Marshal(card)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))

	// The A2A wire format uses camelCase field names.
	for _, field := range []string{"agentId", "name", "capabilities", "endpoints", "inputTypes", "outputTypes"} {
		assert.Contains(t, m, field)
	}

	endpoints, ok := m["endpoints"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, endpoints, "task")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		card    Card
		wantErr bool
	}{
		{
			name: "complete",
			card: Card{
				AgentID:   "agent-1",
				Name:      "demo",
				Endpoints: Endpoints{Task: "http://localhost:3001/agents/agent-1/tasks"},
			},
			wantErr: false,
		},
		{
			name:    "missing agent id",
			card:    Card{Name: "demo", Endpoints: Endpoints{Task: "x"}},
			wantErr: true,
		},
		{
			name:    "missing name",
			card:    Card{AgentID: "agent-1", Endpoints: Endpoints{Task: "x"}},
			wantErr: true,
		},
		{
			name:    "missing task endpoint",
			card:    Card{AgentID: "agent-1", Name: "demo"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.card.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
