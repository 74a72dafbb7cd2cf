// Package agentcard defines the Agent2Agent (A2A) discovery document.
// Specification: https://a2a-protocol.org/
package agentcard

import "fmt"

// WellKnownPath is the server-level discovery path defined by the A2A spec
// ("https://{server_domain}/.well-known/agent-card.json", spec 5.3).
const WellKnownPath = "/.well-known/agent-card.json"

// DefaultPort is the conventional port for the local agent daemon.
const DefaultPort = 3001

// Card represents an A2A agent's capabilities and metadata.
// This is the agent's "business card" that other agents discover.
type Card struct {
	AgentID      string            `json:"agentId"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Version      string            `json:"version,omitempty"`
	Capabilities []string          `json:"capabilities"`
	Endpoints    Endpoints         `json:"endpoints"`
	InputTypes   []string          `json:"inputTypes"`
	OutputTypes  []string          `json:"outputTypes"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// Endpoints defines the URLs for agent interaction.
type Endpoints struct {
	Task   string `json:"task"`             // POST endpoint for task execution
	Stream string `json:"stream,omitempty"` // streaming endpoint
	Status string `json:"status,omitempty"` // GET endpoint for task status
}

// Spec describes the agent identity used to build a card.
type Spec struct {
	AgentID     string
	Name        string
	Description string
	Version     string
}

// New builds an A2A-compliant card for an agent reachable at baseURL.
func New(spec Spec, baseURL string) *Card {
	return &Card{
		AgentID:     spec.AgentID,
		Name:        spec.Name,
		Description: spec.Description,
		Version:     spec.Version,
		Capabilities: []string{
			"task_execution",
		},
		Endpoints: Endpoints{
			Task:   fmt.Sprintf("%s/agents/%s/tasks", baseURL, spec.AgentID),
			Status: fmt.Sprintf("%s/agents/%s/tasks/{taskId}", baseURL, spec.AgentID),
		},
		InputTypes:  []string{"text/plain", "application/json"},
		OutputTypes: []string{"text/plain", "application/json"},
	}
}

// Validate reports whether the card carries the fields a peer needs to
// address the agent.
func (c *Card) Validate() error {
	if c.AgentID == "" {
		return fmt.Errorf("agent card missing agentId")
	}
	if c.Name == "" {
		return fmt.Errorf("agent card missing name")
	}
	if c.Endpoints.Task == "" {
		return fmt.Errorf("agent card missing task endpoint")
	}
	return nil
}
