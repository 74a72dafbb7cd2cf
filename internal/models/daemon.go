package models

import "time"

// DaemonInfo represents the agent daemon connection information.
// This corresponds to ~/.a2a/daemon.yaml.
type DaemonInfo struct {
	Version   int       `yaml:"version"`
	Host      string    `yaml:"host"`
	Port      int       `yaml:"port"`
	PID       int       `yaml:"pid"`
	AgentID   string    `yaml:"agent_id"`
	StartedAt time.Time `yaml:"started_at"`
}

// NewDaemonInfo creates a new daemon info with current values.
func NewDaemonInfo(host string, port, pid int, agentID string) *DaemonInfo {
	return &DaemonInfo{
		Version:   1,
		Host:      host,
		Port:      port,
		PID:       pid,
		AgentID:   agentID,
		StartedAt: time.Now().UTC(),
	}
}
