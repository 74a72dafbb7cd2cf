// Package models contains shared data structures used across the application.
package models

import "time"

// AgentConfig describes the agent identity advertised on the agent card.
type AgentConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
}

// ConsoleConfig holds console (TUI) settings.
type ConsoleConfig struct {
	ShowStatusIndicator bool   `yaml:"show_status_indicator"`
	ProbeIntervalSec    int    `yaml:"probe_interval_sec"`
	Title               string `yaml:"title"`
	Description         string `yaml:"description"`
}

// UpdatesConfig holds settings for update checking.
type UpdatesConfig struct {
	CheckOnStartup bool       `yaml:"check_on_startup"`
	CheckFrequency string     `yaml:"check_frequency"` // "every_launch" | "daily" | "weekly"
	LastChecked    *time.Time `yaml:"last_checked,omitempty"`
}

// Settings represents global application settings.
// This corresponds to ~/.a2a/settings.yaml.
type Settings struct {
	Version int           `yaml:"version"`
	Agent   AgentConfig   `yaml:"agent"`
	Console ConsoleConfig `yaml:"console"`
	Updates UpdatesConfig `yaml:"updates"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Agent: AgentConfig{
			Name:        "a2a-agent",
			Description: "Local Agent2Agent protocol endpoint",
			Version:     "0.1.0",
		},
		Console: ConsoleConfig{
			ShowStatusIndicator: true,
			ProbeIntervalSec:    2,
			Title:               "A2A Orchestrator",
			Description:         "Console for the local Agent2Agent endpoint",
		},
		Updates: UpdatesConfig{
			CheckOnStartup: true,
			CheckFrequency: "daily",
			LastChecked:    nil,
		},
	}
}

// ProbeInterval returns the probe interval as a duration, with a sane floor.
func (s *Settings) ProbeInterval() time.Duration {
	sec := s.Console.ProbeIntervalSec
	if sec < 1 {
		sec = 2
	}
	return time.Duration(sec) * time.Second
}
