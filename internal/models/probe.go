package models

import "time"

// ProbeResult captures the outcome of a single liveness probe against the
// agent daemon's well-known endpoint.
type ProbeResult struct {
	Target    string        `json:"target"`
	OK        bool          `json:"ok"`
	Latency   time.Duration `json:"latency"`
	Error     string        `json:"error,omitempty"`
	CheckedAt time.Time     `json:"checked_at"`
}
