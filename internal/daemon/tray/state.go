// Package tray implements the system tray indicator for the agent daemon.
package tray

// DaemonState provides read-only access to daemon state for the tray.
type DaemonState interface {
	Port() int
	AgentName() string
	Initialized() bool
	RequestShutdown()
}
