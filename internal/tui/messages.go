package tui

import (
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/models"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/notify"
)

// SignalChangedMsg carries a new value of the agent liveness signal.
type SignalChangedMsg struct {
	Initialized bool
}

// ProbeResultMsg carries the outcome of a liveness probe.
type ProbeResultMsg struct {
	Result *models.ProbeResult
}

// NotificationMsg carries a notification from the hub to the host.
type NotificationMsg struct {
	Notification notify.Notification
}

// NotifyClosedMsg signals the notification hub was closed.
type NotifyClosedMsg struct{}

// ToastExpiredMsg removes a toast after its display duration.
type ToastExpiredMsg struct {
	ID int
}

// SettingsReloadedMsg carries settings reloaded from disk.
type SettingsReloadedMsg struct {
	Settings *models.Settings
}

// UpdateAvailableMsg signals a newer release exists.
type UpdateAvailableMsg struct {
	Version string
	URL     string
}
