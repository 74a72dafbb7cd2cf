package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/config"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/models"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/notify"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/status"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/updater"
)

// waitForSignalCmd blocks on the signal subscription and forwards the next
// value. The command re-arms itself from Update.
func waitForSignalCmd(ch <-chan bool) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return SignalChangedMsg{Initialized: v}
	}
}

// waitForNotificationCmd blocks on the hub and forwards the next
// notification.
func waitForNotificationCmd(hub *notify.Hub) tea.Cmd {
	return func() tea.Msg {
		n, ok := <-hub.Consume()
		if !ok {
			return NotifyClosedMsg{}
		}
		return NotificationMsg{Notification: n}
	}
}

// waitForSettingsCmd blocks on the settings watcher and forwards the next
// reload.
func waitForSettingsCmd(w *config.SettingsWatcher) tea.Cmd {
	return func() tea.Msg {
		settings, ok := <-w.Changes()
		if !ok {
			return nil
		}
		return SettingsReloadedMsg{Settings: settings}
	}
}

// waitForProbeCmd blocks on the monitor's result stream and forwards the
// next completed probe.
func waitForProbeCmd(m *status.Monitor) tea.Cmd {
	return func() tea.Msg {
		result, ok := <-m.Results()
		if !ok {
			return nil
		}
		return ProbeResultMsg{Result: result}
	}
}

// probeNowCmd triggers an immediate probe. The result arrives through the
// monitor's result stream like any scheduled probe.
func probeNowCmd(m *status.Monitor) tea.Cmd {
	return func() tea.Msg {
		m.ProbeOnce(context.Background())
		return nil
	}
}

// saveSettingsCmd persists settings to disk in the background.
func saveSettingsCmd(settings *models.Settings) tea.Cmd {
	return func() tea.Msg {
		_ = config.SaveSettings(settings)
		return nil
	}
}

// expireToastCmd schedules removal of a toast.
func expireToastCmd(id int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// checkUpdateCmd runs an update check in the background. Failures are
// silent; the console stays usable offline.
func checkUpdateCmd(settings *models.Settings) tea.Cmd {
	if settings == nil || !settings.Updates.CheckOnStartup {
		return nil
	}
	return func() tea.Msg {
		result, err := updater.CheckForUpdate()
		if err != nil || !result.Available {
			return nil
		}
		return UpdateAvailableMsg{Version: result.LatestVersion, URL: result.ReleaseURL}
	}
}
