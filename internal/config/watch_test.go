package config

import (
	"testing"
	"time"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/models"
)

func TestSettingsWatcherDeliversReload(t *testing.T) {
	useTempHome(t)

	w, err := WatchSettings()
	if err != nil {
		t.Fatalf("WatchSettings: %v", err)
	}
	defer w.Stop()

	settings := models.NewSettings()
	settings.Console.ShowStatusIndicator = false
	if err := SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	select {
	case reloaded := <-w.Changes():
		if reloaded.Console.ShowStatusIndicator {
			t.Error("reloaded settings should carry the new flag value")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for settings reload")
	}
}

func TestSettingsWatcherIgnoresOtherFiles(t *testing.T) {
	useTempHome(t)

	w, err := WatchSettings()
	if err != nil {
		t.Fatalf("WatchSettings: %v", err)
	}
	defer w.Stop()

	// daemon.yaml changes are not settings changes.
	if err := SaveDaemonInfo(models.NewDaemonInfo("localhost", 3001, 1, "agent-1")); err != nil {
		t.Fatalf("SaveDaemonInfo: %v", err)
	}

	select {
	case <-w.Changes():
		t.Error("watcher should ignore non-settings files")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestSettingsWatcherStopTwice(t *testing.T) {
	useTempHome(t)

	w, err := WatchSettings()
	if err != nil {
		t.Fatalf("WatchSettings: %v", err)
	}
	w.Stop()
	w.Stop()
}
