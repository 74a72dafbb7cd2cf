package tray

import (
	"fmt"

	"github.com/getlantern/systray"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/agentcard"
)

// Badge text shown for the two indicator states. There is no third state:
// anything short of a confirmed initialized daemon renders as initializing.
const (
	labelActive       = "A2A Agent: Active"
	labelInitializing = "A2A Agent: Initializing..."
)

var (
	state   DaemonState
	onStart func()
	onExit  func()

	statusItem *systray.MenuItem
	portItem   *systray.MenuItem
	quitItem   *systray.MenuItem
)

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStartFn is called when the tray is ready (launch the HTTP server here).
// onExitFn is called when the tray exits (cleanup here).
func Run(s DaemonState, onStartFn, onExitFn func()) {
	state = s
	onStart = onStartFn
	onExit = onExitFn
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	systray.SetTitle("A2A")
	systray.SetTooltip(labelInitializing)

	// Header
	header := systray.AddMenuItem("A2A Agent Daemon", "")
	header.Disable()

	statusItem = systray.AddMenuItem(labelInitializing, "")
	statusItem.Disable()

	portItem = systray.AddMenuItem("Starting...", "")
	portItem.Disable()

	systray.AddSeparator()

	quitItem = systray.AddMenuItem("Quit", "Shut down the agent daemon")

	// Start the daemon services
	if onStart != nil {
		onStart()
	}

	Refresh()

	go handleClicks()
}

func onQuit() {
	if onExit != nil {
		onExit()
	}
}

func handleClicks() {
	for range quitItem.ClickedCh {
		if state != nil {
			state.RequestShutdown()
		}
	}
}

// Refresh re-renders the indicator from the current daemon state. Initialized
// shows the active label plus the port and card path; anything else shows the
// initializing label only.
func Refresh() {
	if state == nil {
		return
	}

	if state.Initialized() {
		statusItem.SetTitle(labelActive)
		portItem.SetTitle(fmt.Sprintf("Port: %d | Card: %s", state.Port(), agentcard.WellKnownPath))
		portItem.Show()
		systray.SetTooltip(fmt.Sprintf("%s — %s", state.AgentName(), labelActive))
	} else {
		statusItem.SetTitle(labelInitializing)
		portItem.Hide()
		systray.SetTooltip(labelInitializing)
	}
}
