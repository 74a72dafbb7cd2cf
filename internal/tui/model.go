package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/config"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/models"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/notify"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/status"
)

// Model is the root shell: one consistent frame (header, body panel, toast
// host, status bar) around whatever child view is active, plus the
// liveness indicator badge when enabled.
type Model struct {
	width  int
	height int

	settings *models.Settings
	port     int

	// Live signal value. Zero value false = not initialized.
	initialized bool
	signalCh    <-chan bool

	// Notification host state.
	hub         *notify.Hub
	toasts      []toast
	nextToastID int

	// Hosted children.
	views      []childView
	activeView int
	overview   *OverviewView
	probeLog   *ProbeLogView

	monitor *status.Monitor
	watcher *config.SettingsWatcher
}

// NewModel creates the initial root model. The signal subscription channel
// comes from the caller so the shell never owns the signal itself.
func NewModel(settings *models.Settings, port int, monitor *status.Monitor, signalCh <-chan bool, hub *notify.Hub, watcher *config.SettingsWatcher) Model {
	overview := NewOverviewView()
	probeLog := NewProbeLogView()
	return Model{
		settings: settings,
		port:     port,
		signalCh: signalCh,
		hub:      hub,
		overview: overview,
		probeLog: probeLog,
		views:    []childView{overview, probeLog},
		monitor:  monitor,
		watcher:  watcher,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		waitForSignalCmd(m.signalCh),
		waitForNotificationCmd(m.hub),
		checkUpdateCmd(m.settings),
	}
	if m.monitor != nil {
		cmds = append(cmds, waitForProbeCmd(m.monitor))
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForSettingsCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SignalChangedMsg:
		if msg.Initialized != m.initialized {
			if msg.Initialized {
				m.hub.Publish(notify.LevelSuccess, "Agent active")
			} else {
				m.hub.Publish(notify.LevelWarn, "Agent connection lost")
			}
		}
		m.initialized = msg.Initialized
		return m, waitForSignalCmd(m.signalCh)

	case ProbeResultMsg:
		m.probeLog.Add(msg.Result)
		if msg.Result.OK && m.monitor != nil {
			m.overview.SetCard(m.monitor.Card())
		}
		return m, waitForProbeCmd(m.monitor)

	case NotificationMsg:
		id := m.pushToast(msg.Notification)
		return m, tea.Batch(expireToastCmd(id), waitForNotificationCmd(m.hub))

	case NotifyClosedMsg:
		return m, nil

	case ToastExpiredMsg:
		m.expireToast(msg.ID)
		return m, nil

	case SettingsReloadedMsg:
		m.settings = msg.Settings
		if m.watcher == nil {
			return m, nil
		}
		return m, waitForSettingsCmd(m.watcher)

	case UpdateAvailableMsg:
		m.hub.Publish(notify.LevelInfo, "Update available: v"+msg.Version)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, globalKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, globalKeys.Tab):
		m.activeView = (m.activeView + 1) % len(m.views)
		return m, nil

	case key.Matches(msg, globalKeys.Indicator):
		m.settings.Console.ShowStatusIndicator = !m.settings.Console.ShowStatusIndicator
		return m, saveSettingsCmd(m.settings)

	case key.Matches(msg, globalKeys.Probe):
		if m.monitor == nil {
			return m, nil
		}
		return m, probeNowCmd(m.monitor)
	}
	return m, nil
}

// View renders the shell. The child view is rendered verbatim inside the
// body panel; the toast host and the indicator toggle never depend on which
// child is active.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var sections []string

	title := m.settings.Console.Title
	sections = append(sections, renderHeader(title, m.settings.Console.Description, m.views, m.activeView, m.width))

	if m.settings.Console.ShowStatusIndicator {
		badge := renderIndicator(m.initialized, m.port)
		sections = append(sections, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, badge))
	}

	body := m.views[m.activeView].View(m.width - 4)
	bodyHeight := m.height - lipgloss.Height(strings.Join(sections, "\n")) - 4
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	sections = append(sections, bodyStyle.Width(m.width-2).Height(bodyHeight).Render(body))

	if host := renderToasts(m.toasts); host != "" {
		sections = append(sections, host)
	}

	sections = append(sections, renderStatusBar(&m, m.width))

	return strings.Join(sections, "\n")
}
