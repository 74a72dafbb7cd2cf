package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/notify"
)

// toastDuration is how long a toast stays on screen.
const toastDuration = 4 * time.Second

// maxVisibleToasts bounds the stack; older toasts scroll off first.
const maxVisibleToasts = 3

// toast is a notification currently on screen.
type toast struct {
	id           int
	notification notify.Notification
}

// pushToast appends a toast and trims the stack.
func (m *Model) pushToast(n notify.Notification) int {
	m.nextToastID++
	m.toasts = append(m.toasts, toast{id: m.nextToastID, notification: n})
	if len(m.toasts) > maxVisibleToasts {
		m.toasts = m.toasts[len(m.toasts)-maxVisibleToasts:]
	}
	return m.nextToastID
}

// expireToast removes the toast with the given id, if still visible.
func (m *Model) expireToast(id int) {
	for i, t := range m.toasts {
		if t.id == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

// renderToasts renders the notification host area. The host is always
// mounted exactly once; with nothing to show it renders empty.
func renderToasts(toasts []toast) string {
	if len(toasts) == 0 {
		return ""
	}

	lines := make([]string, 0, len(toasts))
	for _, t := range toasts {
		lines = append(lines, " "+toastStyleFor(t.notification.Level).Render(t.notification.Message))
	}
	return strings.Join(lines, "\n")
}

func toastStyleFor(level notify.Level) lipgloss.Style {
	switch level {
	case notify.LevelSuccess:
		return toastSuccessStyle
	case notify.LevelWarn:
		return toastWarnStyle
	case notify.LevelError:
		return toastErrorStyle
	default:
		return toastInfoStyle
	}
}
