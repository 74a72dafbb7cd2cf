package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/agentcard"
	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/models"
)

// childView is any content the root shell can host. The shell renders the
// child verbatim inside the body panel; children carry no shell concerns.
type childView interface {
	Title() string
	View(width int) string
}

// OverviewView shows the discovered agent card.
type OverviewView struct {
	card *agentcard.Card
}

// NewOverviewView creates an empty overview.
func NewOverviewView() *OverviewView {
	return &OverviewView{}
}

// SetCard updates the displayed card.
func (v *OverviewView) SetCard(card *agentcard.Card) {
	v.card = card
}

// Title implements childView.
func (v *OverviewView) Title() string { return "Overview" }

// View implements childView.
func (v *OverviewView) View(width int) string {
	if v.card == nil {
		return hintStyle.Render("Waiting for the agent card...")
	}

	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("Agent") + "\n")
	writeField(&b, "Name", v.card.Name)
	writeField(&b, "ID", v.card.AgentID)
	writeField(&b, "Version", v.card.Version)
	writeField(&b, "Description", v.card.Description)
	writeField(&b, "Capabilities", strings.Join(v.card.Capabilities, ", "))
	b.WriteString("\n" + sectionHeaderStyle.Render("Endpoints") + "\n")
	writeField(&b, "Task", v.card.Endpoints.Task)
	if v.card.Endpoints.Status != "" {
		writeField(&b, "Status", v.card.Endpoints.Status)
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(fieldLabelStyle.Render(label) + fieldValueStyle.Render(value) + "\n")
}

// probeHistorySize is how many probes the log keeps.
const probeHistorySize = 50

// ProbeLogView shows recent liveness probes, newest first.
type ProbeLogView struct {
	results []*models.ProbeResult
}

// NewProbeLogView creates an empty probe log.
func NewProbeLogView() *ProbeLogView {
	return &ProbeLogView{}
}

// Add records a probe result.
func (v *ProbeLogView) Add(result *models.ProbeResult) {
	v.results = append([]*models.ProbeResult{result}, v.results...)
	if len(v.results) > probeHistorySize {
		v.results = v.results[:probeHistorySize]
	}
}

// Title implements childView.
func (v *ProbeLogView) Title() string { return "Probes" }

// View implements childView.
func (v *ProbeLogView) View(width int) string {
	if len(v.results) == 0 {
		return hintStyle.Render("No probes yet.")
	}

	var b strings.Builder
	for _, r := range v.results {
		b.WriteString(renderProbeLine(r) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderProbeLine(r *models.ProbeResult) string {
	ts := r.CheckedAt.Local().Format("15:04:05")
	if r.OK {
		return fmt.Sprintf("%s  %s  %s",
			hintStyle.Render(ts),
			probeOKStyle.Render("ok"),
			hintStyle.Render(r.Latency.Round(time.Millisecond).String()))
	}
	return fmt.Sprintf("%s  %s  %s",
		hintStyle.Render(ts),
		probeFailedStyle.Render("down"),
		hintStyle.Render(r.Error))
}
