package tui

import (
	"fmt"
	"strings"

	"github.com/DuaneNielsen/claude-code/internal/container"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf(" cbox · %s ", m.cfg.Project)))
	b.WriteString("\n")
	b.WriteString(workspaceStyle.Render(m.workspace))
	b.WriteString("\n\n")

	switch {
	case m.busy:
		b.WriteString(labelStyle.Render(m.spinner.View() + " " + m.phase))
	case !m.known:
		b.WriteString(labelStyle.Render(m.spinner.View() + " Querying container runtime..."))
	default:
		b.WriteString(labelStyle.Render("Container: " + stateLabel(m.rec)))
	}
	b.WriteString("\n\n")

	if m.message != "" {
		style := messageStyle
		if m.isError {
			style = errorStyle
		}
		b.WriteString(style.Render(m.message))
		b.WriteString("\n\n")
	}

	b.WriteString(hotkeysStyle.Render(hotkeys(m)))
	b.WriteString("\n")

	return b.String()
}

// stateLabel renders a record as a colored state plus ID when present.
func stateLabel(rec container.Record) string {
	switch rec.State {
	case container.StateRunning:
		return statusRunning.Render("running") + "  " + idStyle.Render(rec.ID)
	case container.StateStopped:
		return statusStopped.Render("stopped") + "  " + idStyle.Render(rec.ID)
	default:
		return statusAbsent.Render("absent")
	}
}

func hotkeys(m model) string {
	if m.busy {
		return "ctrl+c quit"
	}
	switch m.rec.State {
	case container.StateRunning:
		return "enter connect · s stop · r refresh · q quit"
	case container.StateStopped:
		return "enter start & connect · r refresh · q quit"
	default:
		return "enter provision & connect · r refresh · q quit"
	}
}
