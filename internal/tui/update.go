package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DuaneNielsen/claude-code/internal/container"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case statusTickMsg:
		if m.busy {
			return m, tickCmd()
		}
		return m, tea.Batch(refreshCmd(m.rt, m.workspace, m.rec), tickCmd())

	case classifiedMsg:
		if msg.err != nil {
			m.message = msg.err.Error()
			m.isError = true
			return m, nil
		}
		m.rec = msg.rec
		m.known = true
		return m, nil

	case activatedMsg:
		m.busy = false
		m.phase = ""
		if msg.err != nil {
			m.message = msg.err.Error()
			m.isError = true
			return m, nil
		}
		m.rec = msg.rec
		m.known = true
		m.connect = msg.rec.ID
		return m, tea.Quit

	case stoppedMsg:
		m.busy = false
		m.phase = ""
		if msg.err != nil {
			m.message = msg.err.Error()
			m.isError = true
			return m, nil
		}
		m.message = "Container stopped."
		m.isError = false
		return m, refreshCmd(m.rt, m.workspace, m.rec)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		// Only quit is allowed while an operation runs
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "r":
		m.message = ""
		m.isError = false
		return m, refreshCmd(m.rt, m.workspace, m.rec)

	case "enter", "c":
		if m.rec.State == container.StateRunning {
			m.connect = m.rec.ID
			return m, tea.Quit
		}
		m.busy = true
		m.phase = activatePhase(m.rec.State)
		m.message = ""
		m.isError = false
		return m, activateCmd(m.rt, m.workspace, m.shell)

	case "s":
		if m.rec.State != container.StateRunning {
			m.message = "Nothing to stop."
			m.isError = false
			return m, nil
		}
		m.busy = true
		m.phase = "Stopping container..."
		return m, stopCmd(m.rt, m.rec.ID)
	}

	return m, nil
}

func activatePhase(s container.State) string {
	if s == container.StateStopped {
		return "Starting container..."
	}
	return "Provisioning container (may take a minute on first run)..."
}
