package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DuaneNielsen/claude-code/internal/container"
)

// classifiedMsg carries a fresh runtime view of the workspace container.
type classifiedMsg struct {
	rec container.Record
	err error
}

// activatedMsg is sent when an activation attempt finishes.
type activatedMsg struct {
	rec container.Record
	err error
}

// stoppedMsg is sent when a stop attempt finishes.
type stoppedMsg struct {
	err error
}

// statusTickMsg triggers a status refresh poll.
type statusTickMsg time.Time

// tickCmd returns a command that sends a tick every 2 seconds.
func tickCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}
