package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DuaneNielsen/claude-code/internal/activator"
	"github.com/DuaneNielsen/claude-code/internal/container"
)

// refreshCmd re-queries the runtime for the workspace container. A known
// container is polled by ID; when it disappears, or no ID is known yet,
// the full lookup classifies from scratch.
func refreshCmd(rt container.Runtime, workspace string, known container.Record) tea.Cmd {
	return func() tea.Msg {
		if known.ID != "" {
			if state := rt.Inspect(known.ID); state != container.StateAbsent {
				return classifiedMsg{rec: container.Record{ID: known.ID, State: state}}
			}
		}
		rec, err := activator.Classify(rt, workspace, nil)
		return classifiedMsg{rec: rec, err: err}
	}
}

// activateCmd drives the container to running in the background.
func activateCmd(rt container.Runtime, workspace, shell string) tea.Cmd {
	return func() tea.Msg {
		act := &activator.Activator{Runtime: rt, Shell: shell, Out: io.Discard, ErrOut: io.Discard}
		rec, err := act.Up(workspace)
		return activatedMsg{rec: rec, err: err}
	}
}

func stopCmd(rt container.Runtime, id string) tea.Cmd {
	return func() tea.Msg {
		return stoppedMsg{err: rt.Stop(id)}
	}
}
