package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DuaneNielsen/claude-code/internal/agent"
	"github.com/DuaneNielsen/claude-code/internal/config"
	"github.com/DuaneNielsen/claude-code/internal/container"
)

// Run starts the status dashboard. It cycles between the Bubble Tea view
// and attached sessions until the user quits.
func Run(rt container.Runtime, cfg *config.Config, workspace string) error {
	shell := agent.ShellCommand(cfg.Agent.Command, cfg.Agent.Args)

	for {
		m := newModel(rt, cfg, workspace, shell)
		p := tea.NewProgram(m, tea.WithAltScreen())
		result, err := p.Run()
		if err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}

		final := result.(model)

		if final.connect == "" {
			return nil
		}

		fmt.Printf("Attaching to %s... (exit the shell to return)\n", final.connect)

		cmd := rt.AttachCmd(final.connect, shell)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		cmd.Run()

		// Reset terminal after the session so Bubble Tea starts clean
		fmt.Print("\033c") // full terminal reset (RIS)
	}
}
