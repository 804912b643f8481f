package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/DuaneNielsen/claude-code/internal/config"
	"github.com/DuaneNielsen/claude-code/internal/container"
)

// model is the Bubble Tea model for the cbox status dashboard.
type model struct {
	rt        container.Runtime
	cfg       *config.Config
	workspace string
	shell     string

	spinner spinner.Model
	rec     container.Record
	known   bool   // first classification has completed
	busy    bool   // a lifecycle operation is in flight
	phase   string // label shown next to the spinner while busy

	message  string
	isError  bool
	quitting bool
	connect  string // container ID to attach to after tea quits

	width  int
	height int
}

func newModel(rt container.Runtime, cfg *config.Config, workspace, shell string) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	// Get initial terminal size so the first render isn't at width=0
	w, h, _ := term.GetSize(int(os.Stdout.Fd()))
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	return model{
		rt:        rt,
		cfg:       cfg,
		workspace: workspace,
		shell:     shell,
		spinner:   sp,
		width:     w,
		height:    h,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, refreshCmd(m.rt, m.workspace, m.rec), tickCmd())
}
