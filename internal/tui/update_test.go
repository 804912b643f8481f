package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DuaneNielsen/claude-code/internal/config"
	"github.com/DuaneNielsen/claude-code/internal/container"
)

func testModel() model {
	m := newModel(nil, config.Default("test"), "/proj/a", "bash")
	m.known = true
	return m
}

func TestUpdateClassified(t *testing.T) {
	m := testModel()

	next, _ := m.Update(classifiedMsg{rec: container.Record{ID: "c1", State: container.StateRunning}})
	got := next.(model)

	if got.rec.ID != "c1" || got.rec.State != container.StateRunning {
		t.Errorf("rec = %+v, want running c1", got.rec)
	}
}

func TestUpdateClassifiedError(t *testing.T) {
	m := testModel()

	next, _ := m.Update(classifiedMsg{err: errors.New("docker unreachable")})
	got := next.(model)

	if !got.isError || got.message == "" {
		t.Errorf("expected error message, got %+v", got)
	}
}

func TestUpdateActivatedQuitsToConnect(t *testing.T) {
	m := testModel()
	m.busy = true

	next, cmd := m.Update(activatedMsg{rec: container.Record{ID: "c1", State: container.StateRunning}})
	got := next.(model)

	if got.connect != "c1" {
		t.Errorf("connect = %q, want c1", got.connect)
	}
	if got.busy {
		t.Error("busy should clear after activation")
	}
	if cmd == nil {
		t.Error("expected a quit command after activation")
	}
}

func TestUpdateEnterConnectsWhenRunning(t *testing.T) {
	m := testModel()
	m.rec = container.Record{ID: "c1", State: container.StateRunning}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(model)

	if got.connect != "c1" {
		t.Errorf("connect = %q, want c1", got.connect)
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
}

func TestUpdateQuit(t *testing.T) {
	m := testModel()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	got := next.(model)

	if !got.quitting {
		t.Error("q should set quitting")
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
}

func TestStateLabel(t *testing.T) {
	running := stateLabel(container.Record{ID: "c1", State: container.StateRunning})
	if !strings.Contains(running, "running") || !strings.Contains(running, "c1") {
		t.Errorf("running label = %q", running)
	}

	absent := stateLabel(container.Record{State: container.StateAbsent})
	if !strings.Contains(absent, "absent") {
		t.Errorf("absent label = %q", absent)
	}
}
