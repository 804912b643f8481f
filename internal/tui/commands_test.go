package tui

import (
	"os/exec"
	"testing"

	"github.com/DuaneNielsen/claude-code/internal/container"
)

// fakeRuntime serves scripted states and counts lookups vs inspects.
type fakeRuntime struct {
	states   map[string]container.State
	running  []string
	all      []string
	inspects int
	lookups  int
}

func (f *fakeRuntime) LookupRunning(workspace string) ([]string, error) {
	f.lookups++
	return f.running, nil
}

func (f *fakeRuntime) LookupAll(workspace string) ([]string, error) {
	f.lookups++
	return f.all, nil
}

func (f *fakeRuntime) Start(id string) error            { return nil }
func (f *fakeRuntime) Provision(workspace string) error { return nil }
func (f *fakeRuntime) Stop(id string) error             { return nil }

func (f *fakeRuntime) Inspect(id string) container.State {
	f.inspects++
	if s, ok := f.states[id]; ok {
		return s
	}
	return container.StateAbsent
}

func (f *fakeRuntime) AttachCmd(id, shellCmd string) *exec.Cmd {
	return exec.Command("true")
}

func TestRefreshPollsKnownContainerByID(t *testing.T) {
	rt := &fakeRuntime{states: map[string]container.State{"c1": container.StateStopped}}

	msg := refreshCmd(rt, "/proj/a", container.Record{ID: "c1", State: container.StateRunning})()
	got := msg.(classifiedMsg)

	if got.err != nil {
		t.Fatalf("refresh: %v", got.err)
	}
	if got.rec.ID != "c1" || got.rec.State != container.StateStopped {
		t.Errorf("rec = %+v, want stopped c1", got.rec)
	}
	if rt.inspects != 1 || rt.lookups != 0 {
		t.Errorf("inspects = %d, lookups = %d; want a single inspect and no lookups", rt.inspects, rt.lookups)
	}
}

func TestRefreshFallsBackWhenContainerGone(t *testing.T) {
	// c1 vanished; a replacement c2 is running
	rt := &fakeRuntime{running: []string{"c2"}}

	msg := refreshCmd(rt, "/proj/a", container.Record{ID: "c1", State: container.StateRunning})()
	got := msg.(classifiedMsg)

	if got.rec.ID != "c2" || got.rec.State != container.StateRunning {
		t.Errorf("rec = %+v, want running c2", got.rec)
	}
	if rt.inspects != 1 {
		t.Errorf("inspects = %d, want 1 before falling back", rt.inspects)
	}
}

func TestRefreshClassifiesWhenNoIDKnown(t *testing.T) {
	rt := &fakeRuntime{}

	msg := refreshCmd(rt, "/proj/a", container.Record{})()
	got := msg.(classifiedMsg)

	if got.rec.State != container.StateAbsent {
		t.Errorf("rec = %+v, want absent", got.rec)
	}
	if rt.inspects != 0 {
		t.Errorf("inspects = %d, want none without a known ID", rt.inspects)
	}
}
