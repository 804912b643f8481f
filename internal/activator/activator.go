package activator

import (
	"fmt"
	"io"
	"os"

	"github.com/DuaneNielsen/claude-code/internal/container"
)

// Lifecycle phases, used to tag failures in diagnostics.
const (
	PhaseLookup = "lookup"
	PhaseStart  = "start"
	PhaseCreate = "create"
)

// PhaseError tags a failure with the lifecycle phase that produced it.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string { return fmt.Sprintf("%s: %v", e.Phase, e.Err) }
func (e *PhaseError) Unwrap() error { return e.Err }

// Activator drives the workspace container to running and attaches an
// interactive session. All runtime calls block; there are no retries.
type Activator struct {
	Runtime container.Runtime
	Shell   string // command run inside the attached login shell
	Out     io.Writer
	ErrOut  io.Writer
}

// New returns an Activator writing status lines to stdout and warnings to
// stderr.
func New(rt container.Runtime, shell string) *Activator {
	return &Activator{Runtime: rt, Shell: shell, Out: os.Stdout, ErrOut: os.Stderr}
}

// Classify queries the runtime for the workspace container and returns a
// fresh Record. An empty query result is a legitimate Absent, not an error.
// More than one match is unexpected; the first ID wins and a warning goes
// to warn.
func Classify(rt container.Runtime, workspace string, warn io.Writer) (container.Record, error) {
	ids, err := rt.LookupRunning(workspace)
	if err != nil {
		return container.Record{}, &PhaseError{Phase: PhaseLookup, Err: err}
	}
	if len(ids) > 0 {
		warnMultiple(warn, workspace, ids)
		return container.Record{ID: ids[0], State: container.StateRunning}, nil
	}

	ids, err = rt.LookupAll(workspace)
	if err != nil {
		return container.Record{}, &PhaseError{Phase: PhaseLookup, Err: err}
	}
	if len(ids) > 0 {
		warnMultiple(warn, workspace, ids)
		return container.Record{ID: ids[0], State: container.StateStopped}, nil
	}

	return container.Record{State: container.StateAbsent}, nil
}

func warnMultiple(warn io.Writer, workspace string, ids []string) {
	if len(ids) > 1 && warn != nil {
		fmt.Fprintf(warn, "Warning: %d containers match %s, using %s\n", len(ids), workspace, ids[0])
	}
}

// Up brings the workspace container to running. Already-running containers
// are left untouched; stopped ones are started; absent ones are provisioned
// and re-queried. Any failure aborts with a phase-tagged error.
func (a *Activator) Up(workspace string) (container.Record, error) {
	rec, err := Classify(a.Runtime, workspace, a.ErrOut)
	if err != nil {
		return container.Record{}, err
	}

	switch rec.State {
	case container.StateRunning:
		fmt.Fprintf(a.Out, "Container %s already running.\n", rec.ID)
		return rec, nil

	case container.StateStopped:
		fmt.Fprintf(a.Out, "Starting stopped container %s...\n", rec.ID)
		if err := a.Runtime.Start(rec.ID); err != nil {
			return container.Record{}, &PhaseError{Phase: PhaseStart, Err: err}
		}
		rec.State = container.StateRunning
		return rec, nil

	default:
		fmt.Fprintf(a.Out, "No container found for %s, provisioning...\n", workspace)
		if err := a.Runtime.Provision(workspace); err != nil {
			return container.Record{}, &PhaseError{Phase: PhaseCreate, Err: err}
		}

		ids, err := a.Runtime.LookupRunning(workspace)
		if err != nil {
			return container.Record{}, &PhaseError{Phase: PhaseCreate, Err: err}
		}
		if len(ids) == 0 {
			return container.Record{}, &PhaseError{
				Phase: PhaseCreate,
				Err:   fmt.Errorf("provisioning finished but no running container found for %s", workspace),
			}
		}
		warnMultiple(a.ErrOut, workspace, ids)
		return container.Record{ID: ids[0], State: container.StateRunning}, nil
	}
}

// Attach runs the interactive session for a running container, wiring the
// current terminal through. It returns when the user leaves the shell.
func (a *Activator) Attach(rec container.Record) error {
	fmt.Fprintf(a.Out, "Attaching to %s...\n", rec.ID)
	cmd := a.Runtime.AttachCmd(rec.ID, a.Shell)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("attach: %w", err)
	}
	return nil
}
