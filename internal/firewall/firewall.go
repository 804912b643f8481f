package firewall

import (
	"fmt"
	"io"
)

// Controller is the packet-filter surface the resetter mutates. Its true
// state lives in the host kernel; nothing here caches it.
type Controller interface {
	Flush(table string) error
	DeleteChains(table string) error
	SetPolicy(chain, action string) error
	DestroySets() error
}

// ProbeFunc reports whether outbound connectivity works.
type ProbeFunc func() error

type step struct {
	name       string
	run        func() error
	bestEffort bool
}

// Reset flushes every rule and user chain, sets default-accept policies on
// INPUT/FORWARD/OUTPUT, then probes outbound connectivity. The raw table
// and named address sets are best-effort (the kernel may not have them);
// everything else is fatal. The probe is advisory only: its failure is a
// warning, never an error.
func Reset(ctrl Controller, probe ProbeFunc, out, errOut io.Writer) error {
	steps := []step{
		{"flush filter table", func() error { return ctrl.Flush("filter") }, false},
		{"delete filter chains", func() error { return ctrl.DeleteChains("filter") }, false},
		{"flush nat table", func() error { return ctrl.Flush("nat") }, false},
		{"delete nat chains", func() error { return ctrl.DeleteChains("nat") }, false},
		{"flush mangle table", func() error { return ctrl.Flush("mangle") }, false},
		{"delete mangle chains", func() error { return ctrl.DeleteChains("mangle") }, false},
		{"flush raw table", func() error { return ctrl.Flush("raw") }, true},
		{"delete raw chains", func() error { return ctrl.DeleteChains("raw") }, true},
		{"destroy address sets", func() error { return ctrl.DestroySets() }, true},
	}

	for _, s := range steps {
		if err := s.run(); err != nil {
			if s.bestEffort {
				fmt.Fprintf(errOut, "Warning: %s: %v\n", s.name, err)
				continue
			}
			return fmt.Errorf("policy-reset: %s: %w", s.name, err)
		}
	}

	for _, chain := range []string{"INPUT", "FORWARD", "OUTPUT"} {
		if err := ctrl.SetPolicy(chain, "ACCEPT"); err != nil {
			return fmt.Errorf("policy-reset: set %s policy: %w", chain, err)
		}
	}

	fmt.Fprintln(out, "Firewall rules cleared, default policies set to ACCEPT.")

	if probe != nil {
		if err := probe(); err != nil {
			fmt.Fprintf(errOut, "Warning: connectivity check failed: %v\n", err)
		} else {
			fmt.Fprintln(out, "Outbound connectivity verified.")
		}
	}
	return nil
}
