package agent

import (
	"strings"
	"testing"
)

func TestShellCommand(t *testing.T) {
	cmd := ShellCommand("", nil)
	if !strings.HasPrefix(cmd, "claude "+SkipPermissionsFlag) {
		t.Errorf("cmd = %q, want default agent with skip-permissions flag", cmd)
	}
	if !strings.HasSuffix(cmd, "; exec /bin/bash -l") {
		t.Errorf("cmd = %q, want trailing interactive shell", cmd)
	}
}

func TestShellCommandCustomAgent(t *testing.T) {
	cmd := ShellCommand("myagent", []string{"--model", "fast"})
	want := "myagent " + SkipPermissionsFlag + ` "--model" "fast"; exec /bin/bash -l`
	if cmd != want {
		t.Errorf("cmd = %q, want %q", cmd, want)
	}
}

func TestShellCommandQuotesUnsafeArgs(t *testing.T) {
	cmd := ShellCommand("", []string{"fix the bug; rm -rf /"})
	want := "claude " + SkipPermissionsFlag + ` "fix the bug; rm -rf /"; exec /bin/bash -l`
	if cmd != want {
		t.Errorf("cmd = %q, want %q", cmd, want)
	}
}
