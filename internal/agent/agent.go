package agent

import (
	"fmt"
	"strings"
)

// DefaultCommand is the downstream agent binary launched in the session.
const DefaultCommand = "claude"

// SkipPermissionsFlag disables the agent's interactive confirmation prompts.
const SkipPermissionsFlag = "--dangerously-skip-permissions"

// ShellCommand builds the command run inside the attached login shell:
// launch the agent, then replace it with an interactive shell when it
// exits so the session stays alive. Extra args are quoted so spaces and
// shell metacharacters survive the shell line.
func ShellCommand(command string, args []string) string {
	if command == "" {
		command = DefaultCommand
	}
	parts := []string{command, SkipPermissionsFlag}
	for _, arg := range args {
		parts = append(parts, fmt.Sprintf("%q", arg))
	}
	return strings.Join(parts, " ") + "; exec /bin/bash -l"
}
