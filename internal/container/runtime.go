package container

import (
	"fmt"
	"os/exec"
	"strings"
)

// DefaultLabelKey is the container label the devcontainer CLI stamps with
// the absolute project path on the host. It is the sole correlation key
// between a workspace and its container.
const DefaultLabelKey = "devcontainer.local_folder"

// Runtime is the narrow view of the container engine the orchestrator
// needs. Lookups that find nothing return an empty slice, not an error;
// only a failing runtime command is an error.
type Runtime interface {
	// LookupRunning returns the IDs of running containers for the workspace.
	LookupRunning(workspace string) ([]string, error)
	// LookupAll returns the IDs of all containers (running or stopped)
	// for the workspace.
	LookupAll(workspace string) ([]string, error)
	// Start starts a stopped container by ID.
	Start(id string) error
	// Provision creates and provisions a container for the workspace
	// directory. It blocks until the build completes.
	Provision(workspace string) error
	// Stop stops a running container by ID.
	Stop(id string) error
	// Inspect reports the current state of a known container. A container
	// the runtime no longer knows about is Absent.
	Inspect(id string) State
	// AttachCmd returns the interactive session command for a container,
	// running shellCmd inside a login shell.
	AttachCmd(id, shellCmd string) *exec.Cmd
}

// DockerCLI talks to Docker and the devcontainer CLI by shelling out.
type DockerCLI struct {
	LabelKey string
}

// NewDockerCLI returns a DockerCLI using labelKey to correlate containers
// with workspaces, or DefaultLabelKey if empty.
func NewDockerCLI(labelKey string) *DockerCLI {
	if labelKey == "" {
		labelKey = DefaultLabelKey
	}
	return &DockerCLI{LabelKey: labelKey}
}

func (d *DockerCLI) LookupRunning(workspace string) ([]string, error) {
	return d.ps(workspace, false)
}

func (d *DockerCLI) LookupAll(workspace string) ([]string, error) {
	return d.ps(workspace, true)
}

func (d *DockerCLI) ps(workspace string, all bool) ([]string, error) {
	args := []string{"ps", "-q"}
	if all {
		args = append(args, "-a")
	}
	args = append(args, "--filter", fmt.Sprintf("label=%s=%s", d.LabelKey, workspace))

	out, err := exec.Command("docker", args...).CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("docker ps failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return splitIDs(string(out)), nil
}

func (d *DockerCLI) Start(id string) error {
	out, err := exec.Command("docker", "start", id).CombinedOutput()
	if err != nil {
		return fmt.Errorf("docker start failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// Provision runs `devcontainer up` for the workspace and blocks until the
// build completes (may take a minute on first run).
func (d *DockerCLI) Provision(workspace string) error {
	cmd := exec.Command("devcontainer", "up", "--workspace-folder", workspace)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("devcontainer up failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

func (d *DockerCLI) Stop(id string) error {
	out, err := exec.Command("docker", "stop", id).CombinedOutput()
	if err != nil {
		return fmt.Errorf("docker stop failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

func (d *DockerCLI) Inspect(id string) State {
	out, err := exec.Command("docker", "inspect", "-f", "{{.State.Status}}", id).CombinedOutput()
	if err != nil {
		return StateAbsent
	}
	return StateFromDocker(strings.TrimSpace(string(out)))
}

func (d *DockerCLI) AttachCmd(id, shellCmd string) *exec.Cmd {
	return exec.Command("docker", "exec", "-it", id, "/bin/bash", "-l", "-c", shellCmd)
}

// splitIDs parses `docker ps -q` output into a list of container IDs.
func splitIDs(out string) []string {
	var ids []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line != "" {
			ids = append(ids, line)
		}
	}
	return ids
}
