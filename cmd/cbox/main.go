package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/DuaneNielsen/claude-code/internal/activator"
	"github.com/DuaneNielsen/claude-code/internal/agent"
	"github.com/DuaneNielsen/claude-code/internal/config"
	"github.com/DuaneNielsen/claude-code/internal/container"
	"github.com/DuaneNielsen/claude-code/internal/firewall"
	"github.com/DuaneNielsen/claude-code/internal/tui"
)

func main() {
	root := &cobra.Command{
		Use:   "cbox",
		Short: "cbox — run Claude Code in a per-project devcontainer",
		Long: `cbox brings the devcontainer for the current project to a running
state (starting or provisioning it as needed) and attaches an
interactive shell with the agent launched inside it.`,
		RunE:         runUp,
		SilenceUsage: true,
	}

	root.AddCommand(initCmd(), statusCmd(), firewallResetCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// workspaceDir resolves the workspace identity once; everything below main
// receives it explicitly.
func workspaceDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Abs(wd)
}

func runUp(cmd *cobra.Command, args []string) error {
	workspace, err := workspaceDir()
	if err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(workspace)
	if err != nil {
		return err
	}

	rt := container.NewDockerCLI(cfg.Runtime.LabelKey)
	act := activator.New(rt, agent.ShellCommand(cfg.Agent.Command, cfg.Agent.Args))

	rec, err := act.Up(workspace)
	if err != nil {
		return err
	}
	return act.Attach(rec)
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Interactive dashboard for the workspace container",
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace, err := workspaceDir()
			if err != nil {
				return err
			}
			cfg, err := config.LoadOrDefault(workspace)
			if err != nil {
				return err
			}
			rt := container.NewDockerCLI(cfg.Runtime.LabelKey)
			return tui.Run(rt, cfg, workspace)
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize cbox in the current project",
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace, err := workspaceDir()
			if err != nil {
				return err
			}

			if config.Exists(workspace) {
				fmt.Println("cbox already initialized in this project.")
				return nil
			}

			detection := config.Detect(workspace)
			cfg := config.Default(filepath.Base(workspace))

			if err := config.Save(workspace, cfg); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}

			if err := writeDevcontainer(workspace, cfg.Project, detection.Image); err != nil {
				return fmt.Errorf("writing devcontainer.json: %w", err)
			}

			if err := updateGitignore(workspace); err != nil {
				return fmt.Errorf("updating .gitignore: %w", err)
			}

			fmt.Printf("Initialized cbox for %s (%s project)\n", cfg.Project, detection.Language)
			fmt.Printf("  Config: %s/%s\n", config.Dir, config.ConfigFile)
			fmt.Println("  Devcontainer: .devcontainer/devcontainer.json")
			fmt.Println("\nRun `cbox` to provision and attach.")
			return nil
		},
	}
}

func firewallResetCmd() *cobra.Command {
	var probeURL string
	var probeTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "firewall-reset",
		Short: "Flush all firewall rules and set default-accept policies (requires root)",
		Long: `Flushes every rule and user chain in the filter, nat, and mangle
tables (raw table and ipset best-effort), sets default ACCEPT
policies, then verifies outbound connectivity. The connectivity
check is advisory only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace, err := workspaceDir()
			if err != nil {
				return err
			}

			cfg, err := config.LoadOrDefault(workspace)
			if err != nil {
				return err
			}

			url, timeout := resolveProbe(cmd.Flags(), cfg, probeURL, probeTimeout)
			probe := func() error { return firewall.Probe(url, timeout) }
			return firewall.Reset(firewall.NewIPTables(), probe, os.Stdout, os.Stderr)
		},
	}

	cmd.Flags().StringVar(&probeURL, "probe-url", firewall.DefaultProbeURL, "endpoint for the connectivity check")
	cmd.Flags().DurationVar(&probeTimeout, "probe-timeout", firewall.DefaultProbeTimeout, "bound on the connectivity check")
	return cmd
}

// resolveProbe applies config probe settings unless the corresponding flag
// was passed explicitly.
func resolveProbe(flags *pflag.FlagSet, cfg *config.Config, url string, timeout time.Duration) (string, time.Duration) {
	if !flags.Changed("probe-url") && cfg.Probe.URL != "" {
		url = cfg.Probe.URL
	}
	if !flags.Changed("probe-timeout") && cfg.Probe.Timeout() > 0 {
		timeout = cfg.Probe.Timeout()
	}
	return url, timeout
}

func writeDevcontainer(workspace, project, image string) error {
	dir := filepath.Join(workspace, ".devcontainer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(dir, "devcontainer.json")
	if _, err := os.Stat(path); err == nil {
		// Keep an existing devcontainer config untouched
		return nil
	}

	content := fmt.Sprintf(`{
  "name": %q,
  "image": %q,
  "postCreateCommand": "npm install -g @anthropic-ai/claude-code"
}
`, project, image)

	return os.WriteFile(path, []byte(content), 0o644)
}

func updateGitignore(workspace string) error {
	gitignorePath := filepath.Join(workspace, ".gitignore")

	entries := []string{
		".cbox/",
	}

	existing, _ := os.ReadFile(gitignorePath)
	content := string(existing)

	var toAdd []string
	for _, entry := range entries {
		if !strings.Contains(content, entry) {
			toAdd = append(toAdd, entry)
		}
	}

	if len(toAdd) == 0 {
		return nil
	}

	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	content += "\n# cbox\n"
	for _, entry := range toAdd {
		content += entry + "\n"
	}

	return os.WriteFile(gitignorePath, []byte(content), 0o644)
}
