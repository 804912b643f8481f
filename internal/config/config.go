package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	Dir        = ".cbox"
	ConfigFile = "config.yaml"
)

type Config struct {
	Version string  `yaml:"version"`
	Project string  `yaml:"project"`
	Agent   Agent   `yaml:"agent"`
	Runtime Runtime `yaml:"runtime,omitempty"`
	Probe   Probe   `yaml:"probe,omitempty"`
}

type Agent struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`
}

type Runtime struct {
	// LabelKey overrides the container label used to correlate containers
	// with the workspace path.
	LabelKey string `yaml:"label_key,omitempty"`
}

type Probe struct {
	URL            string `yaml:"url,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

// Timeout returns the probe timeout, or zero when unset so callers fall
// back to their default.
func (p Probe) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// Default returns the configuration used when no config file exists — the
// orchestrator must work in a bare project with just a .devcontainer.
func Default(project string) *Config {
	return &Config{
		Version: "1",
		Project: project,
		Agent:   Agent{Command: "claude"},
	}
}

// Load reads config from .cbox/config.yaml relative to projectDir.
func Load(projectDir string) (*Config, error) {
	path := filepath.Join(projectDir, Dir, ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault reads config if present, falling back to defaults when the
// file is missing. A malformed file is still an error.
func LoadOrDefault(projectDir string) (*Config, error) {
	cfg, err := Load(projectDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(filepath.Base(projectDir)), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Save writes config to .cbox/config.yaml relative to projectDir.
func Save(projectDir string, cfg *Config) error {
	dir := filepath.Join(projectDir, Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, ConfigFile), data, 0o644)
}

// Exists returns true if .cbox/config.yaml exists.
func Exists(projectDir string) bool {
	_, err := os.Stat(filepath.Join(projectDir, Dir, ConfigFile))
	return err == nil
}
