package config

import (
	"os"
	"path/filepath"
)

type Detection struct {
	Language string
	Image    string
}

// Detect inspects the project directory and returns the language and a
// suitable devcontainer base image for the generated devcontainer.json.
func Detect(projectDir string) Detection {
	checks := []struct {
		file     string
		language string
		image    string
	}{
		{"go.mod", "go", "mcr.microsoft.com/devcontainers/go:1"},
		{"package.json", "node", "mcr.microsoft.com/devcontainers/javascript-node:1"},
		{"requirements.txt", "python", "mcr.microsoft.com/devcontainers/python:1"},
		{"pyproject.toml", "python", "mcr.microsoft.com/devcontainers/python:1"},
		{"Cargo.toml", "rust", "mcr.microsoft.com/devcontainers/rust:1"},
	}

	for _, c := range checks {
		if _, err := os.Stat(filepath.Join(projectDir, c.file)); err == nil {
			return Detection{Language: c.language, Image: c.image}
		}
	}

	return Detection{
		Language: "unknown",
		Image:    "mcr.microsoft.com/devcontainers/base:ubuntu",
	}
}
