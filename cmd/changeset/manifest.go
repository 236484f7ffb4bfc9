package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const noManifestMessage = "no changeset.toml found\nplease specify the input explicitly, e.g.:\n  changeset generate path/to/models"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package  packageConfig  `toml:"package"`
	Generate generateConfig `toml:"generate"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type generateConfig struct {
	// Include lists the directories (relative to the manifest) scanned for
	// .chg files.
	Include []string `toml:"include"`
	// Package is the package clause of generated files.
	Package string `toml:"package"`
	// OutDir, when set, collects generated files into one directory instead
	// of placing them next to their sources.
	OutDir string `toml:"out_dir"`
}

// findManifest walks up from startDir looking for changeset.toml.
func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "changeset.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return projectConfig{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("generate") {
		return projectConfig{}, fmt.Errorf("%s: missing [generate]", path)
	}
	if len(cfg.Generate.Include) == 0 {
		return projectConfig{}, fmt.Errorf("%s: [generate].include must list at least one directory", path)
	}
	if strings.TrimSpace(cfg.Generate.Package) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [generate].package", path)
	}
	return cfg, nil
}

// includeDirs resolves the manifest's include list against its root.
func (m *projectManifest) includeDirs() []string {
	dirs := make([]string, 0, len(m.Config.Generate.Include))
	for _, inc := range m.Config.Generate.Include {
		dirs = append(dirs, filepath.Join(m.Root, filepath.FromSlash(inc)))
	}
	return dirs
}

// outDir resolves the optional output directory against the manifest root.
func (m *projectManifest) outDir() string {
	if m.Config.Generate.OutDir == "" {
		return ""
	}
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Generate.OutDir))
}
