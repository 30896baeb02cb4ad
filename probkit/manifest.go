package probkit

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFilename is the name of the suite manifest written next to the
// generated problem files.
const ManifestFilename = "manifest.yaml"

// Manifest describes a generated problem suite. Downstream benchmark
// harnesses read it to discover problem files without globbing.
type Manifest struct {
	Problems []ManifestEntry `yaml:"problems"`
}

// ManifestEntry describes a single generated problem.
type ManifestEntry struct {
	Name  string `yaml:"name"`
	Tool  string `yaml:"tool"`
	Size  int    `yaml:"size"`
	File  string `yaml:"file"`
	Lines int    `yaml:"lines"`
}

// WriteManifest writes the manifest to dir/manifest.yaml.
func WriteManifest(dir string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestFilename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LoadManifest loads the manifest from dir/manifest.yaml.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}
