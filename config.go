package pallet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SnapshotConfig controls where and how WriteSnapshot persists a storage.
type SnapshotConfig struct {
	// Path of the snapshot file to write.
	Path string `yaml:"path"`

	// Compression selects the zstd encoder level: "fastest", "default"
	// or "better". Empty means "default".
	Compression string `yaml:"compression"`

	// IndexDB is the optional SQLite file used by the snapindex package
	// to catalog written snapshots.
	IndexDB string `yaml:"index_db"`
}

// LoadSnapshotConfig reads a SnapshotConfig from a YAML file.
func LoadSnapshotConfig(path string) (SnapshotConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SnapshotConfig{}, err
	}
	var cfg SnapshotConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return SnapshotConfig{}, fmt.Errorf("parse snapshot config: %w", err)
	}
	if cfg.Path == "" {
		return SnapshotConfig{}, fmt.Errorf("snapshot config %s: path is required", path)
	}
	if cfg.Compression == "" {
		cfg.Compression = "default"
	}
	return cfg, nil
}
