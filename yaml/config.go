// Package yaml loads w2n configuration from YAML files.
package yaml

import (
	"fmt"
	"os"

	"github.com/nmcintosh/w2n"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors w2n.Config with YAML field names.
type fileConfig struct {
	Server     string            `yaml:"server"`
	DatabaseID string            `yaml:"database_id"`
	TimeoutSec int               `yaml:"timeout_sec"`
	Properties map[string]string `yaml:"properties"`
	DBPath     string            `yaml:"db_path"`
}

// LoadConfig reads configuration from the YAML file at path. A missing
// file is not an error: it returns a zero config so flag and built-in
// defaults apply. A file that exists but cannot be parsed is an error.
func LoadConfig(path string) (*w2n.Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &w2n.Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, w2n.Errorf(w2n.EINVALID, "failed to parse config %q: %v", path, err)
	}

	cfg := &w2n.Config{
		Server:     fc.Server,
		DatabaseID: fc.DatabaseID,
		TimeoutSec: fc.TimeoutSec,
		Properties: fc.Properties,
		DBPath:     fc.DBPath,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
