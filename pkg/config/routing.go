package config

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/civicquant/pipeline/pkg/routing"
)

// LoadRoutingConfig returns the routing table: built-in defaults with the
// optional YAML override file merged on top. An empty path means defaults
// only; a missing file at a configured path is an error.
func LoadRoutingConfig(path string) (routing.Config, error) {
	cfg := routing.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return routing.Config{}, fmt.Errorf("failed to read routing config %s: %w", path, err)
	}

	var override routing.Config
	if err := yaml.Unmarshal(ExpandEnv(data), &override); err != nil {
		return routing.Config{}, fmt.Errorf("invalid routing config %s: %w", path, err)
	}

	if err := mergo.Merge(&cfg, override, mergo.WithOverride); err != nil {
		return routing.Config{}, fmt.Errorf("failed to merge routing config: %w", err)
	}
	return cfg, nil
}
