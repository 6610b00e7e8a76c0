package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MapConfig represents the structure of the gym_map.yaml file
type MapConfig struct {
	Rows []string `yaml:"rows"`
}

// LoadMapFromYAML loads a map layout from a YAML file
func LoadMapFromYAML(filename string) (*MapConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}

	var config MapConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse map YAML: %w", err)
	}

	return &config, nil
}

// LoadFromYAML parses a world from a YAML map file
func LoadFromYAML(filename string) (*World, error) {
	config, err := LoadMapFromYAML(filename)
	if err != nil {
		return nil, err
	}

	return ParseLayout(config.Rows)
}
