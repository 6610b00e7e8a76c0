package trainer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MessagesConfig represents the structure of the trainer.yaml file
type MessagesConfig struct {
	Messages       map[string][]string `yaml:"messages"`
	EquipmentLines map[string]string   `yaml:"equipment_lines"`
}

// LoadMessagesFromYAML loads coach lines from a YAML file
func LoadMessagesFromYAML(filename string) (*MessagesConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read trainer file: %w", err)
	}

	var config MessagesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse trainer YAML: %w", err)
	}

	return &config, nil
}

// LoadFromConfig merges configured lines into the set. A category listed
// in the config replaces the built-in pool wholesale; equipment lines
// merge by machine name.
func (m *MessageSet) LoadFromConfig(config *MessagesConfig) {
	for category, lines := range config.Messages {
		if len(lines) > 0 {
			m.pools[category] = lines
		}
	}
	for name, line := range config.EquipmentLines {
		if line != "" {
			m.equipment[name] = line
		}
	}
}

// LoadFromYAML loads coach lines from a YAML file into the set
func (m *MessageSet) LoadFromYAML(filename string) error {
	config, err := LoadMessagesFromYAML(filename)
	if err != nil {
		return err
	}

	m.LoadFromConfig(config)
	return nil
}
