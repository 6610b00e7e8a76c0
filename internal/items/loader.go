package items

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ItemDefinition represents an item definition from the YAML file
type ItemDefinition struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       int     `yaml:"price"`
	Effect      string  `yaml:"effect"`
	Magnitude   float64 `yaml:"value"`
	Duration    float64 `yaml:"duration,omitempty"`
}

// ItemsConfig represents the structure of the items.yaml file
type ItemsConfig struct {
	Items map[string]ItemDefinition `yaml:"items"`
}

// LoadItemsFromYAML loads item definitions from a YAML file
func LoadItemsFromYAML(filename string) (*ItemsConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}

	var config ItemsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse items YAML: %w", err)
	}

	return &config, nil
}

// CreateItemFromDefinition creates an Item from an ItemDefinition
// The id parameter is the YAML key for this item (e.g., "protein_shake")
func CreateItemFromDefinition(id string, def ItemDefinition) *Item {
	return &Item{
		ID:          id,
		Name:        def.Name,
		Description: def.Description,
		Price:       def.Price,
		Effect:      def.Effect,
		Magnitude:   def.Magnitude,
		Duration:    def.Duration,
	}
}

// LoadFromConfig registers every item in the config, sorted by ID so
// registration order is stable.
func (c *Catalog) LoadFromConfig(config *ItemsConfig) {
	ids := make([]string, 0, len(config.Items))
	for id := range config.Items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		c.Register(CreateItemFromDefinition(id, config.Items[id]))
	}
}

// LoadFromYAML loads items from a YAML file into the catalog.
// Definitions with an ID matching a registered item replace it.
func (c *Catalog) LoadFromYAML(filename string) error {
	config, err := LoadItemsFromYAML(filename)
	if err != nil {
		return err
	}

	c.LoadFromConfig(config)
	return nil
}
