package equipment

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/chalkline-games/repquest/internal/minigame"
	"github.com/chalkline-games/repquest/internal/stats"
)

// MachineDefinition represents an equipment definition from the YAML file
type MachineDefinition struct {
	Name string `yaml:"name"`
	Stat string `yaml:"stat,omitempty"`
	XP   int    `yaml:"xp,omitempty"`
	Game string `yaml:"game"`
	// Game tuning fields (optional, variant defaults apply when zero)
	Reps     int     `yaml:"reps,omitempty"`
	Duration float64 `yaml:"duration,omitempty"`
	Keys     int     `yaml:"keys,omitempty"`
}

// MachinesConfig represents the structure of the equipment.yaml file
type MachinesConfig struct {
	Equipment map[string]MachineDefinition `yaml:"equipment"`
}

// LoadMachinesFromYAML loads equipment definitions from a YAML file
func LoadMachinesFromYAML(filename string) (*MachinesConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read equipment file: %w", err)
	}

	var config MachinesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse equipment YAML: %w", err)
	}

	return &config, nil
}

// StringToGameKind converts a string to a minigame Kind
func StringToGameKind(gameStr string) minigame.Kind {
	switch gameStr {
	case "rhythm":
		return minigame.KindRhythm
	case "hold":
		return minigame.KindHold
	case "reaction":
		return minigame.KindReaction
	default:
		return minigame.KindRhythm
	}
}

// CreateMachineFromDefinition creates a Machine from a MachineDefinition
// The id parameter is the YAML key for this machine (e.g., "bench_press")
func CreateMachineFromDefinition(id string, def MachineDefinition) *Machine {
	machine := &Machine{
		ID:       id,
		Name:     def.Name,
		BaseXP:   def.XP,
		Game:     StringToGameKind(def.Game),
		Reps:     def.Reps,
		Duration: def.Duration,
		KeyCount: def.Keys,
	}

	if def.Stat != "" {
		if stat, ok := stats.ParseName(def.Stat); ok {
			machine.Stat = stat
		}
	}

	return machine
}

// LoadFromConfig registers every machine in the config, sorted by ID so
// registration order is stable.
func (r *Registry) LoadFromConfig(config *MachinesConfig) {
	ids := make([]string, 0, len(config.Equipment))
	for id := range config.Equipment {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		r.Register(CreateMachineFromDefinition(id, config.Equipment[id]))
	}
}

// LoadFromYAML loads equipment from a YAML file into the registry.
// Definitions with an ID matching a registered machine replace it.
func (r *Registry) LoadFromYAML(filename string) error {
	config, err := LoadMachinesFromYAML(filename)
	if err != nil {
		return err
	}

	r.LoadFromConfig(config)
	return nil
}
