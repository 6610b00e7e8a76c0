package quest

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/chalkline-games/repquest/internal/stats"
)

// QuestDefinition represents a quest definition from the YAML file
type QuestDefinition struct {
	Name            string `yaml:"name"`
	Description     string `yaml:"description"`
	Type            string `yaml:"type"`
	TargetEquipment string `yaml:"target_equipment,omitempty"`
	TargetStat      string `yaml:"target_stat,omitempty"`
	Goal            int    `yaml:"goal"`
	XPReward        int    `yaml:"xp_reward"`
	CurrencyReward  int    `yaml:"currency_reward"`
}

// QuestsConfig represents the structure of the quests.yaml file
type QuestsConfig struct {
	Quests    map[string]QuestDefinition `yaml:"quests"`
	IRLQuests map[string]QuestDefinition `yaml:"irl_quests"`
}

// LoadQuestsFromYAML loads quest definitions from a YAML file
func LoadQuestsFromYAML(filename string) (*QuestsConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read quests file: %w", err)
	}

	var config QuestsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse quests YAML: %w", err)
	}

	return &config, nil
}

// StringToKind converts a string to a quest Kind
func StringToKind(kindStr string) Kind {
	switch kindStr {
	case "use_equipment":
		return KindUseEquipment
	case "visit_all":
		return KindVisitAll
	case "level_up":
		return KindLevelUp
	case "stat_goal":
		return KindStatGoal
	case "irl":
		return KindIRL
	default:
		return KindUseEquipment
	}
}

// CreateTemplateFromDefinition creates a Template from a QuestDefinition
// The id parameter is the YAML key for this quest (e.g., "bench_beginner")
func CreateTemplateFromDefinition(id string, def QuestDefinition) Template {
	t := Template{
		ID:              id,
		Name:            def.Name,
		Description:     def.Description,
		Kind:            StringToKind(def.Type),
		Goal:            def.Goal,
		XPReward:        def.XPReward,
		CurrencyReward:  def.CurrencyReward,
		TargetEquipment: def.TargetEquipment,
	}

	if def.TargetStat != "" {
		if stat, ok := stats.ParseName(def.TargetStat); ok {
			t.TargetStat = stat
		}
	}

	return t
}

// LoadFromConfig merges every quest in the config into the set, sorted by
// ID so new ids land in a stable order. Matching ids are replaced.
func (s *TemplateSet) LoadFromConfig(config *QuestsConfig) {
	ids := make([]string, 0, len(config.Quests))
	for id := range config.Quests {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		s.addProgression(CreateTemplateFromDefinition(id, config.Quests[id]))
	}

	irlIDs := make([]string, 0, len(config.IRLQuests))
	for id := range config.IRLQuests {
		irlIDs = append(irlIDs, id)
	}
	sort.Strings(irlIDs)
	for _, id := range irlIDs {
		def := config.IRLQuests[id]
		t := CreateTemplateFromDefinition(id, def)
		t.Kind = KindIRL
		s.addIRL(t)
	}
}

// LoadFromYAML loads quest definitions from a YAML file into the set
func (s *TemplateSet) LoadFromYAML(filename string) error {
	config, err := LoadQuestsFromYAML(filename)
	if err != nil {
		return err
	}

	s.LoadFromConfig(config)
	return nil
}
