package quest

import "github.com/chalkline-games/repquest/internal/stats"

// TemplateSet holds the quest definitions a game runs with. Progression
// templates unlock in a fixed chain; IRL templates form the daily pool.
type TemplateSet struct {
	progression      map[string]Template
	progressionOrder []string
	irl              map[string]Template
	irlOrder         []string
	initial          []string
	unlockChain      []string
}

// DefaultTemplates returns the built-in quest definitions.
func DefaultTemplates() *TemplateSet {
	s := &TemplateSet{
		progression: make(map[string]Template),
		irl:         make(map[string]Template),
		initial:     []string{"bench_beginner", "gym_tour"},
		unlockChain: []string{"squat_starter", "cardio_king", "dumbbell_dedication", "level_5", "strength_10"},
	}

	s.addProgression(Template{
		ID:              "bench_beginner",
		Name:            "Bench Press Beginner",
		Description:     "Use the bench press 3 times",
		Kind:            KindUseEquipment,
		Goal:            3,
		XPReward:        50,
		CurrencyReward:  25,
		TargetEquipment: "Bench Press",
	})
	s.addProgression(Template{
		ID:              "squat_starter",
		Name:            "Squat Starter",
		Description:     "Use the squat rack 3 times",
		Kind:            KindUseEquipment,
		Goal:            3,
		XPReward:        50,
		CurrencyReward:  25,
		TargetEquipment: "Squat Rack",
	})
	s.addProgression(Template{
		ID:              "cardio_king",
		Name:            "Cardio King",
		Description:     "Use the treadmill 5 times",
		Kind:            KindUseEquipment,
		Goal:            5,
		XPReward:        75,
		CurrencyReward:  30,
		TargetEquipment: "Treadmill",
	})
	s.addProgression(Template{
		ID:              "dumbbell_dedication",
		Name:            "Dumbbell Dedication",
		Description:     "Use dumbbells 5 times",
		Kind:            KindUseEquipment,
		Goal:            5,
		XPReward:        60,
		CurrencyReward:  25,
		TargetEquipment: "Dumbbells",
	})
	s.addProgression(Template{
		ID:             "gym_tour",
		Name:           "Gym Tour",
		Description:    "Try 4 different machines",
		Kind:           KindVisitAll,
		Goal:           4,
		XPReward:       100,
		CurrencyReward: 50,
	})
	s.addProgression(Template{
		ID:             "level_5",
		Name:           "Rising Star",
		Description:    "Reach level 5",
		Kind:           KindLevelUp,
		Goal:           5,
		XPReward:       0,
		CurrencyReward: 100,
	})
	s.addProgression(Template{
		ID:             "strength_10",
		Name:           "Getting Strong",
		Description:    "Reach 10 Strength",
		Kind:           KindStatGoal,
		Goal:           10,
		XPReward:       150,
		CurrencyReward: 75,
		TargetStat:     stats.Strength,
	})

	s.addIRL(Template{
		ID:             "pushups_50",
		Name:           "50 Push-ups",
		Description:    "Do 50 push-ups today (real life)",
		Kind:           KindIRL,
		Goal:           1,
		XPReward:       100,
		CurrencyReward: 50,
	})
	s.addIRL(Template{
		ID:             "run_2k",
		Name:           "2km Run",
		Description:    "Run at least 2km today",
		Kind:           KindIRL,
		Goal:           1,
		XPReward:       150,
		CurrencyReward: 75,
	})
	s.addIRL(Template{
		ID:             "gym_visit",
		Name:           "Gym Visit",
		Description:    "Go to the gym today",
		Kind:           KindIRL,
		Goal:           1,
		XPReward:       200,
		CurrencyReward: 100,
	})
	s.addIRL(Template{
		ID:             "no_junk",
		Name:           "Clean Eating",
		Description:    "No junk food today",
		Kind:           KindIRL,
		Goal:           1,
		XPReward:       75,
		CurrencyReward: 40,
	})
	s.addIRL(Template{
		ID:             "water_8",
		Name:           "Hydration Hero",
		Description:    "Drink 8 glasses of water today",
		Kind:           KindIRL,
		Goal:           1,
		XPReward:       50,
		CurrencyReward: 25,
	})
	s.addIRL(Template{
		ID:             "early_wake",
		Name:           "Early Bird",
		Description:    "Wake up before 7 AM",
		Kind:           KindIRL,
		Goal:           1,
		XPReward:       75,
		CurrencyReward: 35,
	})

	return s
}

// addProgression adds or replaces a progression template
func (s *TemplateSet) addProgression(t Template) {
	if _, exists := s.progression[t.ID]; !exists {
		s.progressionOrder = append(s.progressionOrder, t.ID)
	}
	s.progression[t.ID] = t
}

// addIRL adds or replaces an IRL template
func (s *TemplateSet) addIRL(t Template) {
	if _, exists := s.irl[t.ID]; !exists {
		s.irlOrder = append(s.irlOrder, t.ID)
	}
	s.irl[t.ID] = t
}

// Progression looks up a progression template by id
func (s *TemplateSet) Progression(id string) (Template, bool) {
	t, ok := s.progression[id]
	return t, ok
}

// IRL looks up an IRL template by id
func (s *TemplateSet) IRL(id string) (Template, bool) {
	t, ok := s.irl[id]
	return t, ok
}

// ProgressionIDs returns progression template ids in definition order
func (s *TemplateSet) ProgressionIDs() []string {
	ids := make([]string, len(s.progressionOrder))
	copy(ids, s.progressionOrder)
	return ids
}

// IRLIDs returns IRL template ids in definition order
func (s *TemplateSet) IRLIDs() []string {
	ids := make([]string, len(s.irlOrder))
	copy(ids, s.irlOrder)
	return ids
}

// InitialQuests returns the ids seeded into a fresh game
func (s *TemplateSet) InitialQuests() []string {
	ids := make([]string, len(s.initial))
	copy(ids, s.initial)
	return ids
}

// UnlockChain returns the fixed unlock order keyed by completion count
func (s *TemplateSet) UnlockChain() []string {
	ids := make([]string, len(s.unlockChain))
	copy(ids, s.unlockChain)
	return ids
}
