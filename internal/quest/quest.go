package quest

import "github.com/chalkline-games/repquest/internal/stats"

// Kind defines how a quest's progress advances
type Kind string

const (
	KindUseEquipment Kind = "use_equipment" // Complete workouts on a specific machine
	KindVisitAll     Kind = "visit_all"     // Try a number of distinct machines
	KindLevelUp      Kind = "level_up"      // Reach a player level
	KindStatGoal     Kind = "stat_goal"     // Raise a stat to a value
	KindIRL          Kind = "irl"           // Real-world daily task, self-reported
)

// Template is the immutable definition a live quest is built from
type Template struct {
	ID              string     // Unique identifier (e.g., "bench_beginner")
	Name            string     // Display name
	Description     string     // Full description
	Kind            Kind       // How progress advances
	Goal            int        // Target count, level, or stat value
	XPReward        int        // XP granted on claim
	CurrencyReward  int        // Currency granted on claim
	TargetEquipment string     // Machine name for use_equipment quests
	TargetStat      stats.Name // Stat for stat_goal quests
}

// Quest is a live instance with progress, built from a Template
type Quest struct {
	ID              string
	Name            string
	Description     string
	Kind            Kind
	Goal            int
	Progress        int
	Completed       bool
	XPReward        int
	CurrencyReward  int
	TargetEquipment string
	TargetStat      stats.Name
}

// NewQuest creates a fresh quest from a template with zero progress
func NewQuest(t Template) *Quest {
	return &Quest{
		ID:              t.ID,
		Name:            t.Name,
		Description:     t.Description,
		Kind:            t.Kind,
		Goal:            t.Goal,
		XPReward:        t.XPReward,
		CurrencyReward:  t.CurrencyReward,
		TargetEquipment: t.TargetEquipment,
		TargetStat:      t.TargetStat,
	}
}

// IsIRL returns true for real-world daily quests
func (q *Quest) IsIRL() bool {
	return q.Kind == KindIRL
}

// AddProgress advances progress by amount, clamped to the goal.
// Returns true only on the call that completes the quest.
func (q *Quest) AddProgress(amount int) bool {
	if q.Completed {
		return false
	}
	q.Progress += amount
	if q.Progress >= q.Goal {
		q.Progress = q.Goal
		q.Completed = true
		return true
	}
	return false
}

// SetProgress sets progress to an absolute value, clamped to the goal.
// Returns true only on the call that completes the quest.
func (q *Quest) SetProgress(value int) bool {
	if q.Completed {
		return false
	}
	if value < 0 {
		value = 0
	}
	q.Progress = value
	if q.Progress >= q.Goal {
		q.Progress = q.Goal
		q.Completed = true
		return true
	}
	return false
}

// View is a read-only display snapshot for the presentation layer
type View struct {
	ID             string
	Name           string
	Description    string
	Progress       int
	Goal           int
	Completed      bool
	XPReward       int
	CurrencyReward int
	IsIRL          bool
}

// View returns a display snapshot of the quest
func (q *Quest) View() View {
	return View{
		ID:             q.ID,
		Name:           q.Name,
		Description:    q.Description,
		Progress:       q.Progress,
		Goal:           q.Goal,
		Completed:      q.Completed,
		XPReward:       q.XPReward,
		CurrencyReward: q.CurrencyReward,
		IsIRL:          q.IsIRL(),
	}
}
