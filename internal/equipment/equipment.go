package equipment

import (
	"github.com/chalkline-games/repquest/internal/minigame"
	"github.com/chalkline-games/repquest/internal/stats"
)

// Machine describes one piece of gym equipment.
type Machine struct {
	// ID is the unique identifier (e.g., "bench_press")
	ID string

	// Name is the display name shown to the player
	Name string

	// Stat is the stat trained by a completed workout, empty for
	// fixtures that train nothing.
	Stat stats.Name

	// BaseXP is flat XP granted on top of the session's graded reward.
	BaseXP int

	// Game selects the mini-game variant for this machine.
	Game minigame.Kind

	// Reps is the press count for rhythm machines.
	Reps int

	// Duration is the hold time in seconds for hold machines.
	Duration float64

	// KeyCount is the prompt count for reaction machines.
	KeyCount int
}

// Trains reports whether a workout on this machine raises a stat.
func (m *Machine) Trains() bool {
	return m.Stat != ""
}

// Launch returns the mini-game parameters for this machine.
func (m *Machine) Launch() minigame.Launch {
	return minigame.Launch{
		Equipment: m.Name,
		Kind:      m.Game,
		Reps:      m.Reps,
		Duration:  m.Duration,
		KeyCount:  m.KeyCount,
	}
}

// DefaultMachines returns the built-in equipment roster, used when no
// data directory overrides it.
func DefaultMachines() []*Machine {
	return []*Machine{
		{ID: "bench_press", Name: "Bench Press", Stat: stats.Strength, BaseXP: 15, Game: minigame.KindRhythm, Reps: 5},
		{ID: "squat_rack", Name: "Squat Rack", Stat: stats.Strength, BaseXP: 20, Game: minigame.KindRhythm, Reps: 6},
		{ID: "treadmill", Name: "Treadmill", Stat: stats.Endurance, BaseXP: 15, Game: minigame.KindHold, Duration: 5},
		{ID: "dumbbells", Name: "Dumbbells", Stat: stats.Strength, BaseXP: 10, Game: minigame.KindReaction, KeyCount: 8},
		{ID: "pullup_bar", Name: "Pull-up Bar", Stat: stats.Strength, BaseXP: 18, Game: minigame.KindRhythm, Reps: 6},
		{ID: "lat_pulldown", Name: "Lat Pulldown", Stat: stats.Strength, BaseXP: 15, Game: minigame.KindRhythm, Reps: 5},
		{ID: "cable_machine", Name: "Cable Machine", Stat: stats.Strength, BaseXP: 12, Game: minigame.KindReaction, KeyCount: 10},
	}
}
