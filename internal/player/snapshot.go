package player

import (
	"github.com/chalkline-games/repquest/internal/leveling"
	"github.com/chalkline-games/repquest/internal/stats"
)

// Snapshot is the serializable player state for save files.
type Snapshot struct {
	Name        string      `json:"name"`
	X           int         `json:"x"`
	Y           int         `json:"y"`
	Direction   string      `json:"direction"`
	Stats       stats.Block `json:"stats"`
	Level       int         `json:"level"`
	XP          int         `json:"xp"`
	Currency    int         `json:"currency"`
	MuscleLevel int         `json:"muscle_level"`
	Stamina     float64     `json:"stamina"`
	Statistics  *Statistics `json:"statistics,omitempty"`
}

// Snapshot captures the persistent player state. Buffs and cooldowns
// are transient and not saved.
func (p *Player) Snapshot() Snapshot {
	return Snapshot{
		Name:        p.Name,
		X:           p.X,
		Y:           p.Y,
		Direction:   p.Direction,
		Stats:       *p.Stats,
		Level:       p.Level,
		XP:          p.XP,
		Currency:    p.Currency,
		MuscleLevel: p.MuscleLevel,
		Stamina:     p.Stamina,
		Statistics:  p.Statistics,
	}
}

// Restore applies a snapshot. Derived values are recomputed so stale
// snapshot fields cannot drift from the stats that produce them.
func (p *Player) Restore(snap Snapshot) {
	if snap.Name != "" {
		p.Name = snap.Name
	}
	p.X = snap.X
	p.Y = snap.Y
	if snap.Direction != "" {
		p.Direction = snap.Direction
	}

	statsCopy := snap.Stats
	p.Stats = &statsCopy
	if snap.Level > 0 {
		p.Level = snap.Level
	}
	p.XP = snap.XP
	p.Currency = snap.Currency
	p.MuscleLevel = leveling.MuscleTier(p.Stats.Strength)

	if snap.Stamina > 0 {
		p.Stamina = snap.Stamina
	} else {
		p.Stamina = p.MaxStamina()
	}
	if p.Stamina > p.MaxStamina() {
		p.Stamina = p.MaxStamina()
	}

	if snap.Statistics != nil {
		p.Statistics = snap.Statistics
		if p.Statistics.WorkoutsByEquipment == nil {
			p.Statistics.WorkoutsByEquipment = make(map[string]int)
		}
	}
}
