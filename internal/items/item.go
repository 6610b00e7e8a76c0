package items

import "github.com/chalkline-games/repquest/internal/player"

// EffectInstantXP grants XP immediately instead of starting a buff
const EffectInstantXP = "instant_xp"

// Item represents a supplement sold in the shop
type Item struct {
	ID          string // Unique identifier from YAML key (e.g., "protein_shake")
	Name        string
	Description string
	Price       int
	Effect      string  // Buff effect name or instant_xp
	Magnitude   float64 // Multiplier for buffs, XP amount for instant_xp
	Duration    float64 // Buff length in seconds (unused for instant_xp)
}

// IsBuff returns true if using the item starts a timed effect
func (i *Item) IsBuff() bool {
	switch i.Effect {
	case player.EffectStrengthXPBoost, player.EffectSpeedBoost, player.EffectAllXPBoost:
		return true
	}
	return false
}

// IsInstant returns true if the item's effect applies immediately
func (i *Item) IsInstant() bool {
	return i.Effect == EffectInstantXP
}

// IsUsable returns true if the item does anything when consumed
func (i *Item) IsUsable() bool {
	return i.IsBuff() || i.IsInstant()
}

// DefaultItems returns the built-in shop catalog
func DefaultItems() []*Item {
	return []*Item{
		{
			ID:          "protein_shake",
			Name:        "Protein Shake",
			Description: "+50% Strength XP for 3 min",
			Price:       50,
			Effect:      player.EffectStrengthXPBoost,
			Magnitude:   1.5,
			Duration:    180,
		},
		{
			ID:          "pre_workout",
			Name:        "Pre-Workout",
			Description: "+30% Speed for 2 min",
			Price:       75,
			Effect:      player.EffectSpeedBoost,
			Magnitude:   1.3,
			Duration:    120,
		},
		{
			ID:          "creatine",
			Name:        "Creatine",
			Description: "+25% All XP for 5 min",
			Price:       100,
			Effect:      player.EffectAllXPBoost,
			Magnitude:   1.25,
			Duration:    300,
		},
		{
			ID:          "energy_drink",
			Name:        "Energy Drink",
			Description: "Instant +25 XP",
			Price:       30,
			Effect:      EffectInstantXP,
			Magnitude:   25,
		},
	}
}
