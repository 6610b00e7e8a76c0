package player

import (
	"github.com/chalkline-games/repquest/internal/leveling"
	"github.com/chalkline-games/repquest/internal/stats"
)

// Buff effect names. Values multiply XP or speed while the buff lasts.
const (
	EffectStrengthXPBoost = "strength_xp_boost"
	EffectSpeedBoost      = "speed_boost"
	EffectAllXPBoost      = "all_xp_boost"
)

// Buff is a temporary effect on the player.
type Buff struct {
	Value     float64
	Remaining float64 // seconds
}

// Player is the character being trained. All simulation methods are
// called from the game loop goroutine.
type Player struct {
	Name      string
	X, Y      int // tile position
	Direction string

	Stats       *stats.Block
	Level       int
	XP          int
	Currency    int
	MuscleLevel int

	Stamina   float64
	Sprinting bool
	Swimming  bool

	Statistics *Statistics

	buffs             map[string]*Buff
	moveCooldown      float64
	interactCooldown  float64
	staminaRegenTimer float64
	swimXPTimer       float64
	swimEndurance     float64
	idleTime          float64
}

// New creates a level-1 player at the given tile.
func New(name string, x, y int, startingCurrency int) *Player {
	p := &Player{
		Name:        name,
		X:           x,
		Y:           y,
		Direction:   "down",
		Stats:       stats.NewDefaultBlock(),
		Level:       1,
		Currency:    startingCurrency,
		MuscleLevel: 1,
		Statistics:  NewStatistics(),
		buffs:       make(map[string]*Buff),
	}
	p.Stamina = p.MaxStamina()
	return p
}

// Update advances timers: cooldowns, buffs, stamina regeneration.
func (p *Player) Update(dt float64) {
	if p.interactCooldown > 0 {
		p.interactCooldown -= dt
	}
	if p.moveCooldown > 0 {
		p.moveCooldown -= dt
	}
	p.idleTime += dt

	p.updateBuffs(dt)
	p.updateStamina(dt)
}

// AddXP adds experience with buff multipliers applied and levels the
// player up as thresholds pass. Returns true if at least one level was
// gained.
func (p *Player) AddXP(amount int) bool {
	if buff, ok := p.buffs[EffectStrengthXPBoost]; ok {
		amount = int(float64(amount) * buff.Value)
	}
	if buff, ok := p.buffs[EffectAllXPBoost]; ok {
		amount = int(float64(amount) * buff.Value)
	}

	p.XP += amount
	p.Statistics.RecordXPEarned(amount)

	leveledUp := false
	for p.Level < leveling.MaxPlayerLevel && p.XP >= leveling.XPToNextLevel(p.Level) {
		p.XP -= leveling.XPToNextLevel(p.Level)
		p.Level++
		leveledUp = true
	}

	if leveledUp {
		p.updateMuscleLevel()
	}
	return leveledUp
}

// XPToNext returns the XP still needed for the next level.
func (p *Player) XPToNext() int {
	return leveling.XPToNextLevel(p.Level)
}

// AddStat raises a stat. Strength changes re-derive the muscle tier.
func (p *Player) AddStat(name stats.Name, amount int) {
	p.Stats.Add(name, amount)
	if name == stats.Strength {
		p.updateMuscleLevel()
	}
}

func (p *Player) updateMuscleLevel() {
	p.MuscleLevel = leveling.MuscleTier(p.Stats.Strength)
}

// AddCurrency adds money
func (p *Player) AddCurrency(amount int) {
	p.Currency += amount
	if amount > 0 {
		p.Statistics.RecordCurrencyEarned(amount)
	}
}

// SpendCurrency deducts money, returns true if successful
func (p *Player) SpendCurrency(amount int) bool {
	if p.Currency >= amount {
		p.Currency -= amount
		return true
	}
	return false
}

// CanAfford reports whether the player has at least amount money
func (p *Player) CanAfford(amount int) bool {
	return p.Currency >= amount
}

// ApplyBuff starts or refreshes a timed effect.
func (p *Player) ApplyBuff(effect string, value float64, duration float64) {
	p.buffs[effect] = &Buff{Value: value, Remaining: duration}
}

// HasBuff reports whether the effect is currently active.
func (p *Player) HasBuff(effect string) bool {
	_, ok := p.buffs[effect]
	return ok
}

// BuffView is a read-only look at an active buff for display.
type BuffView struct {
	Effect    string
	Value     float64
	Remaining float64
}

// ActiveBuffs returns active buffs in display order.
func (p *Player) ActiveBuffs() []BuffView {
	var views []BuffView
	for _, effect := range []string{EffectStrengthXPBoost, EffectSpeedBoost, EffectAllXPBoost} {
		if buff, ok := p.buffs[effect]; ok {
			views = append(views, BuffView{Effect: effect, Value: buff.Value, Remaining: buff.Remaining})
		}
	}
	return views
}

func (p *Player) updateBuffs(dt float64) {
	for effect, buff := range p.buffs {
		buff.Remaining -= dt
		if buff.Remaining <= 0 {
			delete(p.buffs, effect)
		}
	}
}

// CanInteract reports whether the interact cooldown has elapsed.
func (p *Player) CanInteract() bool {
	return p.interactCooldown <= 0
}

// SetInteractCooldown blocks interaction for the given seconds.
func (p *Player) SetInteractCooldown(seconds float64) {
	p.interactCooldown = seconds
}

// IdleTime returns seconds since the player last moved.
func (p *Player) IdleTime() float64 {
	return p.idleTime
}
