package player

import "github.com/chalkline-games/repquest/internal/stats"

// Movement and stamina tuning
const (
	baseTilesPerSecond = 6.0
	speedPerStatPoint  = 0.3
	sprintMultiplier   = 1.8
	swimMultiplier     = 0.6

	baseStamina         = 100.0
	staminaPerEndurance = 10.0
	staminaPerLevel     = 5.0
	staminaDrainRate    = 25.0 // per second while sprinting
	staminaRegenRate    = 15.0 // per second at rest
	staminaRegenDelay   = 0.5
	swimStaminaDrain    = 10.0 // per second while swimming

	// Swimming grants endurance XP on a slow tick.
	swimXPInterval = 2.0
	swimXPPerTick  = 2
	swimEndPerTick = 0.1
)

// DirectionDelta returns the tile offset for a movement direction.
func DirectionDelta(direction string) (dx, dy int) {
	switch direction {
	case "up":
		return 0, -1
	case "down":
		return 0, 1
	case "left":
		return -1, 0
	case "right":
		return 1, 0
	}
	return 0, 0
}

// TilesPerSecond returns current movement speed with stat, buff, sprint
// and swim modifiers applied.
func (p *Player) TilesPerSecond() float64 {
	speed := baseTilesPerSecond + speedPerStatPoint*float64(p.Stats.Speed)
	if buff, ok := p.buffs[EffectSpeedBoost]; ok {
		speed *= buff.Value
	}
	if p.Sprinting {
		speed *= sprintMultiplier
	}
	if p.Swimming {
		speed *= swimMultiplier
	}
	return speed
}

// TryMove attempts to step one tile in the given direction. canOccupy
// reports whether the destination tile is walkable. The player always
// turns to face the direction, even when the step is blocked.
func (p *Player) TryMove(direction string, canOccupy func(x, y int) bool) bool {
	p.Direction = direction

	if p.moveCooldown > 0 {
		return false
	}

	dx, dy := DirectionDelta(direction)
	if dx == 0 && dy == 0 {
		return false
	}

	nx, ny := p.X+dx, p.Y+dy
	if canOccupy != nil && !canOccupy(nx, ny) {
		return false
	}

	p.X, p.Y = nx, ny
	p.idleTime = 0

	// One tile's travel time becomes the cooldown until the next step.
	cost := 1.0 / p.TilesPerSecond()
	p.moveCooldown = cost

	if p.Swimming {
		p.drainSwim(cost)
	} else if p.Sprinting {
		p.drainSprint(cost)
	}

	p.Statistics.RecordMove()
	return true
}

// FacingTile returns the tile directly in front of the player.
func (p *Player) FacingTile() (x, y int) {
	dx, dy := DirectionDelta(p.Direction)
	return p.X + dx, p.Y + dy
}

// SetSprinting turns sprinting on or off. Sprinting needs stamina and
// is unavailable in water.
func (p *Player) SetSprinting(want bool) {
	p.Sprinting = want && p.Stamina > 0 && !p.Swimming
}

// SetSwimming marks the player as in or out of water. Entering water
// cancels a sprint.
func (p *Player) SetSwimming(inWater bool) {
	p.Swimming = inWater
	if inWater {
		p.Sprinting = false
	}
}

// MaxStamina grows with endurance and level.
func (p *Player) MaxStamina() float64 {
	return baseStamina +
		float64(p.Stats.Endurance)*staminaPerEndurance +
		float64(p.Level)*staminaPerLevel
}

func (p *Player) drainSprint(cost float64) {
	p.Stamina -= staminaDrainRate * cost
	p.staminaRegenTimer = staminaRegenDelay
	if p.Stamina <= 0 {
		p.Stamina = 0
		p.Sprinting = false
	}
}

func (p *Player) drainSwim(cost float64) {
	p.Stamina -= swimStaminaDrain * cost
	if p.Stamina < 0 {
		p.Stamina = 0
	}

	p.swimXPTimer += cost
	for p.swimXPTimer >= swimXPInterval {
		p.swimXPTimer -= swimXPInterval
		p.AddXP(swimXPPerTick)
		p.swimEndurance += swimEndPerTick
	}
	for p.swimEndurance >= 1.0 {
		p.swimEndurance -= 1.0
		p.AddStat(stats.Endurance, 1)
	}
}

func (p *Player) updateStamina(dt float64) {
	max := p.MaxStamina()
	if p.Stamina > max {
		p.Stamina = max
	}

	if p.staminaRegenTimer > 0 {
		p.staminaRegenTimer -= dt
		return
	}

	// No regeneration mid-step while exerting.
	if p.moveCooldown > 0 && (p.Sprinting || p.Swimming) {
		return
	}

	p.Stamina += staminaRegenRate * dt
	if p.Stamina > max {
		p.Stamina = max
	}
}
