// Package npc drives the ambient gym-goers. They wander the map, rest,
// and take turns on machines, but never touch quests or player state.
package npc

import (
	"math/rand"

	"github.com/chalkline-games/repquest/internal/player"
	"github.com/chalkline-games/repquest/internal/world"
)

// State is what a gym-goer is currently doing
type State string

const (
	StateIdle       State = "idle"       // standing around deciding
	StateWalking    State = "walking"    // heading to a target tile
	StateExercising State = "exercising" // working a machine
)

// Behavior tuning, all durations in seconds
const (
	tilesPerSecond = 3.6 // slower than the player

	equipmentChance = 0.6
	wanderChance    = 0.3

	equipmentWalkTimeout = 10.0
	wanderWalkTimeout    = 8.0
	wanderTries          = 20
)

// NPC is one ambient gym-goer
type NPC struct {
	ID           int
	X, Y         int
	Direction    string
	MuscleLevel  int // build variety for the renderer
	ColorVariant int // shirt color index

	state        State
	stateTimer   float64
	targetX      int
	targetY      int
	equipment    string // machine id being headed to or used
	moveCooldown float64
	rng          *rand.Rand
}

// New creates a gym-goer at a tile position
func New(id, x, y int, rng *rand.Rand) *NPC {
	directions := []string{"up", "down", "left", "right"}
	n := &NPC{
		ID:           id,
		X:            x,
		Y:            y,
		Direction:    directions[rng.Intn(len(directions))],
		MuscleLevel:  2 + rng.Intn(5),
		ColorVariant: id % 3,
		state:        StateIdle,
		rng:          rng,
	}
	n.stateTimer = n.uniform(1.0, 3.0)
	return n
}

// State returns what the gym-goer is doing
func (n *NPC) State() State {
	return n.state
}

// Exercising reports whether the gym-goer is working a machine
func (n *NPC) Exercising() bool {
	return n.state == StateExercising
}

// UsingEquipment returns the id of the machine in use, or empty
func (n *NPC) UsingEquipment() string {
	return n.equipment
}

// Update advances the state machine by dt seconds
func (n *NPC) Update(dt float64, w *world.World, spots []world.Spot) {
	n.stateTimer -= dt

	switch n.state {
	case StateIdle:
		n.updateIdle(w, spots)
	case StateWalking:
		n.updateWalking(dt, w)
	case StateExercising:
		n.updateExercising()
	}
}

// updateIdle decides what to do once the idle timer runs out
func (n *NPC) updateIdle(w *world.World, spots []world.Spot) {
	if n.stateTimer > 0 {
		return
	}

	roll := n.rng.Float64()
	switch {
	case roll < equipmentChance && len(spots) > 0:
		n.pickEquipmentTarget(spots)
		n.state = StateWalking
	case roll < equipmentChance+wanderChance:
		if n.pickWanderTarget(w) {
			n.state = StateWalking
		} else {
			n.stateTimer = n.uniform(2.0, 5.0)
		}
	default:
		n.stateTimer = n.uniform(2.0, 5.0)
	}
}

// updateWalking steps toward the target one tile at a time
func (n *NPC) updateWalking(dt float64, w *world.World) {
	if n.X == n.targetX && n.Y == n.targetY {
		if n.equipment != "" {
			n.state = StateExercising
			n.stateTimer = n.uniform(5.0, 15.0)
		} else {
			n.state = StateIdle
			n.stateTimer = n.uniform(1.0, 4.0)
		}
		return
	}

	n.moveCooldown -= dt
	if n.moveCooldown <= 0 {
		n.step(w)
		n.moveCooldown = 1.0 / tilesPerSecond
	}

	// Stuck or path blocked, give up and rest
	if n.stateTimer <= 0 {
		n.state = StateIdle
		n.stateTimer = n.uniform(0.5, 1.5)
		n.equipment = ""
	}
}

func (n *NPC) updateExercising() {
	if n.stateTimer <= 0 {
		n.equipment = ""
		n.state = StateIdle
		n.stateTimer = n.uniform(2.0, 4.0)
	}
}

// step moves one tile toward the target, longer axis first
func (n *NPC) step(w *world.World) {
	dx := n.targetX - n.X
	dy := n.targetY - n.Y

	first, second := axisDirection(dx, 0), axisDirection(0, dy)
	if abs(dy) > abs(dx) {
		first, second = second, first
	}

	for _, direction := range []string{first, second} {
		if direction == "" {
			continue
		}
		sx, sy := player.DirectionDelta(direction)
		if w.Walkable(n.X+sx, n.Y+sy) {
			n.X += sx
			n.Y += sy
			n.Direction = direction
			return
		}
	}
}

// pickEquipmentTarget heads for the tile below a random machine
func (n *NPC) pickEquipmentTarget(spots []world.Spot) {
	spot := spots[n.rng.Intn(len(spots))]
	n.targetX = spot.X
	n.targetY = spot.Y + 1
	n.equipment = spot.Tile.Equipment
	n.stateTimer = equipmentWalkTimeout
}

// pickWanderTarget finds a random walkable tile in the gym-goer's own
// zone, so pool swimmers stay at the pool.
func (n *NPC) pickWanderTarget(w *world.World) bool {
	zone := w.ZoneAt(n.X, n.Y)
	for i := 0; i < wanderTries; i++ {
		x := n.rng.Intn(w.Width())
		y := n.rng.Intn(w.Height())
		if w.Walkable(x, y) && w.ZoneAt(x, y) == zone {
			n.targetX = x
			n.targetY = y
			n.equipment = ""
			n.stateTimer = wanderWalkTimeout
			return true
		}
	}
	return false
}

func (n *NPC) uniform(min, max float64) float64 {
	return min + n.rng.Float64()*(max-min)
}

func axisDirection(dx, dy int) string {
	switch {
	case dx > 0:
		return "right"
	case dx < 0:
		return "left"
	case dy > 0:
		return "down"
	case dy < 0:
		return "up"
	}
	return ""
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
