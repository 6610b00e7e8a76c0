package npc

import (
	"math/rand"

	"github.com/chalkline-games/repquest/internal/world"
)

// DefaultCount is how many gym-goers populate the map
const DefaultCount = 5

// Manager owns every gym-goer and ticks them together
type Manager struct {
	npcs  []*NPC
	spots []world.Spot
	rng   *rand.Rand
}

// NewManager spawns gym-goers on the map, two thirds on the gym floor
// and the rest at the pool.
func NewManager(w *world.World, count int, rng *rand.Rand) *Manager {
	m := &Manager{
		spots: w.EquipmentSpots(),
		rng:   rng,
	}

	gymCount := count * 2 / 3
	poolCount := count - gymCount
	m.spawnInZone(w, world.ZoneGym, gymCount, 100)
	m.spawnInZone(w, world.ZonePool, poolCount, 50)

	return m
}

// spawnInZone places gym-goers on random walkable tiles of one zone.
// Maps without the zone simply get fewer gym-goers.
func (m *Manager) spawnInZone(w *world.World, zone world.Zone, count, maxAttempts int) {
	spawned := 0
	for attempts := 0; spawned < count && attempts < maxAttempts; attempts++ {
		x := m.rng.Intn(w.Width())
		y := m.rng.Intn(w.Height())
		if !w.Walkable(x, y) || w.ZoneAt(x, y) != zone {
			continue
		}
		m.npcs = append(m.npcs, New(len(m.npcs), x, y, m.rng))
		spawned++
	}
}

// Update ticks every gym-goer
func (m *Manager) Update(dt float64, w *world.World) {
	for _, n := range m.npcs {
		n.Update(dt, w, m.spots)
	}
}

// NPCs returns the live gym-goer list
func (m *Manager) NPCs() []*NPC {
	return m.npcs
}

// Count returns how many gym-goers are on the map
func (m *Manager) Count() int {
	return len(m.npcs)
}
