package minigame

import "math/rand"

// Manager owns the active mini-game session. Only one session runs at a
// time; a completed session sticks around for its result until Clear.
type Manager struct {
	rng     *rand.Rand
	current Session
}

// NewManager creates a mini-game manager. Reaction prompts are drawn
// from rng.
func NewManager(rng *rand.Rand) *Manager {
	return &Manager{rng: rng}
}

// Start creates and activates a session for the launch parameters.
// Returns false if a session is already running or the kind is unknown.
func (m *Manager) Start(launch Launch) bool {
	if m.current != nil && m.current.Active() {
		return false
	}

	switch launch.Kind {
	case KindRhythm:
		m.current = NewRhythm(launch.Equipment, launch.Reps)
	case KindHold:
		m.current = NewHold(launch.Equipment, launch.Duration)
	case KindReaction:
		m.current = NewReaction(launch.Equipment, launch.KeyCount, m.rng)
	default:
		return false
	}
	return true
}

// Current returns the session in progress, or nil.
func (m *Manager) Current() Session {
	return m.current
}

// Active reports whether a session is accepting input.
func (m *Manager) Active() bool {
	return m.current != nil && m.current.Active()
}

// Complete reports whether the current session has finished.
func (m *Manager) Complete() bool {
	return m.current != nil && m.current.Complete()
}

// Update advances the current session by dt seconds.
func (m *Manager) Update(dt float64, held bool) {
	if m.current != nil && m.current.Active() {
		m.current.Update(dt, held)
	}
}

// HandleInput forwards a key press to the current session.
func (m *Manager) HandleInput(key string) {
	if m.current != nil && m.current.Active() {
		m.current.HandleInput(key)
	}
}

// Result returns the outcome of the completed session. ok is false while
// no session has finished.
func (m *Manager) Result() (Result, bool) {
	if m.current == nil {
		return Result{}, false
	}
	return m.current.Result()
}

// Clear drops the current session.
func (m *Manager) Clear() {
	m.current = nil
}
