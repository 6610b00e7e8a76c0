package quest

import (
	"math/rand"

	"github.com/chalkline-games/repquest/internal/clock"
	"github.com/chalkline-games/repquest/internal/stats"
)

// dailyIRLCount is how many IRL quests are offered each day
const dailyIRLCount = 3

// Progression is the player-side surface the engine applies rewards to
type Progression interface {
	AddXP(amount int) bool
	AddCurrency(amount int)
}

// Engine tracks active quests, the daily IRL set, and the streak counters.
// All methods run on the simulation goroutine; no locking is needed.
type Engine struct {
	templates *TemplateSet
	clock     clock.Clock
	rng       *rand.Rand

	active       []*Quest
	completedIDs map[string]bool
	irl          []*Quest
	visited      map[string]bool

	currentStreak int
	bestStreak    int
	lastIRLDate   string
}

// NewEngine creates an engine seeded with the starting quests and a fresh
// daily IRL set.
func NewEngine(templates *TemplateSet, clk clock.Clock, rng *rand.Rand) *Engine {
	e := &Engine{
		templates:    templates,
		clock:        clk,
		rng:          rng,
		completedIDs: make(map[string]bool),
		visited:      make(map[string]bool),
	}
	for _, id := range templates.InitialQuests() {
		e.addFromTemplate(id)
	}
	e.refreshIRLQuests()
	return e
}

// addFromTemplate creates an active quest from a progression template.
// Already-completed and unknown ids are skipped.
func (e *Engine) addFromTemplate(id string) *Quest {
	if e.completedIDs[id] {
		return nil
	}
	t, ok := e.templates.Progression(id)
	if !ok {
		return nil
	}
	q := NewQuest(t)
	e.active = append(e.active, q)
	return q
}

// refreshIRLQuests replaces the IRL set with a new daily sample, drawn
// without replacement from the IRL template pool.
func (e *Engine) refreshIRLQuests() {
	e.irl = e.irl[:0]
	ids := e.templates.IRLIDs()
	count := dailyIRLCount
	if count > len(ids) {
		count = len(ids)
	}
	for _, i := range e.rng.Perm(len(ids))[:count] {
		t, _ := e.templates.IRL(ids[i])
		e.irl = append(e.irl, NewQuest(t))
	}
}

// OnEquipmentUse records a machine as visited and advances any matching
// quests. It returns every quest completed by this call, in active order.
func (e *Engine) OnEquipmentUse(equipmentName string) []*Quest {
	e.visited[equipmentName] = true

	var completed []*Quest
	for _, q := range e.active {
		if q.Completed {
			continue
		}
		switch q.Kind {
		case KindUseEquipment:
			if q.TargetEquipment == equipmentName && q.AddProgress(1) {
				completed = append(completed, q)
			}
		case KindVisitAll:
			if q.SetProgress(len(e.visited)) {
				completed = append(completed, q)
			}
		}
	}
	return completed
}

// OnLevelUp advances level quests after the player reaches newLevel
func (e *Engine) OnLevelUp(newLevel int) []*Quest {
	var completed []*Quest
	for _, q := range e.active {
		if q.Completed || q.Kind != KindLevelUp {
			continue
		}
		if q.SetProgress(newLevel) {
			completed = append(completed, q)
		}
	}
	return completed
}

// OnStatChange advances stat quests targeting the changed stat
func (e *Engine) OnStatChange(stat stats.Name, newValue int) []*Quest {
	var completed []*Quest
	for _, q := range e.active {
		if q.Completed || q.Kind != KindStatGoal || q.TargetStat != stat {
			continue
		}
		if q.SetProgress(newValue) {
			completed = append(completed, q)
		}
	}
	return completed
}

// CompleteIRLQuest marks the IRL quest at index as done and updates the
// streak. Out-of-range indexes and already-completed quests are no-ops.
func (e *Engine) CompleteIRLQuest(index int) (*Quest, bool) {
	if index < 0 || index >= len(e.irl) {
		return nil, false
	}
	q := e.irl[index]
	if q.Completed {
		return nil, false
	}
	q.Progress = q.Goal
	q.Completed = true
	e.UpdateStreak()
	return q, true
}

// UpdateStreak counts today toward the streak. The streak grows only when
// the previous completion was yesterday, and a day is never counted twice.
func (e *Engine) UpdateStreak() {
	today := clock.Today(e.clock)
	yesterday := e.clock.Now().AddDate(0, 0, -1).Format(clock.DateFormat)

	switch {
	case e.lastIRLDate == "":
		e.currentStreak = 1
	case e.lastIRLDate == today:
		// Already counted today
	case e.lastIRLDate == yesterday:
		e.currentStreak++
	default:
		e.currentStreak = 1
	}

	e.lastIRLDate = today
	if e.currentStreak > e.bestStreak {
		e.bestStreak = e.currentStreak
	}
}

// StreakBonus returns the reward multiplier for the current streak
func (e *Engine) StreakBonus() float64 {
	switch {
	case e.currentStreak >= 30:
		return 2.0
	case e.currentStreak >= 14:
		return 1.75
	case e.currentStreak >= 7:
		return 1.5
	case e.currentStreak >= 3:
		return 1.25
	}
	return 1.0
}

// ClaimRewards applies a completed quest's rewards to the player. IRL
// rewards are scaled by the streak bonus. Claiming a non-IRL quest retires
// it permanently and unlocks the next quest in the chain.
func (e *Engine) ClaimRewards(q *Quest, p Progression) (xp, currency int) {
	multiplier := 1.0
	if q.IsIRL() {
		multiplier = e.StreakBonus()
	}

	xp = int(float64(q.XPReward) * multiplier)
	currency = int(float64(q.CurrencyReward) * multiplier)

	p.AddXP(xp)
	p.AddCurrency(currency)

	if !q.IsIRL() {
		e.completedIDs[q.ID] = true
		e.removeActive(q)
		e.unlockNext()
	}

	return xp, currency
}

// removeActive drops a quest from the active list, preserving order
func (e *Engine) removeActive(q *Quest) {
	for i, a := range e.active {
		if a == q {
			e.active = append(e.active[:i], e.active[i+1:]...)
			return
		}
	}
}

// unlockNext adds the chain quest keyed by how many quests are completed
func (e *Engine) unlockNext() {
	chain := e.templates.UnlockChain()
	idx := len(e.completedIDs) - 1
	if idx >= 0 && idx < len(chain) {
		e.addFromTemplate(chain[idx])
	}
}

// ActiveQuests returns the in-progress and unclaimed progression quests
func (e *Engine) ActiveQuests() []*Quest {
	out := make([]*Quest, len(e.active))
	copy(out, e.active)
	return out
}

// IRLQuests returns today's IRL quests
func (e *Engine) IRLQuests() []*Quest {
	out := make([]*Quest, len(e.irl))
	copy(out, e.irl)
	return out
}

// CurrentQuest returns the first incomplete progression quest for display
func (e *Engine) CurrentQuest() (*Quest, bool) {
	for _, q := range e.active {
		if !q.Completed {
			return q, true
		}
	}
	return nil, false
}

// ActiveViews returns display snapshots of incomplete progression quests
func (e *Engine) ActiveViews() []View {
	var views []View
	for _, q := range e.active {
		if !q.Completed {
			views = append(views, q.View())
		}
	}
	return views
}

// IRLViews returns display snapshots of today's IRL quests
func (e *Engine) IRLViews() []View {
	views := make([]View, len(e.irl))
	for i, q := range e.irl {
		views[i] = q.View()
	}
	return views
}

// HasVisited reports whether a machine has ever been used
func (e *Engine) HasVisited(equipmentName string) bool {
	return e.visited[equipmentName]
}

// CurrentStreak returns the running daily streak
func (e *Engine) CurrentStreak() int {
	return e.currentStreak
}

// BestStreak returns the highest streak ever reached
func (e *Engine) BestStreak() int {
	return e.bestStreak
}

// LastIRLDate returns the date an IRL quest was last completed, or ""
func (e *Engine) LastIRLDate() string {
	return e.lastIRLDate
}

// CompletedCount returns how many progression quests have been claimed
func (e *Engine) CompletedCount() int {
	return len(e.completedIDs)
}

// IsCompleted reports whether a progression quest id has been claimed
func (e *Engine) IsCompleted(id string) bool {
	return e.completedIDs[id]
}
