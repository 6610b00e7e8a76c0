package minigame

import "math/rand"

// Reaction tuning constants
const (
	defaultReactionCount = 8
	reactionTimeLimit    = 1.5 // seconds per prompt

	// Score per hit, by how fast the key landed
	reactionFastScore  = 15
	reactionSlowScore  = 10
	reactionFastCutoff = 1.0
)

// reactionKeys are the canonical input names a prompt can ask for.
var reactionKeys = []string{"w", "a", "s", "d", "up", "down", "left", "right"}

// Reaction is a reflex game. Prompts ask for one key at a time under a
// short deadline; a timed-out prompt rolls a new key with no penalty.
// Used for dumbbells and the cable machine.
type Reaction struct {
	equipment string
	keyCount  int
	rng       *rand.Rand

	TargetKey     string
	TimeRemaining float64
	KeysPressed   int
	Score         int

	active   bool
	complete bool
}

// NewReaction creates a reaction session for the named equipment. The
// prompt sequence is drawn from rng, so a seeded source replays the same
// sequence.
func NewReaction(equipment string, keyCount int, rng *rand.Rand) *Reaction {
	if keyCount <= 0 {
		keyCount = defaultReactionCount
	}
	g := &Reaction{
		equipment: equipment,
		keyCount:  keyCount,
		rng:       rng,
		active:    true,
	}
	g.nextKey()
	return g
}

func (g *Reaction) Equipment() string { return g.equipment }
func (g *Reaction) Kind() Kind        { return KindReaction }
func (g *Reaction) Active() bool      { return g.active }
func (g *Reaction) Complete() bool    { return g.complete }

// KeyCount returns the number of prompts the session expects.
func (g *Reaction) KeyCount() int { return g.keyCount }

// TimeLimit returns the per-prompt deadline in seconds.
func (g *Reaction) TimeLimit() float64 { return reactionTimeLimit }

// nextKey rolls a new prompt and resets the deadline. The same key can
// come up twice in a row.
func (g *Reaction) nextKey() {
	g.TargetKey = reactionKeys[g.rng.Intn(len(reactionKeys))]
	g.TimeRemaining = reactionTimeLimit
}

// Update counts down the prompt deadline, rolling a fresh prompt when it
// expires.
func (g *Reaction) Update(dt float64, held bool) {
	if !g.active || g.complete {
		return
	}

	g.TimeRemaining -= dt
	if g.TimeRemaining <= 0 {
		g.nextKey()
	}
}

// HandleInput scores a press of the prompted key. Other keys are ignored.
func (g *Reaction) HandleInput(key string) {
	if !g.active || g.complete {
		return
	}
	if key != g.TargetKey {
		return
	}

	if g.TimeRemaining > reactionFastCutoff {
		g.Score += reactionFastScore
	} else {
		g.Score += reactionSlowScore
	}
	g.KeysPressed++

	if g.KeysPressed >= g.keyCount {
		g.complete = true
		g.active = false
	} else {
		g.nextKey()
	}
}

func (g *Reaction) Result() (Result, bool) {
	if !g.complete {
		return Result{}, false
	}
	return Result{
		Success:   true,
		Score:     g.Score,
		XPReward:  xpReward(g.Score),
		Equipment: g.equipment,
		Perfect:   g.Score == g.keyCount*reactionFastScore,
	}, true
}
