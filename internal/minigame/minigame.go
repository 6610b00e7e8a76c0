package minigame

// Kind identifies a mini-game variant.
type Kind string

const (
	// KindRhythm is a timing game where presses land in a moving zone.
	KindRhythm Kind = "rhythm"

	// KindHold is an endurance game where a key is held for a duration.
	KindHold Kind = "hold"

	// KindReaction is a reflex game where prompted keys are pressed in time.
	KindReaction Kind = "reaction"
)

// KeyAction is the canonical input name for the primary action key.
const KeyAction = "space"

// Launch describes the session to create for a piece of equipment.
// Zero-valued tuning fields fall back to the variant's defaults.
type Launch struct {
	Equipment string
	Kind      Kind

	// Reps is the press count for rhythm games.
	Reps int

	// Duration is the hold time in seconds for hold games.
	Duration float64

	// KeyCount is the prompt count for reaction games.
	KeyCount int
}

// Result is the outcome of a completed session.
type Result struct {
	Success   bool
	Score     int
	XPReward  int
	Equipment string
	Perfect   bool // every scoring chance landed at full points
}

// Session is one round of an equipment mini-game. Sessions are driven by
// a single goroutine: Update once per frame with the elapsed time and the
// held state of the action key, HandleInput once per discrete key press.
type Session interface {
	// Equipment returns the name of the machine this session belongs to.
	Equipment() string

	// Kind returns the session's variant.
	Kind() Kind

	// Update advances the session by dt seconds. held reports whether
	// the action key is currently down.
	Update(dt float64, held bool)

	// HandleInput processes a discrete key press.
	HandleInput(key string)

	// Active reports whether the session is accepting input.
	Active() bool

	// Complete reports whether the session has finished.
	Complete() bool

	// Result returns the session outcome. ok is false until the
	// session completes.
	Result() (result Result, ok bool)
}

// xpReward converts a raw score into XP at half value.
func xpReward(score int) int {
	return score / 2
}
