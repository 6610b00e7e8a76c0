package minigame

// Rhythm tuning constants
const (
	rhythmBarSpeed    = 80.0 // bar units per second
	rhythmZoneLow     = 40.0
	rhythmZoneHigh    = 60.0
	rhythmGoodMargin  = 15.0
	defaultRhythmReps = 5

	// Score per press quality
	rhythmPerfectScore = 20
	rhythmGoodScore    = 10
)

// Rhythm is a timing game. A bar sweeps from 0 to 100 and back, and each
// press of the action key scores by how close the bar is to the center
// zone. Used for presses, squats and pulldowns.
type Rhythm struct {
	equipment  string
	targetReps int

	CurrentReps int
	BarPosition float64
	Score       int

	// Feedback is the label for the most recent press, shown while
	// FeedbackTimer is above zero.
	Feedback      string
	FeedbackTimer float64

	barDirection float64
	active       bool
	complete     bool
	success      bool
}

// NewRhythm creates a rhythm session for the named equipment.
func NewRhythm(equipment string, reps int) *Rhythm {
	if reps <= 0 {
		reps = defaultRhythmReps
	}
	return &Rhythm{
		equipment:     equipment,
		targetReps:    reps,
		barDirection:  1,
		active:        true,
		Feedback:      "Press in the green zone!",
		FeedbackTimer: 2.0,
	}
}

func (g *Rhythm) Equipment() string { return g.equipment }
func (g *Rhythm) Kind() Kind        { return KindRhythm }
func (g *Rhythm) Active() bool      { return g.active }
func (g *Rhythm) Complete() bool    { return g.complete }

// TargetReps returns the number of presses the session expects.
func (g *Rhythm) TargetReps() int { return g.targetReps }

// Zone returns the scoring window bounds on the 0-100 bar.
func (g *Rhythm) Zone() (low, high float64) {
	return rhythmZoneLow - rhythmGoodMargin, rhythmZoneHigh + rhythmGoodMargin
}

// PerfectZone returns the full-score window bounds on the 0-100 bar.
func (g *Rhythm) PerfectZone() (low, high float64) {
	return rhythmZoneLow, rhythmZoneHigh
}

// InZone reports whether a press right now would score.
func (g *Rhythm) InZone() bool {
	return g.BarPosition >= rhythmZoneLow-rhythmGoodMargin &&
		g.BarPosition <= rhythmZoneHigh+rhythmGoodMargin
}

// InPerfectZone reports whether a press right now would score full points.
func (g *Rhythm) InPerfectZone() bool {
	return g.BarPosition >= rhythmZoneLow && g.BarPosition <= rhythmZoneHigh
}

// Update moves the bar back and forth, reversing at the bounds.
func (g *Rhythm) Update(dt float64, held bool) {
	if !g.active || g.complete {
		return
	}

	g.BarPosition += rhythmBarSpeed * g.barDirection * dt

	if g.BarPosition >= 100 {
		g.BarPosition = 100
		g.barDirection = -1
	} else if g.BarPosition <= 0 {
		g.BarPosition = 0
		g.barDirection = 1
	}

	if g.FeedbackTimer > 0 {
		g.FeedbackTimer -= dt
	}
}

// HandleInput scores an action key press by bar position. Every press
// counts as a rep whether or not it lands.
func (g *Rhythm) HandleInput(key string) {
	if !g.active || g.complete {
		return
	}
	if key != KeyAction {
		return
	}

	switch {
	case g.InPerfectZone():
		g.Score += rhythmPerfectScore
		g.setFeedback("PERFECT!")
	case g.InZone():
		g.Score += rhythmGoodScore
		g.setFeedback("Good!")
	default:
		g.setFeedback("Miss!")
	}

	g.CurrentReps++

	if g.CurrentReps >= g.targetReps {
		g.complete = true
		g.success = g.Score >= g.targetReps*rhythmGoodScore
		g.active = false
	}
}

func (g *Rhythm) setFeedback(text string) {
	g.Feedback = text
	g.FeedbackTimer = 0.5
}

func (g *Rhythm) Result() (Result, bool) {
	if !g.complete {
		return Result{}, false
	}
	return Result{
		Success:   g.success,
		Score:     g.Score,
		XPReward:  xpReward(g.Score),
		Equipment: g.equipment,
		Perfect:   g.Score == g.targetReps*rhythmPerfectScore,
	}, true
}
