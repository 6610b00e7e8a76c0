package minigame

const defaultHoldDuration = 5.0

// Hold is an endurance game. The action key must be held until the timer
// runs out; releasing pauses progress without losing it. Used for the
// treadmill.
type Hold struct {
	equipment string
	duration  float64

	TimeHeld float64
	Holding  bool
	Score    int

	active   bool
	complete bool
}

// NewHold creates a hold session for the named equipment.
func NewHold(equipment string, duration float64) *Hold {
	if duration <= 0 {
		duration = defaultHoldDuration
	}
	return &Hold{
		equipment: equipment,
		duration:  duration,
		active:    true,
	}
}

func (g *Hold) Equipment() string { return g.equipment }
func (g *Hold) Kind() Kind        { return KindHold }
func (g *Hold) Active() bool      { return g.active }
func (g *Hold) Complete() bool    { return g.complete }

// Duration returns the required hold time in seconds.
func (g *Hold) Duration() float64 { return g.duration }

// Remaining returns the hold time still needed in seconds.
func (g *Hold) Remaining() float64 {
	remaining := g.duration - g.TimeHeld
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Progress returns hold completion in the range 0.0 to 1.0.
func (g *Hold) Progress() float64 {
	progress := g.TimeHeld / g.duration
	if progress > 1 {
		return 1
	}
	return progress
}

// Update accumulates hold time while the action key is down.
func (g *Hold) Update(dt float64, held bool) {
	if !g.active || g.complete {
		return
	}

	g.Holding = held
	if !held {
		return
	}

	g.TimeHeld += dt
	g.Score = int(g.TimeHeld / g.duration * 100)
	if g.Score > 100 {
		g.Score = 100
	}

	if g.TimeHeld >= g.duration {
		g.complete = true
		g.active = false
	}
}

// HandleInput is a no-op. Hold sessions only track the held state.
func (g *Hold) HandleInput(key string) {}

func (g *Hold) Result() (Result, bool) {
	if !g.complete {
		return Result{}, false
	}
	return Result{
		Success:   true,
		Score:     g.Score,
		XPReward:  xpReward(g.Score),
		Equipment: g.equipment,
		Perfect:   g.Score >= 100,
	}, true
}
