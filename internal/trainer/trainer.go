// Package trainer drives the coach: motivational one-liners shown in
// response to workouts, level ups, quests, and standing around doing
// nothing.
package trainer

import "math/rand"

const (
	// defaultDuration is how long a message stays on screen
	defaultDuration = 4.0
	// longDuration is for milestone messages worth lingering on
	longDuration = 5.0
	// idleThreshold is how long the player can stand still before the
	// coach has something to say about it
	idleThreshold = 10.0
)

type queuedMessage struct {
	text     string
	duration float64
}

// Trainer tracks the currently displayed message, a queue of follow-ups,
// and how long the player has been idle. Driven from the game loop.
type Trainer struct {
	messages *MessageSet
	rng      *rand.Rand

	current  string
	timer    float64
	queue    []queuedMessage
	idleTime float64
}

// New creates a trainer with the given lines and random source
func New(messages *MessageSet, rng *rand.Rand) *Trainer {
	return &Trainer{messages: messages, rng: rng}
}

// Show replaces the current message with a random line from category
func (t *Trainer) Show(category string) {
	t.ShowFor(category, defaultDuration)
}

// ShowFor replaces the current message, visible for duration seconds
func (t *Trainer) ShowFor(category string, duration float64) {
	t.current = t.messages.Pick(category, t.rng)
	t.timer = duration
}

// ShowText displays an exact line rather than a category pick
func (t *Trainer) ShowText(text string, duration float64) {
	t.current = text
	t.timer = duration
}

// Queue appends a random line from category, shown after the current
// message expires
func (t *Trainer) Queue(category string) {
	t.queue = append(t.queue, queuedMessage{
		text:     t.messages.Pick(category, t.rng),
		duration: defaultDuration,
	})
}

// Update advances the message timer and the idle tracker
func (t *Trainer) Update(dt float64, playerMoving bool) {
	if t.timer > 0 {
		t.timer -= dt
		if t.timer <= 0 {
			t.current = ""
			if len(t.queue) > 0 {
				next := t.queue[0]
				t.queue = t.queue[1:]
				t.current = next.text
				t.timer = next.duration
			}
		}
	}

	if playerMoving {
		t.idleTime = 0
		return
	}
	t.idleTime += dt
	if t.idleTime >= idleThreshold && t.current == "" {
		t.Show(CategoryIdle)
		t.idleTime = 0
	}
}

// Current returns the message on screen, if any
func (t *Trainer) Current() (string, bool) {
	return t.current, t.current != ""
}

// Welcome greets the player at the start of a session
func (t *Trainer) Welcome() {
	t.ShowFor(CategoryWelcome, longDuration)
}

// OnLevelUp reacts to the player reaching a new level
func (t *Trainer) OnLevelUp(newLevel int) {
	t.ShowFor(CategoryLevelUp, longDuration)
}

// OnQuestComplete reacts to a finished quest
func (t *Trainer) OnQuestComplete(isIRL bool) {
	if isIRL {
		t.ShowFor(CategoryIRLComplete, longDuration)
	} else {
		t.Show(CategorySuccess)
	}
}

// OnEquipmentInteract comments on the machine the player walked up to
func (t *Trainer) OnEquipmentInteract(equipmentName string) {
	t.ShowText(t.messages.EquipmentLine(equipmentName), defaultDuration)
}

// OnWorkoutResult reacts to a finished session
func (t *Trainer) OnWorkoutResult(success bool) {
	if success {
		t.Show(CategorySuccess)
	} else {
		t.Show(CategoryFail)
	}
}

// OnStreak celebrates a continued daily streak
func (t *Trainer) OnStreak(streakDays int) {
	t.ShowFor(CategoryStreak, longDuration)
}

// QueueStreak appends a streak line behind the current message
func (t *Trainer) QueueStreak() {
	t.Queue(CategoryStreak)
}
