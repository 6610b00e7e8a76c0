package trainer

import (
	"fmt"
	"math/rand"
)

// Message categories
const (
	CategoryWelcome     = "welcome"
	CategorySuccess     = "success"
	CategoryLevelUp     = "level_up"
	CategoryFail        = "fail"
	CategoryIdle        = "idle"
	CategoryIRLComplete = "irl_complete"
	CategoryStreak      = "streak"
)

// MessageSet holds the coach's lines, pooled by category plus one-liners
// keyed by equipment name.
type MessageSet struct {
	pools     map[string][]string
	equipment map[string]string
}

// DefaultMessages returns the built-in coach lines
func DefaultMessages() *MessageSet {
	return &MessageSet{
		pools: map[string][]string{
			CategoryWelcome: {
				"Welcome to the pain cave. Let's get to work!",
				"Another day to become uncommon. Let's go!",
				"Your mind will quit a thousand times before your body does.",
				"Time to callous your mind. No excuses!",
				"The only easy day was yesterday. Get moving!",
			},
			CategorySuccess: {
				"That's what I'm talking about! Stay hard!",
				"You just did what 99% of people won't. Keep going!",
				"One more rep for the mind! You're building mental armor!",
				"Excellence is a habit. You're proving that right now!",
				"You didn't come this far to only come this far!",
				"That's growth right there. Embrace the suck!",
			},
			CategoryLevelUp: {
				"NEW LEVEL! But remember - levels don't lift themselves!",
				"You just evolved! Now do it again!",
				"Stronger body, stronger mind. Keep stacking wins!",
				"That's what happens when you don't quit!",
				"You're becoming uncommon among uncommon people!",
			},
			CategoryFail: {
				"Get back up! Failure is just feedback!",
				"You think this is hard? Life is hard. Keep pushing!",
				"That's just round one. Champions get up!",
				"Pain is weakness leaving the body. Embrace it!",
				"You're not done until YOU say you're done!",
			},
			CategoryIdle: {
				"Why are you standing still? The iron won't lift itself!",
				"Comfort is the enemy of progress. MOVE!",
				"You didn't come here to spectate!",
				"Every second you waste is a rep you'll never get back!",
				"Are you a spectator or a participant? DECIDE!",
			},
			CategoryIRLComplete: {
				"You did the work in REAL LIFE! That's the real test!",
				"From the game to the streets! That's a true warrior!",
				"Real world reps hit different. Proud of you!",
				"You're not just playing - you're BECOMING!",
				"That's the real accountability right there!",
			},
			CategoryStreak: {
				"STREAK BONUS! Consistency is the ultimate superpower!",
				"Day after day! This is how champions are made!",
				"That streak shows DISCIPLINE. Keep it going!",
				"Your past self would be proud. Don't let them down!",
				"Momentum is everything. STAY HARD!",
			},
		},
		equipment: map[string]string{
			"Bench Press":     "Time to build that chest! Press like your life depends on it!",
			"Squat Rack":      "Leg day? Every day is leg day! Get under that bar!",
			"Treadmill":       "Running from weakness, running TO strength!",
			"Dumbbells":       "Grab those weights! Every rep is a vote for who you want to be!",
			"Pull-up Bar":     "Pull yourself up! Nobody is going to do it for you!",
			"Lat Pulldown":    "Pull that bar down like you're tearing the roof off!",
			"Cable Machine":   "Cables keep the tension on the whole way. So does life!",
			"Mirror":          "Look at yourself. That's your competition. Beat THAT person!",
			"Supplement Shop": "Fuel the machine. But remember - supplements don't replace hard work!",
		},
	}
}

// Pick returns a random line from a category. Unknown categories fall
// back to the success pool.
func (m *MessageSet) Pick(category string, rng *rand.Rand) string {
	pool, ok := m.pools[category]
	if !ok || len(pool) == 0 {
		pool = m.pools[CategorySuccess]
	}
	if len(pool) == 0 {
		return ""
	}
	return pool[rng.Intn(len(pool))]
}

// EquipmentLine returns the coach's line for a machine, with a generic
// line for machines he has no opinion on.
func (m *MessageSet) EquipmentLine(name string) string {
	if line, ok := m.equipment[name]; ok {
		return line
	}
	return fmt.Sprintf("Use that %s! Every rep counts!", name)
}

// Pool returns the lines in a category, for the overlay loader and tests
func (m *MessageSet) Pool(category string) []string {
	return m.pools[category]
}
