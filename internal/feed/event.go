// Package feed streams progression events to overlay and companion
// clients over WebSocket as JSON text messages.
package feed

import "time"

// EventType identifies what happened
type EventType string

const (
	EventSessionComplete EventType = "session_complete" // a mini-game finished
	EventQuestComplete   EventType = "quest_complete"   // a quest was claimed
	EventLevelUp         EventType = "level_up"
	EventStreakUpdate    EventType = "streak_update"
	EventItemUsed        EventType = "item_used"
)

// Event is one feed message. Only the fields relevant to the type are
// populated.
type Event struct {
	Type   EventType `json:"type"`
	At     time.Time `json:"at"`
	Player string    `json:"player"`

	Equipment  string `json:"equipment,omitempty"`
	Quest      string `json:"quest,omitempty"`
	Item       string `json:"item,omitempty"`
	Score      int    `json:"score,omitempty"`
	XP         int    `json:"xp,omitempty"`
	Currency   int    `json:"currency,omitempty"`
	Level      int    `json:"level,omitempty"`
	Streak     int    `json:"streak,omitempty"`
	BestStreak int    `json:"best_streak,omitempty"`
	Success    bool   `json:"success"`
	IRL        bool   `json:"irl,omitempty"`
}
