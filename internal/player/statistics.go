package player

import (
	"encoding/json"
	"sync"
)

// Statistics tracks lifetime activity for the activity feed and profile
// screens.
type Statistics struct {
	TotalWorkouts       int            `json:"total_workouts"`
	WorkoutsByEquipment map[string]int `json:"workouts_by_equipment"` // equipment name -> count
	PerfectSessions     int            `json:"perfect_sessions"`      // sessions with a full score
	XPAccumulated       int64          `json:"xp_accumulated"`        // lifetime XP earned
	CurrencyAccumulated int64          `json:"currency_accumulated"`  // lifetime money earned
	QuestsCompleted     int            `json:"quests_completed"`
	IRLQuestsCompleted  int            `json:"irl_quests_completed"`
	BestStreak          int            `json:"best_streak"` // longest daily streak reached
	ItemsUsed           int            `json:"items_used"`
	TilesTraveled       int            `json:"tiles_traveled"`
	mu                  sync.RWMutex
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		WorkoutsByEquipment: make(map[string]int),
	}
}

// RecordWorkout increments workout counts for a completed session.
func (s *Statistics) RecordWorkout(equipmentName string, perfect bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.TotalWorkouts++
	if s.WorkoutsByEquipment == nil {
		s.WorkoutsByEquipment = make(map[string]int)
	}
	s.WorkoutsByEquipment[equipmentName]++
	if perfect {
		s.PerfectSessions++
	}
}

// RecordXPEarned adds to lifetime XP earned.
func (s *Statistics) RecordXPEarned(amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.XPAccumulated += int64(amount)
}

// RecordCurrencyEarned adds to lifetime money earned.
func (s *Statistics) RecordCurrencyEarned(amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CurrencyAccumulated += int64(amount)
}

// RecordQuestCompleted increments quest completion counts.
func (s *Statistics) RecordQuestCompleted(isIRL bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.QuestsCompleted++
	if isIRL {
		s.IRLQuestsCompleted++
	}
}

// RecordStreak updates the best streak if this one is longer.
func (s *Statistics) RecordStreak(days int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if days > s.BestStreak {
		s.BestStreak = days
	}
}

// RecordItemUsed increments the consumed item count.
func (s *Statistics) RecordItemUsed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ItemsUsed++
}

// RecordMove increments distance traveled.
func (s *Statistics) RecordMove() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.TilesTraveled++
}

// GetTotalWorkouts returns the lifetime workout count.
func (s *Statistics) GetTotalWorkouts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.TotalWorkouts
}

// GetWorkoutsFor returns the workout count for one machine.
func (s *Statistics) GetWorkoutsFor(equipmentName string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.WorkoutsByEquipment == nil {
		return 0
	}
	return s.WorkoutsByEquipment[equipmentName]
}

// GetBestStreak returns the longest streak reached.
func (s *Statistics) GetBestStreak() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.BestStreak
}

// ToJSON serializes statistics to JSON.
func (s *Statistics) ToJSON() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// FromJSON deserializes statistics from JSON.
func (s *Statistics) FromJSON(jsonStr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if jsonStr == "" || jsonStr == "{}" {
		return nil
	}
	return json.Unmarshal([]byte(jsonStr), s)
}
