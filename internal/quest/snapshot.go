package quest

import (
	"sort"

	"github.com/chalkline-games/repquest/internal/clock"
	"github.com/chalkline-games/repquest/internal/logger"
)

// QuestState is the persisted progress of a single quest
type QuestState struct {
	ID        string `json:"id"`
	Progress  int    `json:"progress"`
	Completed bool   `json:"completed"`
}

// Snapshot is the engine's full persisted state
type Snapshot struct {
	ActiveQuests     []QuestState `json:"active_quests"`
	CompletedIDs     []string     `json:"completed_ids"`
	IRLQuests        []QuestState `json:"irl_quests"`
	CurrentStreak    int          `json:"current_streak"`
	BestStreak       int          `json:"best_streak"`
	LastIRLDate      string       `json:"last_irl_date,omitempty"`
	VisitedEquipment []string     `json:"visited_equipment"`
}

// Snapshot captures the engine state for saving. Set-valued fields are
// sorted so identical states serialize identically.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		ActiveQuests:     make([]QuestState, 0, len(e.active)),
		CompletedIDs:     make([]string, 0, len(e.completedIDs)),
		IRLQuests:        make([]QuestState, 0, len(e.irl)),
		CurrentStreak:    e.currentStreak,
		BestStreak:       e.bestStreak,
		LastIRLDate:      e.lastIRLDate,
		VisitedEquipment: make([]string, 0, len(e.visited)),
	}
	for _, q := range e.active {
		s.ActiveQuests = append(s.ActiveQuests, QuestState{ID: q.ID, Progress: q.Progress, Completed: q.Completed})
	}
	for id := range e.completedIDs {
		s.CompletedIDs = append(s.CompletedIDs, id)
	}
	sort.Strings(s.CompletedIDs)
	for _, q := range e.irl {
		s.IRLQuests = append(s.IRLQuests, QuestState{ID: q.ID, Progress: q.Progress, Completed: q.Completed})
	}
	for name := range e.visited {
		s.VisitedEquipment = append(s.VisitedEquipment, name)
	}
	sort.Strings(s.VisitedEquipment)
	return s
}

// Restore replaces the engine state from a snapshot. Quests are rebuilt
// from templates by id; ids with no template are skipped. If the snapshot
// was taken on an earlier day the IRL set is resampled for today.
func (e *Engine) Restore(s Snapshot) {
	e.completedIDs = make(map[string]bool, len(s.CompletedIDs))
	for _, id := range s.CompletedIDs {
		e.completedIDs[id] = true
	}
	e.currentStreak = s.CurrentStreak
	e.bestStreak = s.BestStreak
	e.lastIRLDate = s.LastIRLDate
	e.visited = make(map[string]bool, len(s.VisitedEquipment))
	for _, name := range s.VisitedEquipment {
		e.visited[name] = true
	}

	e.active = e.active[:0]
	for _, qs := range s.ActiveQuests {
		if e.completedIDs[qs.ID] {
			continue
		}
		q := e.addFromTemplate(qs.ID)
		if q == nil {
			logger.Warning("Skipping unknown quest in save", "quest_id", qs.ID)
			continue
		}
		applyState(q, qs)
	}

	if e.lastIRLDate != clock.Today(e.clock) {
		e.refreshIRLQuests()
		return
	}
	e.irl = e.irl[:0]
	for _, qs := range s.IRLQuests {
		t, ok := e.templates.IRL(qs.ID)
		if !ok {
			logger.Warning("Skipping unknown IRL quest in save", "quest_id", qs.ID)
			continue
		}
		q := NewQuest(t)
		applyState(q, qs)
		e.irl = append(e.irl, q)
	}
}

// applyState copies saved progress onto a freshly built quest, keeping
// progress within its goal bounds.
func applyState(q *Quest, qs QuestState) {
	q.Progress = qs.Progress
	q.Completed = qs.Completed
	if q.Progress > q.Goal || q.Completed {
		q.Progress = q.Goal
	}
	if q.Progress < 0 {
		q.Progress = 0
	}
}
