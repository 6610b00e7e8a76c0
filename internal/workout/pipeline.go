// Package workout applies mini-game results and IRL quest completions
// to player progression, the quest engine, the coach, and the live
// feed, in one place.
package workout

import (
	"github.com/chalkline-games/repquest/internal/equipment"
	"github.com/chalkline-games/repquest/internal/minigame"
	"github.com/chalkline-games/repquest/internal/player"
	"github.com/chalkline-games/repquest/internal/quest"
	"github.com/chalkline-games/repquest/internal/stats"
	"github.com/chalkline-games/repquest/internal/trainer"
)

const (
	// sessionPayout is the flat money for finishing any session,
	// win or lose.
	sessionPayout = 5

	// streakCalloutDays is the streak length that earns a coach
	// shout-out after an IRL completion.
	streakCalloutDays = 3
)

// Notifier receives progression events for the live feed. All methods
// are called from the game loop goroutine.
type Notifier interface {
	SessionComplete(equipment string, score int, success bool, xp int)
	QuestComplete(name string, xp, currency int, irl bool)
	LevelUp(level int)
	StreakUpdate(current, best int)
}

// QuestReward is one claimed quest and what it paid out
type QuestReward struct {
	Name     string
	XP       int
	Currency int
	IRL      bool
}

// Outcome summarizes everything one application changed, for the UI to
// turn into notifications.
type Outcome struct {
	XPGained       int // session XP including the machine's base XP
	CurrencyGained int
	LeveledUp      bool
	NewLevel       int
	StatTrained    stats.Name
	Quests         []QuestReward
}

// Pipeline wires a session result through every system that reacts to
// it. The zero-value Notifier (nil) disables feed events.
type Pipeline struct {
	player   *player.Player
	quests   *quest.Engine
	machines *equipment.Registry
	coach    *trainer.Trainer
	notifier Notifier
}

// New creates a reward pipeline over the given systems
func New(p *player.Player, q *quest.Engine, machines *equipment.Registry, coach *trainer.Trainer) *Pipeline {
	return &Pipeline{
		player:   p,
		quests:   q,
		machines: machines,
		coach:    coach,
	}
}

// SetNotifier attaches a feed notifier
func (pl *Pipeline) SetNotifier(n Notifier) {
	pl.notifier = n
}

// ApplySession applies a finished mini-game: XP with the machine's base
// added, a stat point, quest progress, quest claims, and the flat
// session payout.
func (pl *Pipeline) ApplySession(result minigame.Result) Outcome {
	out := Outcome{CurrencyGained: sessionPayout}

	xp := result.XPReward
	machine, known := pl.machines.GetByName(result.Equipment)
	if known {
		xp += machine.BaseXP
	}
	out.XPGained = xp

	var pending []*quest.Quest

	if pl.player.AddXP(xp) {
		out.LeveledUp = true
		out.NewLevel = pl.player.Level
		pl.coach.OnLevelUp(pl.player.Level)
		pending = append(pending, pl.quests.OnLevelUp(pl.player.Level)...)
		if pl.notifier != nil {
			pl.notifier.LevelUp(pl.player.Level)
		}
	}

	if known && machine.Trains() {
		pl.player.AddStat(machine.Stat, 1)
		out.StatTrained = machine.Stat
		pending = append(pending, pl.quests.OnStatChange(machine.Stat, pl.player.Stats.Get(machine.Stat))...)
	}

	pending = append(pending, pl.quests.OnEquipmentUse(result.Equipment)...)
	pl.claimAll(pending, &out)

	pl.player.AddCurrency(sessionPayout)
	pl.player.Statistics.RecordWorkout(result.Equipment, result.Perfect)

	pl.coach.OnWorkoutResult(result.Success)
	if pl.notifier != nil {
		pl.notifier.SessionComplete(result.Equipment, result.Score, result.Success, xp)
	}

	return out
}

// ApplyIRLCompletion marks the IRL quest at index done and claims it
// with the streak bonus. Returns false when the index is out of range
// or the quest was already done today.
func (pl *Pipeline) ApplyIRLCompletion(index int) (Outcome, bool) {
	q, ok := pl.quests.CompleteIRLQuest(index)
	if !ok {
		return Outcome{}, false
	}

	var out Outcome
	pl.claimAll([]*quest.Quest{q}, &out)

	pl.player.Statistics.RecordStreak(pl.quests.CurrentStreak())
	if pl.quests.CurrentStreak() >= streakCalloutDays {
		pl.coach.QueueStreak()
	}
	if pl.notifier != nil {
		pl.notifier.StreakUpdate(pl.quests.CurrentStreak(), pl.quests.BestStreak())
	}

	return out, true
}

// claimAll pays out completed quests in order. Claim XP can level the
// player up, which can complete a level quest, so newly finished quests
// join the end of the queue until nothing new completes.
func (pl *Pipeline) claimAll(pending []*quest.Quest, out *Outcome) {
	for i := 0; i < len(pending); i++ {
		q := pending[i]

		before := pl.player.Level
		xp, currency := pl.quests.ClaimRewards(q, pl.player)
		out.Quests = append(out.Quests, QuestReward{
			Name:     q.Name,
			XP:       xp,
			Currency: currency,
			IRL:      q.IsIRL(),
		})

		pl.player.Statistics.RecordQuestCompleted(q.IsIRL())
		pl.coach.OnQuestComplete(q.IsIRL())
		if pl.notifier != nil {
			pl.notifier.QuestComplete(q.Name, xp, currency, q.IsIRL())
		}

		if pl.player.Level > before {
			out.LeveledUp = true
			out.NewLevel = pl.player.Level
			pl.coach.OnLevelUp(pl.player.Level)
			pending = append(pending, pl.quests.OnLevelUp(pl.player.Level)...)
			if pl.notifier != nil {
				pl.notifier.LevelUp(pl.player.Level)
			}
		}
	}
}
