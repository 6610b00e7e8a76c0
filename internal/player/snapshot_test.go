package player

import (
	"testing"

	"github.com/chalkline-games/repquest/internal/stats"
)

func TestSnapshotRoundTrip(t *testing.T) {
	p := newTestPlayer()
	p.AddXP(120)
	p.AddStat(stats.Strength, 11)
	p.AddCurrency(65)
	p.X, p.Y = 12, 7
	p.Direction = "left"
	p.Statistics.RecordWorkout("Bench Press", true)

	snap := p.Snapshot()

	restored := New("", 0, 0, 0)
	restored.Restore(snap)

	if restored.Name != "Tester" {
		t.Errorf("name = %s, want Tester", restored.Name)
	}
	if restored.X != 12 || restored.Y != 7 {
		t.Errorf("position = (%d,%d), want (12,7)", restored.X, restored.Y)
	}
	if restored.Direction != "left" {
		t.Errorf("direction = %s, want left", restored.Direction)
	}
	if restored.Level != 2 || restored.XP != 20 {
		t.Errorf("level/xp = %d/%d, want 2/20", restored.Level, restored.XP)
	}
	if restored.Currency != 165 {
		t.Errorf("currency = %d, want 165", restored.Currency)
	}
	if restored.Stats.Strength != 12 {
		t.Errorf("strength = %d, want 12", restored.Stats.Strength)
	}
	if restored.Statistics.GetTotalWorkouts() != 1 {
		t.Errorf("workouts = %d, want 1", restored.Statistics.GetTotalWorkouts())
	}
}

func TestRestoreRecomputesMuscleLevel(t *testing.T) {
	snap := Snapshot{
		Name:        "Tester",
		Stats:       stats.Block{Strength: 22, Endurance: 1, Speed: 1},
		Level:       3,
		MuscleLevel: 1, // stale value in the save
	}

	p := New("", 0, 0, 0)
	p.Restore(snap)

	if p.MuscleLevel != 4 {
		t.Errorf("muscle level = %d, want 4 derived from strength", p.MuscleLevel)
	}
}

func TestRestoreClampsStamina(t *testing.T) {
	p := New("", 0, 0, 0)
	p.Restore(Snapshot{
		Name:    "Tester",
		Stats:   stats.Block{Strength: 1, Endurance: 1, Speed: 1},
		Level:   1,
		Stamina: 9999,
	})

	if p.Stamina != p.MaxStamina() {
		t.Errorf("stamina = %f, want clamp to %f", p.Stamina, p.MaxStamina())
	}
}

func TestRestoreDefaultsMissingStamina(t *testing.T) {
	p := New("", 0, 0, 0)
	p.Restore(Snapshot{
		Name:  "Tester",
		Stats: stats.Block{Strength: 1, Endurance: 4, Speed: 1},
		Level: 2,
	})

	if p.Stamina != p.MaxStamina() {
		t.Errorf("stamina = %f, want full %f for old saves", p.Stamina, p.MaxStamina())
	}
}
