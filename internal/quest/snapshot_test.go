package quest

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/chalkline-games/repquest/internal/clock"
)

func TestSnapshotRoundTrip(t *testing.T) {
	e, clk := newTestEngine()
	useTimes(e, "Bench Press", 2)
	e.OnEquipmentUse("Treadmill")
	e.CompleteIRLQuest(1)

	snap := e.Snapshot()

	restored := NewEngine(DefaultTemplates(), clk, rand.New(rand.NewSource(99)))
	restored.Restore(snap)

	gotIDs, wantIDs := activeIDs(restored), activeIDs(e)
	if len(gotIDs) != len(wantIDs) {
		t.Fatalf("restored active = %v, want %v", gotIDs, wantIDs)
	}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Errorf("restored active[%d] = %q, want %q", i, gotIDs[i], wantIDs[i])
		}
	}

	bench := restored.ActiveQuests()[0]
	if bench.Progress != 2 {
		t.Errorf("restored bench_beginner progress = %d, want 2", bench.Progress)
	}
	tour := restored.ActiveQuests()[1]
	if tour.Progress != 2 {
		t.Errorf("restored gym_tour progress = %d, want 2", tour.Progress)
	}

	if restored.CurrentStreak() != 1 || restored.BestStreak() != 1 {
		t.Errorf("restored streaks = %d/%d, want 1/1", restored.CurrentStreak(), restored.BestStreak())
	}
	if restored.LastIRLDate() != clock.Today(clk) {
		t.Errorf("restored LastIRLDate = %q, want %q", restored.LastIRLDate(), clock.Today(clk))
	}

	gotIRL, wantIRL := restored.IRLQuests(), e.IRLQuests()
	if len(gotIRL) != len(wantIRL) {
		t.Fatalf("restored IRL count = %d, want %d", len(gotIRL), len(wantIRL))
	}
	for i := range wantIRL {
		if gotIRL[i].ID != wantIRL[i].ID {
			t.Errorf("restored IRL[%d] = %q, want %q", i, gotIRL[i].ID, wantIRL[i].ID)
		}
		if gotIRL[i].Completed != wantIRL[i].Completed {
			t.Errorf("restored IRL[%d].Completed = %v, want %v", i, gotIRL[i].Completed, wantIRL[i].Completed)
		}
	}

	if !restored.HasVisited("Bench Press") || !restored.HasVisited("Treadmill") {
		t.Error("restored visited set missing machines")
	}
	if restored.HasVisited("Dumbbells") {
		t.Error("restored visited set contains an unused machine")
	}
}

func TestRestoreDayRollover(t *testing.T) {
	e, clk := newTestEngine()
	e.CompleteIRLQuest(0)
	e.CompleteIRLQuest(1)
	savedDate := e.LastIRLDate()

	snap := e.Snapshot()
	clk.Advance(24 * time.Hour)

	restored := NewEngine(DefaultTemplates(), clk, rand.New(rand.NewSource(99)))
	restored.Restore(snap)

	irl := restored.IRLQuests()
	if len(irl) != 3 {
		t.Fatalf("IRL count after rollover = %d, want 3", len(irl))
	}
	seen := make(map[string]bool)
	for _, q := range irl {
		if q.Completed || q.Progress != 0 {
			t.Errorf("rolled-over IRL quest %q carries old progress", q.ID)
		}
		if seen[q.ID] {
			t.Errorf("duplicate IRL quest %q after rollover", q.ID)
		}
		seen[q.ID] = true
	}

	// The completion date is part of streak state and survives the reroll
	if restored.LastIRLDate() != savedDate {
		t.Errorf("LastIRLDate = %q after rollover, want %q", restored.LastIRLDate(), savedDate)
	}
	if restored.CurrentStreak() != 1 {
		t.Errorf("streak = %d after rollover, want 1", restored.CurrentStreak())
	}
}

func TestRestoreNoIRLDateResamples(t *testing.T) {
	e, clk := newTestEngine()
	snap := e.Snapshot()
	if snap.LastIRLDate != "" {
		t.Fatalf("fresh engine LastIRLDate = %q, want empty", snap.LastIRLDate)
	}

	restored := NewEngine(DefaultTemplates(), clk, rand.New(rand.NewSource(5)))
	restored.Restore(snap)

	if got := len(restored.IRLQuests()); got != 3 {
		t.Errorf("IRL count = %d, want 3", got)
	}
}

func TestRestoreSkipsUnknownQuests(t *testing.T) {
	e, clk := newTestEngine()
	e.CompleteIRLQuest(0)
	snap := e.Snapshot()

	snap.ActiveQuests = append([]QuestState{{ID: "mystery_machine", Progress: 2}}, snap.ActiveQuests...)
	snap.IRLQuests = append(snap.IRLQuests, QuestState{ID: "fake_daily"})

	restored := NewEngine(DefaultTemplates(), clk, rand.New(rand.NewSource(99)))
	restored.Restore(snap)

	ids := activeIDs(restored)
	want := []string{"bench_beginner", "gym_tour"}
	if len(ids) != len(want) || ids[0] != want[0] || ids[1] != want[1] {
		t.Errorf("active after restore = %v, want %v", ids, want)
	}
	if got := len(restored.IRLQuests()); got != 3 {
		t.Errorf("IRL count = %d, want 3 (unknown id skipped)", got)
	}
}

func TestRestoreDropsClaimedQuests(t *testing.T) {
	e, clk := newTestEngine()
	snap := e.Snapshot()
	snap.CompletedIDs = []string{"bench_beginner"}

	restored := NewEngine(DefaultTemplates(), clk, rand.New(rand.NewSource(99)))
	restored.Restore(snap)

	ids := activeIDs(restored)
	if len(ids) != 1 || ids[0] != "gym_tour" {
		t.Errorf("active = %v, want [gym_tour]", ids)
	}
	if !restored.IsCompleted("bench_beginner") {
		t.Error("bench_beginner not marked completed after restore")
	}
}

func TestRestoreClampsProgress(t *testing.T) {
	e, clk := newTestEngine()
	snap := e.Snapshot()
	snap.ActiveQuests = []QuestState{
		{ID: "bench_beginner", Progress: 99},
		{ID: "gym_tour", Progress: -5},
	}

	restored := NewEngine(DefaultTemplates(), clk, rand.New(rand.NewSource(99)))
	restored.Restore(snap)

	bench := restored.ActiveQuests()[0]
	if bench.Progress != 3 || bench.Completed {
		t.Errorf("bench_beginner = progress %d completed %v, want 3, false", bench.Progress, bench.Completed)
	}
	tour := restored.ActiveQuests()[1]
	if tour.Progress != 0 {
		t.Errorf("gym_tour progress = %d, want 0", tour.Progress)
	}
}

func TestSnapshotSetsAreSorted(t *testing.T) {
	e, _ := newTestEngine()
	p := &fakeProgress{}

	e.OnEquipmentUse("Treadmill")
	e.OnEquipmentUse("Bench Press")
	e.OnEquipmentUse("Dumbbells")
	for _, q := range useTimes(e, "Bench Press", 2) {
		e.ClaimRewards(q, p)
	}

	snap := e.Snapshot()
	want := []string{"Bench Press", "Dumbbells", "Treadmill"}
	if len(snap.VisitedEquipment) != len(want) {
		t.Fatalf("VisitedEquipment = %v, want %v", snap.VisitedEquipment, want)
	}
	for i, name := range want {
		if snap.VisitedEquipment[i] != name {
			t.Errorf("VisitedEquipment[%d] = %q, want %q", i, snap.VisitedEquipment[i], name)
		}
	}
}

func TestSnapshotJSON(t *testing.T) {
	e, _ := newTestEngine()
	useTimes(e, "Bench Press", 2)
	e.CompleteIRLQuest(0)
	snap := e.Snapshot()

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.CurrentStreak != snap.CurrentStreak || decoded.LastIRLDate != snap.LastIRLDate {
		t.Errorf("decoded streak state = %d %q, want %d %q",
			decoded.CurrentStreak, decoded.LastIRLDate, snap.CurrentStreak, snap.LastIRLDate)
	}
	if len(decoded.ActiveQuests) != len(snap.ActiveQuests) {
		t.Errorf("decoded active count = %d, want %d", len(decoded.ActiveQuests), len(snap.ActiveQuests))
	}
}
