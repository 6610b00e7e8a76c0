package equipment

import (
	"testing"

	"github.com/chalkline-games/repquest/internal/minigame"
	"github.com/chalkline-games/repquest/internal/stats"
)

func TestLoadDefaults(t *testing.T) {
	r := NewRegistry()
	r.LoadDefaults()

	if r.Count() != 7 {
		t.Fatalf("expected 7 default machines, got %d", r.Count())
	}

	bench, ok := r.Get("bench_press")
	if !ok {
		t.Fatal("expected bench_press in defaults")
	}
	if bench.Name != "Bench Press" {
		t.Errorf("name = %s, want Bench Press", bench.Name)
	}
	if bench.Stat != stats.Strength {
		t.Errorf("stat = %s, want strength", bench.Stat)
	}
	if bench.BaseXP != 15 {
		t.Errorf("base xp = %d, want 15", bench.BaseXP)
	}
	if bench.Game != minigame.KindRhythm {
		t.Errorf("game = %s, want rhythm", bench.Game)
	}

	treadmill, ok := r.GetByName("Treadmill")
	if !ok {
		t.Fatal("expected Treadmill lookup by name")
	}
	if treadmill.Stat != stats.Endurance {
		t.Errorf("treadmill stat = %s, want endurance", treadmill.Stat)
	}
	if treadmill.Game != minigame.KindHold {
		t.Errorf("treadmill game = %s, want hold", treadmill.Game)
	}
}

func TestRegisterReplacesByID(t *testing.T) {
	r := NewRegistry()
	r.LoadDefaults()

	r.Register(&Machine{
		ID:     "bench_press",
		Name:   "Olympic Bench",
		Stat:   stats.Strength,
		BaseXP: 25,
		Game:   minigame.KindRhythm,
		Reps:   8,
	})

	if r.Count() != 7 {
		t.Errorf("replacement changed count to %d, want 7", r.Count())
	}

	m, _ := r.Get("bench_press")
	if m.Name != "Olympic Bench" {
		t.Errorf("name = %s, want Olympic Bench", m.Name)
	}

	// The old display name no longer resolves.
	if _, ok := r.GetByName("Bench Press"); ok {
		t.Error("expected stale name lookup to fail after replacement")
	}
	if _, ok := r.GetByName("Olympic Bench"); !ok {
		t.Error("expected new name lookup to succeed")
	}
}

func TestAllPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.LoadDefaults()

	all := r.All()
	if len(all) != 7 {
		t.Fatalf("expected 7 machines, got %d", len(all))
	}
	if all[0].ID != "bench_press" || all[len(all)-1].ID != "cable_machine" {
		t.Errorf("order = %s..%s, want bench_press..cable_machine",
			all[0].ID, all[len(all)-1].ID)
	}
}

func TestTrainingMachines(t *testing.T) {
	r := NewRegistry()
	r.LoadDefaults()
	r.Register(&Machine{ID: "mirror", Name: "Mirror"})

	training := r.TrainingMachines()
	if len(training) != 7 {
		t.Errorf("expected 7 training machines, got %d", len(training))
	}
	for _, m := range training {
		if !m.Trains() {
			t.Errorf("%s listed as training but trains nothing", m.ID)
		}
	}
}

func TestLaunchParameters(t *testing.T) {
	r := NewRegistry()
	r.LoadDefaults()

	cable, _ := r.Get("cable_machine")
	launch := cable.Launch()

	if launch.Equipment != "Cable Machine" {
		t.Errorf("launch equipment = %s, want Cable Machine", launch.Equipment)
	}
	if launch.Kind != minigame.KindReaction {
		t.Errorf("launch kind = %s, want reaction", launch.Kind)
	}
	if launch.KeyCount != 10 {
		t.Errorf("launch key count = %d, want 10", launch.KeyCount)
	}
}
