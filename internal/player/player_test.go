package player

import (
	"testing"

	"github.com/chalkline-games/repquest/internal/leveling"
	"github.com/chalkline-games/repquest/internal/stats"
)

func newTestPlayer() *Player {
	return New("Tester", 5, 5, 100)
}

func TestNewPlayerDefaults(t *testing.T) {
	p := newTestPlayer()

	if p.Level != 1 {
		t.Errorf("level = %d, want 1", p.Level)
	}
	if p.Currency != 100 {
		t.Errorf("currency = %d, want 100", p.Currency)
	}
	if p.Stats.Strength != 1 || p.Stats.Endurance != 1 || p.Stats.Speed != 1 {
		t.Errorf("stats = %+v, want all 1", p.Stats)
	}
	if p.MuscleLevel != 1 {
		t.Errorf("muscle level = %d, want 1", p.MuscleLevel)
	}
	if p.Stamina != p.MaxStamina() {
		t.Errorf("stamina = %f, want full %f", p.Stamina, p.MaxStamina())
	}
}

func TestAddXPLevelsUp(t *testing.T) {
	p := newTestPlayer()

	if leveled := p.AddXP(50); leveled {
		t.Error("50 XP should not reach level 2")
	}
	if leveled := p.AddXP(50); !leveled {
		t.Error("100 XP total should reach level 2")
	}
	if p.Level != 2 {
		t.Errorf("level = %d, want 2", p.Level)
	}
	if p.XP != 0 {
		t.Errorf("xp after level up = %d, want 0 carry", p.XP)
	}
}

func TestAddXPCarriesOverflow(t *testing.T) {
	p := newTestPlayer()

	p.AddXP(120)
	if p.Level != 2 {
		t.Fatalf("level = %d, want 2", p.Level)
	}
	if p.XP != 20 {
		t.Errorf("xp = %d, want 20 carried over", p.XP)
	}
}

func TestAddXPMultipleLevels(t *testing.T) {
	p := newTestPlayer()

	// 100 for level 2 plus 250 for level 3.
	if leveled := p.AddXP(350); !leveled {
		t.Error("expected level up")
	}
	if p.Level != 3 {
		t.Errorf("level = %d, want 3", p.Level)
	}
	if p.XP != 0 {
		t.Errorf("xp = %d, want 0", p.XP)
	}
}

func TestAddXPStopsAtCap(t *testing.T) {
	p := newTestPlayer()
	p.Level = leveling.MaxPlayerLevel

	if leveled := p.AddXP(100000); leveled {
		t.Error("capped player should not level")
	}
	if p.Level != leveling.MaxPlayerLevel {
		t.Errorf("level = %d, want cap %d", p.Level, leveling.MaxPlayerLevel)
	}
	if p.XP != 100000 {
		t.Errorf("xp should still accumulate at cap, got %d", p.XP)
	}
}

func TestAddXPWithBoost(t *testing.T) {
	p := newTestPlayer()
	p.ApplyBuff(EffectAllXPBoost, 1.25, 60)

	p.AddXP(100)
	// 100 * 1.25 = 125: level 2 with 25 carried.
	if p.Level != 2 {
		t.Errorf("level = %d, want 2", p.Level)
	}
	if p.XP != 25 {
		t.Errorf("xp = %d, want 25", p.XP)
	}
}

func TestAddXPBoostsStack(t *testing.T) {
	p := newTestPlayer()
	p.ApplyBuff(EffectStrengthXPBoost, 1.5, 60)
	p.ApplyBuff(EffectAllXPBoost, 1.25, 60)

	p.AddXP(100)
	// 100 * 1.5 = 150, then 150 * 1.25 = 187 (truncated).
	if p.Level != 2 {
		t.Errorf("level = %d, want 2", p.Level)
	}
	if p.XP != 87 {
		t.Errorf("xp = %d, want 87", p.XP)
	}
}

func TestAddStatUpdatesMuscleLevel(t *testing.T) {
	p := newTestPlayer()

	p.AddStat(stats.Strength, 4)
	if p.Stats.Strength != 5 {
		t.Fatalf("strength = %d, want 5", p.Stats.Strength)
	}
	if p.MuscleLevel != 2 {
		t.Errorf("muscle level = %d, want 2", p.MuscleLevel)
	}

	// Endurance has no effect on physique.
	p.AddStat(stats.Endurance, 50)
	if p.MuscleLevel != 2 {
		t.Errorf("muscle level = %d, want 2 after endurance gain", p.MuscleLevel)
	}
}

func TestCurrency(t *testing.T) {
	p := newTestPlayer()

	p.AddCurrency(50)
	if p.Currency != 150 {
		t.Errorf("currency = %d, want 150", p.Currency)
	}

	if !p.SpendCurrency(100) {
		t.Error("expected spend of 100 to succeed")
	}
	if p.Currency != 50 {
		t.Errorf("currency = %d, want 50", p.Currency)
	}

	if p.SpendCurrency(51) {
		t.Error("expected overdraw to fail")
	}
	if p.Currency != 50 {
		t.Errorf("currency = %d, want 50 after failed spend", p.Currency)
	}
}

func TestBuffExpires(t *testing.T) {
	p := newTestPlayer()
	p.ApplyBuff(EffectSpeedBoost, 1.3, 1.0)

	if !p.HasBuff(EffectSpeedBoost) {
		t.Fatal("expected buff active")
	}

	p.Update(0.5)
	if !p.HasBuff(EffectSpeedBoost) {
		t.Error("buff expired early")
	}

	p.Update(0.6)
	if p.HasBuff(EffectSpeedBoost) {
		t.Error("buff should have expired")
	}
}

func TestActiveBuffsView(t *testing.T) {
	p := newTestPlayer()
	p.ApplyBuff(EffectAllXPBoost, 1.25, 300)
	p.ApplyBuff(EffectSpeedBoost, 1.3, 120)

	views := p.ActiveBuffs()
	if len(views) != 2 {
		t.Fatalf("expected 2 active buffs, got %d", len(views))
	}
	// Display order is fixed regardless of application order.
	if views[0].Effect != EffectSpeedBoost {
		t.Errorf("first buff = %s, want speed boost", views[0].Effect)
	}
}

func TestInteractCooldown(t *testing.T) {
	p := newTestPlayer()

	if !p.CanInteract() {
		t.Fatal("expected fresh player to be able to interact")
	}

	p.SetInteractCooldown(0.5)
	if p.CanInteract() {
		t.Error("expected cooldown to block interaction")
	}

	p.Update(0.6)
	if !p.CanInteract() {
		t.Error("expected cooldown to expire")
	}
}
