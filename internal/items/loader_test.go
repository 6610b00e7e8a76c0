package items

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chalkline-games/repquest/internal/player"
)

func writeTestYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test yaml: %v", err)
	}
	return path
}

func TestLoadFromYAML(t *testing.T) {
	path := writeTestYAML(t, `
items:
  bcaa:
    name: "BCAA Mix"
    description: "+50% Strength XP for 1 min"
    price: 25
    effect: strength_xp_boost
    value: 1.5
    duration: 60
  caffeine_gum:
    name: "Caffeine Gum"
    description: "Instant +10 XP"
    price: 10
    effect: instant_xp
    value: 10
`)

	c := newTestCatalog()
	if err := c.LoadFromYAML(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Count() != 6 {
		t.Fatalf("catalog count = %d, want 6", c.Count())
	}

	bcaa, ok := c.Get("bcaa")
	if !ok {
		t.Fatal("bcaa not loaded")
	}
	if bcaa.Effect != player.EffectStrengthXPBoost {
		t.Errorf("effect = %q, want %q", bcaa.Effect, player.EffectStrengthXPBoost)
	}
	if bcaa.Magnitude != 1.5 || bcaa.Duration != 60 {
		t.Errorf("bcaa = %vx for %vs, want 1.5x for 60s", bcaa.Magnitude, bcaa.Duration)
	}

	gum, _ := c.Get("caffeine_gum")
	if !gum.IsInstant() || gum.Magnitude != 10 {
		t.Errorf("caffeine_gum = effect %q magnitude %v, want instant_xp, 10", gum.Effect, gum.Magnitude)
	}
}

func TestLoadFromYAMLOverridesDefaults(t *testing.T) {
	path := writeTestYAML(t, `
items:
  energy_drink:
    name: "Energy Drink"
    description: "Instant +40 XP"
    price: 45
    effect: instant_xp
    value: 40
`)

	c := newTestCatalog()
	if err := c.LoadFromYAML(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	drink, _ := c.Get("energy_drink")
	if drink.Price != 45 || drink.Magnitude != 40 {
		t.Errorf("energy_drink = $%d, %v XP, want $45, 40 XP", drink.Price, drink.Magnitude)
	}
	if c.Count() != 4 {
		t.Errorf("catalog count = %d after override, want 4", c.Count())
	}
}

func TestLoadFromYAMLFileNotExists(t *testing.T) {
	c := NewCatalog()
	if err := c.LoadFromYAML("/nonexistent/items.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromYAMLInvalid(t *testing.T) {
	path := writeTestYAML(t, "items: [broken")

	c := NewCatalog()
	if err := c.LoadFromYAML(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
