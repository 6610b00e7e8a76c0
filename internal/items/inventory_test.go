package items

import (
	"fmt"
	"testing"

	"github.com/chalkline-games/repquest/internal/player"
)

func newTestInventory() *Inventory {
	return NewInventory(newTestCatalog())
}

func TestAddStacksById(t *testing.T) {
	inv := newTestInventory()

	if !inv.Add("protein_shake", 1) {
		t.Fatal("Add failed on empty inventory")
	}
	if !inv.Add("protein_shake", 2) {
		t.Fatal("Add failed on existing stack")
	}

	if got := inv.Quantity("protein_shake"); got != 3 {
		t.Errorf("quantity = %d, want 3", got)
	}
	if got := inv.SlotsUsed(); got != 1 {
		t.Errorf("slots used = %d, want 1", got)
	}
}

func TestAddUnknownItem(t *testing.T) {
	inv := newTestInventory()

	if inv.Add("unobtainium", 1) {
		t.Error("Add succeeded for an item not in the catalog")
	}
}

func TestAddWhenFull(t *testing.T) {
	catalog := newTestCatalog()
	for i := 0; i < DefaultMaxSlots; i++ {
		catalog.Register(&Item{ID: fmt.Sprintf("filler_%d", i), Name: "Filler"})
	}
	inv := NewInventory(catalog)
	for i := 0; i < DefaultMaxSlots; i++ {
		if !inv.Add(fmt.Sprintf("filler_%d", i), 1) {
			t.Fatalf("failed to fill slot %d", i)
		}
	}

	if inv.Add("protein_shake", 1) {
		t.Error("new stack added to a full inventory")
	}
	if !inv.Add("filler_3", 1) {
		t.Error("existing stack refused to grow in a full inventory")
	}
	if got := inv.Quantity("filler_3"); got != 2 {
		t.Errorf("filler_3 quantity = %d, want 2", got)
	}
}

func TestRemove(t *testing.T) {
	inv := newTestInventory()
	inv.Add("creatine", 3)

	if inv.Remove("creatine", 5) {
		t.Error("removed more than held")
	}
	if got := inv.Quantity("creatine"); got != 3 {
		t.Errorf("quantity = %d after failed remove, want 3", got)
	}

	if !inv.Remove("creatine", 2) {
		t.Error("partial remove failed")
	}
	if got := inv.Quantity("creatine"); got != 1 {
		t.Errorf("quantity = %d, want 1", got)
	}

	if !inv.Remove("creatine", 1) {
		t.Error("final remove failed")
	}
	if inv.SlotsUsed() != 0 {
		t.Error("emptied stack still occupies a slot")
	}

	if inv.Remove("creatine", 1) {
		t.Error("removed from a missing stack")
	}
}

func TestUseInstantXP(t *testing.T) {
	inv := newTestInventory()
	inv.Add("energy_drink", 2)
	p := player.New("Tester", 0, 0, 100)

	item, err := inv.Use("energy_drink", p)
	if err != nil {
		t.Fatalf("Use failed: %v", err)
	}
	if item.ID != "energy_drink" {
		t.Errorf("used item = %q, want energy_drink", item.ID)
	}
	if p.XP != 25 {
		t.Errorf("player XP = %d, want 25", p.XP)
	}
	if got := inv.Quantity("energy_drink"); got != 1 {
		t.Errorf("quantity = %d after use, want 1", got)
	}
}

func TestUseBuffItem(t *testing.T) {
	inv := newTestInventory()
	inv.Add("protein_shake", 1)
	p := player.New("Tester", 0, 0, 100)

	if _, err := inv.Use("protein_shake", p); err != nil {
		t.Fatalf("Use failed: %v", err)
	}
	if !p.HasBuff(player.EffectStrengthXPBoost) {
		t.Error("strength XP buff not applied")
	}
	if inv.SlotsUsed() != 0 {
		t.Error("last item use left a stack behind")
	}
}

func TestUseMissingItem(t *testing.T) {
	inv := newTestInventory()
	p := player.New("Tester", 0, 0, 100)

	if _, err := inv.Use("creatine", p); err == nil {
		t.Error("Use succeeded for an item not held")
	}
}

func TestUseUnusableItem(t *testing.T) {
	catalog := newTestCatalog()
	catalog.Register(&Item{ID: "gym_towel", Name: "Gym Towel", Effect: "decorative"})
	inv := NewInventory(catalog)
	inv.Add("gym_towel", 1)
	p := player.New("Tester", 0, 0, 100)

	if _, err := inv.Use("gym_towel", p); err == nil {
		t.Error("Use succeeded for an item with no usable effect")
	}
	if got := inv.Quantity("gym_towel"); got != 1 {
		t.Errorf("quantity = %d, want 1 (not consumed)", got)
	}
}

func TestPurchase(t *testing.T) {
	inv := newTestInventory()
	p := player.New("Tester", 0, 0, 100)
	protein, _ := inv.catalog.Get("protein_shake")

	if err := inv.Purchase(protein, p); err != nil {
		t.Fatalf("Purchase failed: %v", err)
	}
	if p.Currency != 50 {
		t.Errorf("currency = %d after purchase, want 50", p.Currency)
	}
	if got := inv.Quantity("protein_shake"); got != 1 {
		t.Errorf("quantity = %d, want 1", got)
	}
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	inv := newTestInventory()
	p := player.New("Tester", 0, 0, 40)
	protein, _ := inv.catalog.Get("protein_shake")

	if err := inv.Purchase(protein, p); err == nil {
		t.Error("Purchase succeeded without funds")
	}
	if p.Currency != 40 {
		t.Errorf("currency = %d after failed purchase, want 40", p.Currency)
	}
	if inv.SlotsUsed() != 0 {
		t.Error("failed purchase added an item")
	}
}

func TestPurchaseWhenFull(t *testing.T) {
	catalog := newTestCatalog()
	for i := 0; i < DefaultMaxSlots; i++ {
		catalog.Register(&Item{ID: fmt.Sprintf("filler_%d", i), Name: "Filler"})
	}
	inv := NewInventory(catalog)
	for i := 0; i < DefaultMaxSlots; i++ {
		inv.Add(fmt.Sprintf("filler_%d", i), 1)
	}
	p := player.New("Tester", 0, 0, 1000)

	// The shop refuses a full inventory even for a stackable item
	filler, _ := catalog.Get("filler_0")
	if err := inv.Purchase(filler, p); err == nil {
		t.Error("Purchase succeeded with every slot taken")
	}
	if p.Currency != 1000 {
		t.Errorf("currency = %d after refused purchase, want 1000", p.Currency)
	}
}

func TestStacksOrder(t *testing.T) {
	inv := newTestInventory()
	inv.Add("creatine", 1)
	inv.Add("protein_shake", 2)
	inv.Add("creatine", 1)

	stacks := inv.Stacks()
	if len(stacks) != 2 {
		t.Fatalf("stack count = %d, want 2", len(stacks))
	}
	if stacks[0].Item.ID != "creatine" || stacks[1].Item.ID != "protein_shake" {
		t.Errorf("stack order = [%q, %q], want [creatine, protein_shake]",
			stacks[0].Item.ID, stacks[1].Item.ID)
	}
	if stacks[0].Quantity != 2 {
		t.Errorf("creatine quantity = %d, want 2", stacks[0].Quantity)
	}
}

func TestInventorySnapshotRestore(t *testing.T) {
	inv := newTestInventory()
	inv.Add("energy_drink", 3)
	inv.Add("pre_workout", 1)

	snap := inv.Snapshot()

	restored := newTestInventory()
	restored.Restore(snap)

	if got := restored.Quantity("energy_drink"); got != 3 {
		t.Errorf("restored energy_drink = %d, want 3", got)
	}
	if got := restored.Quantity("pre_workout"); got != 1 {
		t.Errorf("restored pre_workout = %d, want 1", got)
	}
	if got := restored.SlotsUsed(); got != 2 {
		t.Errorf("restored slots = %d, want 2", got)
	}
}

func TestRestoreSkipsUnknownItems(t *testing.T) {
	inv := newTestInventory()
	inv.Restore([]ItemState{
		{ID: "discontinued_supplement", Quantity: 5},
		{ID: "creatine", Quantity: 2},
		{ID: "protein_shake", Quantity: 0},
	})

	if got := inv.SlotsUsed(); got != 1 {
		t.Errorf("slots = %d, want 1", got)
	}
	if got := inv.Quantity("creatine"); got != 2 {
		t.Errorf("creatine = %d, want 2", got)
	}
}
