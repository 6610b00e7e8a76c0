package items

import (
	"fmt"

	"github.com/chalkline-games/repquest/internal/logger"
	"github.com/chalkline-games/repquest/internal/player"
)

// DefaultMaxSlots is how many distinct item stacks an inventory holds
const DefaultMaxSlots = 20

// Consumer receives item effects. *player.Player satisfies it.
type Consumer interface {
	AddXP(amount int) bool
	ApplyBuff(effect string, value float64, duration float64)
}

// Buyer pays for purchases. *player.Player satisfies it.
type Buyer interface {
	CanAfford(amount int) bool
	SpendCurrency(amount int) bool
}

// Stack is a quantity of one item
type Stack struct {
	Item     *Item
	Quantity int
}

// Inventory holds the player's items, stacked by id. Slots count distinct
// stacks, not total quantity.
type Inventory struct {
	catalog  *Catalog
	stacks   map[string]*Stack
	order    []string // item IDs in acquisition order
	maxSlots int
}

// NewInventory creates an empty inventory backed by the catalog
func NewInventory(catalog *Catalog) *Inventory {
	return &Inventory{
		catalog:  catalog,
		stacks:   make(map[string]*Stack),
		maxSlots: DefaultMaxSlots,
	}
}

// Add puts quantity of an item into the inventory. Existing stacks always
// grow; a new stack fails when every slot is taken or the id is unknown.
func (inv *Inventory) Add(itemID string, quantity int) bool {
	if quantity <= 0 {
		return false
	}
	if stack, ok := inv.stacks[itemID]; ok {
		stack.Quantity += quantity
		return true
	}
	if len(inv.stacks) >= inv.maxSlots {
		return false
	}
	item, ok := inv.catalog.Get(itemID)
	if !ok {
		return false
	}
	inv.stacks[itemID] = &Stack{Item: item, Quantity: quantity}
	inv.order = append(inv.order, itemID)
	return true
}

// Remove takes quantity of an item out of the inventory. Fails without
// changing anything if the stack is missing or too small.
func (inv *Inventory) Remove(itemID string, quantity int) bool {
	stack, ok := inv.stacks[itemID]
	if !ok || quantity <= 0 || stack.Quantity < quantity {
		return false
	}
	stack.Quantity -= quantity
	if stack.Quantity <= 0 {
		inv.dropStack(itemID)
	}
	return true
}

// dropStack deletes an emptied stack, preserving acquisition order
func (inv *Inventory) dropStack(itemID string) {
	delete(inv.stacks, itemID)
	for i, id := range inv.order {
		if id == itemID {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			return
		}
	}
}

// Use consumes one of an item and applies its effect to the consumer.
// Returns the item used so callers can report it.
func (inv *Inventory) Use(itemID string, c Consumer) (*Item, error) {
	stack, ok := inv.stacks[itemID]
	if !ok {
		return nil, fmt.Errorf("item %s is not in the inventory", itemID)
	}

	item := stack.Item
	switch item.Effect {
	case EffectInstantXP:
		c.AddXP(int(item.Magnitude))
	case player.EffectStrengthXPBoost, player.EffectSpeedBoost, player.EffectAllXPBoost:
		c.ApplyBuff(item.Effect, item.Magnitude, item.Duration)
	default:
		return nil, fmt.Errorf("%s cannot be used", item.Name)
	}

	inv.Remove(itemID, 1)
	return item, nil
}

// Purchase buys one of an item: funds first, then a free slot, then the
// exchange. A full inventory refuses the sale even when the item would
// stack.
func (inv *Inventory) Purchase(item *Item, buyer Buyer) error {
	if !buyer.CanAfford(item.Price) {
		return fmt.Errorf("not enough money, need $%d", item.Price)
	}
	if inv.IsFull() {
		return fmt.Errorf("inventory is full")
	}
	if !buyer.SpendCurrency(item.Price) {
		return fmt.Errorf("not enough money, need $%d", item.Price)
	}
	inv.Add(item.ID, 1)
	return nil
}

// Get returns the stack for an item id
func (inv *Inventory) Get(itemID string) (*Stack, bool) {
	stack, ok := inv.stacks[itemID]
	return stack, ok
}

// Quantity returns how many of an item the inventory holds
func (inv *Inventory) Quantity(itemID string) int {
	if stack, ok := inv.stacks[itemID]; ok {
		return stack.Quantity
	}
	return 0
}

// Stacks returns every stack in acquisition order
func (inv *Inventory) Stacks() []*Stack {
	result := make([]*Stack, 0, len(inv.order))
	for _, id := range inv.order {
		result = append(result, inv.stacks[id])
	}
	return result
}

// SlotsUsed returns how many slots are occupied
func (inv *Inventory) SlotsUsed() int {
	return len(inv.stacks)
}

// MaxSlots returns the slot capacity
func (inv *Inventory) MaxSlots() int {
	return inv.maxSlots
}

// IsFull reports whether every slot holds a stack
func (inv *Inventory) IsFull() bool {
	return len(inv.stacks) >= inv.maxSlots
}

// ItemState is the persisted form of one stack
type ItemState struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Snapshot captures the inventory for saving, in acquisition order
func (inv *Inventory) Snapshot() []ItemState {
	states := make([]ItemState, 0, len(inv.order))
	for _, id := range inv.order {
		states = append(states, ItemState{ID: id, Quantity: inv.stacks[id].Quantity})
	}
	return states
}

// Restore replaces the inventory contents from a snapshot. Ids with no
// catalog entry are skipped.
func (inv *Inventory) Restore(states []ItemState) {
	inv.stacks = make(map[string]*Stack)
	inv.order = inv.order[:0]
	for _, state := range states {
		if state.Quantity <= 0 {
			continue
		}
		if _, ok := inv.catalog.Get(state.ID); !ok {
			logger.Warning("Skipping unknown item in save", "item_id", state.ID)
			continue
		}
		inv.Add(state.ID, state.Quantity)
	}
}
