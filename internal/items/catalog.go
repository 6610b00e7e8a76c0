package items

import (
	"sync"
)

// Catalog holds all purchasable items
type Catalog struct {
	mu    sync.RWMutex
	items map[string]*Item // itemID -> Item
	order []string         // item IDs in registration order
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		items: make(map[string]*Item),
	}
}

// Register adds an item, replacing any existing item with the same ID.
func (c *Catalog) Register(item *Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[item.ID]; !exists {
		c.order = append(c.order, item.ID)
	}
	c.items[item.ID] = item
}

// LoadDefaults registers the built-in shop catalog.
func (c *Catalog) LoadDefaults() {
	for _, item := range DefaultItems() {
		c.Register(item)
	}
}

// Get returns an item by ID
func (c *Catalog) Get(id string) (*Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[id]
	return item, exists
}

// All returns every item in registration order.
func (c *Catalog) All() []*Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*Item, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.items[id])
	}
	return result
}

// Count returns the number of registered items
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
