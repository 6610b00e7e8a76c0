package equipment

import (
	"sync"
)

// Registry holds all loaded equipment definitions
type Registry struct {
	mu       sync.RWMutex
	machines map[string]*Machine // machineID -> Machine
	byName   map[string]*Machine // display name -> Machine
	order    []string            // machine IDs in registration order
}

// NewRegistry creates a new registry
func NewRegistry() *Registry {
	return &Registry{
		machines: make(map[string]*Machine),
		byName:   make(map[string]*Machine),
	}
}

// Register adds a machine, replacing any existing machine with the same ID.
func (r *Registry) Register(m *Machine) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.machines[m.ID]; exists {
		delete(r.byName, existing.Name)
	} else {
		r.order = append(r.order, m.ID)
	}

	r.machines[m.ID] = m
	r.byName[m.Name] = m
}

// LoadDefaults registers the built-in equipment roster.
func (r *Registry) LoadDefaults() {
	for _, m := range DefaultMachines() {
		r.Register(m)
	}
}

// Get returns a machine by ID
func (r *Registry) Get(id string) (*Machine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	machine, exists := r.machines[id]
	return machine, exists
}

// GetByName returns a machine by its display name
func (r *Registry) GetByName(name string) (*Machine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	machine, exists := r.byName[name]
	return machine, exists
}

// All returns every machine in registration order.
func (r *Registry) All() []*Machine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Machine, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.machines[id])
	}
	return result
}

// TrainingMachines returns the machines that raise a stat, in
// registration order.
func (r *Registry) TrainingMachines() []*Machine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Machine
	for _, id := range r.order {
		if r.machines[id].Trains() {
			result = append(result, r.machines[id])
		}
	}
	return result
}

// Count returns the number of registered machines
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.machines)
}
